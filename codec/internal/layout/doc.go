// Package layout computes head-region footprints for the codec.
//
// Per-type layout (head width in words, dynamic-size flag) is cached on the
// type nodes themselves at construction; this package folds those cached
// values over sequences — argument lists, tuple fields, array element
// regions — with overflow-checked arithmetic, since sequence widths are
// driven by untrusted length words during decode.
//
// This package is internal to the codec.
package layout
