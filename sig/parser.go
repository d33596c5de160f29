package sig

import (
	"strconv"
	"strings"

	"github.com/wippyai/contract-abi/codec"
	"github.com/wippyai/contract-abi/errors"
)

// ParseType parses one canonical ABI type string into a type descriptor
// tree: elementary types ("uint256", "bytes32", "address"), array suffixes
// ("uint8[4][]"), and parenthesized tuples ("(bool,bytes)[2]"). The aliases
// "uint", "int", and "byte" normalize to uint256, int256, and bytes1.
func ParseType(s string) (*codec.Type, error) {
	p := &parser{src: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q after type", p.src[p.pos:])
	}
	return t, nil
}

// Method is a parsed function signature: a name plus ordered input types.
type Method struct {
	Name   string
	Inputs []*codec.Type
}

// ParseMethod parses a canonical function signature such as
// "transfer(address,uint256)".
func ParseMethod(s string) (Method, error) {
	p := &parser{src: s}

	name := p.takeIdent()
	if name == "" {
		return Method{}, p.errorf("missing method name")
	}
	if p.next() != '(' {
		return Method{}, p.errorf("missing parameter list after %q", name)
	}

	var inputs []*codec.Type
	if p.peek() == ')' {
		p.pos++
	} else {
		for {
			t, err := p.parseType()
			if err != nil {
				return Method{}, err
			}
			inputs = append(inputs, t)
			c := p.next()
			if c == ')' {
				break
			}
			if c != ',' {
				return Method{}, p.errorf("expected ',' or ')' in parameter list")
			}
		}
	}

	if p.pos != len(p.src) {
		return Method{}, p.errorf("unexpected %q after signature", p.src[p.pos:])
	}
	return Method{Name: name, Inputs: inputs}, nil
}

// Signature returns the canonical signature string, the preimage of the
// method's selector.
func (m Method) Signature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, t := range m.Inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// parser is a single-pass cursor over the source string. All failures are
// immediate errors carrying the position; untrusted text never panics.
type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Detail(format, args...).
		Value(p.pos).
		Build()
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) next() byte {
	c := p.peek()
	if c != 0 {
		p.pos++
	}
	return c
}

func (p *parser) takeIdent() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || (p.pos > start && c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) takeNumber() (int, bool) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (p *parser) parseType() (*codec.Type, error) {
	var base *codec.Type
	var err error

	if p.peek() == '(' {
		base, err = p.parseTuple()
	} else {
		base, err = p.parseElementary()
	}
	if err != nil {
		return nil, err
	}

	// Array suffixes bind left to right: uint8[2][] is a dynamic array of
	// uint8[2].
	for p.peek() == '[' {
		p.pos++
		if p.peek() == ']' {
			p.pos++
			base = codec.Array(base)
			continue
		}
		n, ok := p.takeNumber()
		if !ok {
			return nil, p.errorf("expected array length")
		}
		if p.next() != ']' {
			return nil, p.errorf("missing ']' after array length")
		}
		base = codec.FixedArray(base, n)
	}

	return base, nil
}

func (p *parser) parseTuple() (*codec.Type, error) {
	p.pos++ // consume '('
	var fieldTypes []*codec.Type
	if p.peek() == ')' {
		p.pos++
		return codec.TupleOf(), nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fieldTypes = append(fieldTypes, t)
		c := p.next()
		if c == ')' {
			return codec.TupleOf(fieldTypes...), nil
		}
		if c != ',' {
			return nil, p.errorf("expected ',' or ')' in tuple")
		}
	}
}

func (p *parser) parseElementary() (*codec.Type, error) {
	word := p.takeIdent()
	switch word {
	case "":
		return nil, p.errorf("expected a type")
	case "bool":
		return codec.Bool(), nil
	case "address":
		return codec.Address(), nil
	case "string":
		return codec.String(), nil
	case "byte":
		return codec.FixedBytes(1), nil
	case "uint":
		return codec.Uint(256), nil
	case "int":
		return codec.Int(256), nil
	case "bytes":
		return codec.Bytes(), nil
	}

	if rest, ok := strings.CutPrefix(word, "bytes"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > 32 {
			return nil, p.errorf("%q out of range bytes1..bytes32", word)
		}
		return codec.FixedBytes(n), nil
	}
	if rest, ok := strings.CutPrefix(word, "uint"); ok {
		bits, err := parseBits(rest)
		if err != nil {
			return nil, p.errorf("bad width in %q: %v", word, err)
		}
		return codec.Uint(bits), nil
	}
	if rest, ok := strings.CutPrefix(word, "int"); ok {
		bits, err := parseBits(rest)
		if err != nil {
			return nil, p.errorf("bad width in %q: %v", word, err)
		}
		return codec.Int(bits), nil
	}

	return nil, p.errorf("unknown type %q", word)
}

func parseBits(s string) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, strconv.ErrRange
	}
	return bits, nil
}
