package contractabi

import "testing"

func TestBytesToAddress(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"exact", append(make([]byte, 19), 0x42), "0x0000000000000000000000000000000000000042"},
		{"short zero-extends", []byte{0xAB, 0xCD}, "0x000000000000000000000000000000000000abcd"},
		{"long keeps low bytes", append(make([]byte, 13), 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15),
			"0x02030405060708090a0b0c0d0e0f101112131415"},
		{"nil", nil, "0x0000000000000000000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesToAddress(tt.in).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWordString(t *testing.T) {
	var w Word
	w[31] = 0x2A
	want := "0x000000000000000000000000000000000000000000000000000000000000002a"
	if got := w.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
