package codec

import (
	"testing"

	"github.com/itzmeanjan/frodopir/zq"
)

func TestElemRoundTrip(t *testing.T) {
	vals := []zq.Elem{0, 1, zq.NegOne, 0x01020304, 0xFFFFFFFF}

	buf := EncodeElems(vals)
	if len(buf) != len(vals)*zq.ByteLen {
		t.Fatalf("got %d bytes, want %d", len(buf), len(vals)*zq.ByteLen)
	}

	got := DecodeElems(buf)
	if len(got) != len(vals) {
		t.Fatalf("got %d elements, want %d", len(got), len(vals))
	}
	for i := range vals {
		if got[i] != vals[i] {
			t.Fatalf("element %d: got %#x, want %#x", i, got[i], vals[i])
		}
	}
}

func TestPutElemLittleEndian(t *testing.T) {
	buf := make([]byte, zq.ByteLen)
	PutElem(buf, 0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, buf[i], want[i])
		}
	}
}
