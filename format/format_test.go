package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"w":    WireFormat,
		"wire": WireFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %v, want %v", in, got, want)
		}
	}
	if _, err := ParseFormat("json"); !errors.Is(err, ErrBadFormat) {
		t.Fatalf("got %v, want ErrBadFormat", err)
	}
}

func TestFormatText(t *testing.T) {
	if TextFormat.String() != "text" || WireFormat.String() != "wire" {
		t.Fatal("String wrong")
	}
	var f Format
	if err := f.UnmarshalText([]byte("wire")); err != nil || !f.IsWire() {
		t.Fatalf("unmarshal: %v %v", f, err)
	}
	if TextFormat.Suffix() != ".tabkv" || WireFormat.Suffix() != ".tkw" {
		t.Fatal("Suffix wrong")
	}
}
