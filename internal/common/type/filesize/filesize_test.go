package filesize

import (
	"testing"
)

func TestParse(t *testing.T) {
	for s, n := range map[string]uint64{
		"0b":    0,
		"0kb":   0,
		"10b":   10,
		"10kb":  10000,
		"1KB":   1000,
		"1kib":  1024,
		"2mb":   2000000,
		"1.5kb": 1500,
	} {
		c, ok := Parse(s)
		if !ok {
			t.Fatalf("Expected %s to parse", s)
		}

		if b := To(c).Bytes(); b != n {
			t.Fatalf("%s: expected %d; got %d", s, n, b)
		}
	}

	for _, s := range []string{"b", "kb", "web", "10"} {
		if _, ok := Parse(s); ok {
			t.Fatalf("Expected %s not to parse", s)
		}
	}
}

func TestLiteral(t *testing.T) {
	for n, s := range map[uint64]string{
		0:       "0b",
		999:     "999b",
		1000:    "1kb",
		1500:    "1500b",
		2000000: "2mb",
	} {
		if l := To(New(n)).Literal(); l != s {
			t.Fatalf("Expected %s; got %s", s, l)
		}
	}

	if !Zero.Equal(New(0)) {
		t.Fatal("Expected Zero to equal 0b")
	}
}
