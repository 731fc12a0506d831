package float

import (
	"math"
	"testing"
)

func TestLiteral(t *testing.T) {
	for f, s := range map[float64]string{
		0:            "0.0",
		1.5:          "1.5",
		-2:           "-2.0",
		math.Inf(1):  "inf",
		math.Inf(-1): "-inf",
	} {
		if l := To(New(f)).Literal(); l != s {
			t.Fatalf("Expected %s; got %s", s, l)
		}
	}

	if l := To(New(math.NaN())).Literal(); l != "NaN" {
		t.Fatalf("Expected NaN; got %s", l)
	}
}

func TestEqual(t *testing.T) {
	if !New(math.NaN()).Equal(New(math.NaN())) {
		t.Fatal("Expected NaN cells to be equal")
	}

	if New(0).Equal(New(1)) {
		t.Fatal("Expected 0.0 and 1.0 to differ")
	}
}
