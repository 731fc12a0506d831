package num

import (
	"math/big"
	"testing"
)

func TestInt(t *testing.T) {
	if i, ok := To(Int(7)).Int(); !ok || i != 7 {
		t.Fatalf("Expected 7; got %d", i)
	}

	half := To(Rat(big.NewRat(1, 2)))
	if _, ok := half.Int(); ok {
		t.Fatal("Expected 1/2 to have no integer value")
	}

	if f := half.Float(); f != 0.5 {
		t.Fatalf("Expected 0.5; got %v", f)
	}
}

func TestNew(t *testing.T) {
	c, ok := New("2.50")
	if !ok {
		t.Fatal("Expected 2.50 to parse")
	}

	if !c.Equal(Rat(big.NewRat(5, 2))) {
		t.Fatal("Expected 2.50 to equal 5/2")
	}

	if _, ok := New("two"); ok {
		t.Fatal("Expected two not to parse")
	}
}
