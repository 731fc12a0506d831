package commands

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/fp/internal/common/struct/tag"
	"github.com/michaelmacinnis/fp/internal/common/type/str"
)

func TestLookup(t *testing.T) {
	for _, n := range []string{"fp", "fp else", "fp first-where", "fp is", "fp pure", "fp then"} {
		c, ok := Lookup(n)
		if !ok {
			t.Fatalf("Expected to find %q", n)
		}

		if c.Name != n || c.Run == nil {
			t.Fatalf("Malformed command %q", n)
		}
	}

	if _, ok := Lookup("fp map"); ok {
		t.Fatal("Unexpected command fp map")
	}

	if len(Names()) != 6 {
		t.Fatalf("Expected 6 commands; got %v", Names())
	}
}

func TestAccepts(t *testing.T) {
	c, _ := Lookup("fp first-where")

	for _, tt := range []struct {
		t        *tag.T
		expected bool
	}{
		{tag.List(tag.Int), true},
		{tag.Table(tag.Field{Name: "a", Type: tag.Int}), true},
		{tag.Range, true},
		{tag.Int, false},
		{tag.GenericRecord, false},
	} {
		if got := c.Accepts(tt.t); got != tt.expected {
			t.Errorf("Accepts(%s): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestHelp(t *testing.T) {
	c, _ := Lookup("fp")

	v, err := c.Run(&host{}, with(), nil)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	h := str.To(v).String()
	for _, s := range []string{"Usage:", "fp else - ", "fp first-where - ", "fp then - "} {
		if !strings.Contains(h, s) {
			t.Errorf("Expected help to contain %q:\n%s", s, h)
		}
	}

	h, ok := Help("fp first-where")
	if !ok || !strings.Contains(h, "> fp first-where <condition>") {
		t.Errorf("Unexpected help:\n%s", h)
	}

	if _, ok := Help("nope"); ok {
		t.Error("Expected no help for an unknown command")
	}
}

func TestExamplesHaveResults(t *testing.T) {
	for _, n := range Names() {
		c, _ := Lookup(n)
		for _, e := range c.Examples {
			if e.Result == nil || e.Example == "" || e.Description == "" {
				t.Errorf("%s: incomplete example %q", n, e.Example)
			}
		}
	}
}
