package unitsel

import (
	"reflect"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input   string
		maxUnit int
		want    []int
	}{
		{"1", 1, []int{1}},
		{"1", 0, []int{1}},
		{"2", 4, []int{2}},
		{"1,3", 4, []int{1, 3}},
		{"2-4", 4, []int{2, 3, 4}},
		{"1, 3-5", 5, []int{1, 3, 4, 5}},
		{"3,1,2-3", 3, []int{1, 2, 3}},
		{"all", 3, []int{1, 2, 3}},
		{"ALL", 0, []int{1}},
		{"4-4", 4, []int{4}},
	}

	for _, tt := range tests {
		got, err := Expand(tt.input, tt.maxUnit)
		if err != nil {
			t.Errorf("Expand(%q, %d) failed: %v", tt.input, tt.maxUnit, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Expand(%q, %d): expected %v, got %v", tt.input, tt.maxUnit, tt.want, got)
		}
	}
}

func TestParseSelectionErrors(t *testing.T) {
	tests := []string{
		"",
		"0",
		"4-2",
		"1,",
		"a",
		"1-",
		"all,1",
		"-1",
	}

	for _, input := range tests {
		if _, err := Parse(input); err == nil {
			t.Errorf("Expected error parsing %q", input)
		}
	}
}

func TestUnitOutOfRange(t *testing.T) {
	sel, err := Parse("2-5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := sel.Units(4); err == nil {
		t.Error("Expected error for unit beyond max unit")
	}
	if _, err := sel.Units(5); err != nil {
		t.Errorf("Expected range to fit 5 units, got %v", err)
	}
}

func TestParserInstance(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}

	sel, err := p.ParseString("all")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if !sel.All {
		t.Error("Expected All to be set")
	}

	sel, err = p.ParseString("7-9")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(sel.Items) != 1 || sel.Items[0].From != 7 || sel.Items[0].Last() != 9 {
		t.Errorf("Expected single range 7-9, got %+v", sel.Items)
	}
}
