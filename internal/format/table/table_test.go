package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"↓/j", "next"},
		{"shift+tab", "prev view"},
	}
	got := Format(rows, nil)
	want := []string{
		"↓/j        next",
		"shift+tab  prev view",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"Items", "3"}, {"Cursor", "12"}}, []Alignment{AlignLeft, AlignRight})
	if got[0] != "Items    3" {
		t.Fatalf("expected %q, got %q", "Items    3", got[0])
	}
	if got[1] != "Cursor  12" {
		t.Fatalf("expected %q, got %q", "Cursor  12", got[1])
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "b", "c"}, {"dd"}}, nil)
	if got[0] != "a   b  c" {
		t.Fatalf("expected %q, got %q", "a   b  c", got[0])
	}
	if got[1] != "dd" {
		t.Fatalf("expected %q, got %q", "dd", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
