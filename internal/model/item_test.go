package model

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"All", All, true},
		{"active", Active, true},
		{" COMPLETED ", Completed, true},
		{"done", Completed, true},
		{"pending", All, false},
		{"", All, false},
	}
	for _, tt := range tests {
		got, ok := ParseFilter(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFilter(%q): got %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFilterNextCycles(t *testing.T) {
	f := All
	var seen []string
	for range 4 {
		seen = append(seen, f.String())
		f = f.Next()
	}
	want := []string{"All", "Active", "Completed", "All"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle: got %v, want %v", seen, want)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	open, done := Item{Text: "a"}, Item{Text: "b", Complete: true}
	if !All.Match(open) || !All.Match(done) {
		t.Errorf("All must match everything")
	}
	if !Active.Match(open) || Active.Match(done) {
		t.Errorf("Active must match only incomplete items")
	}
	if Completed.Match(open) || !Completed.Match(done) {
		t.Errorf("Completed must match only complete items")
	}
}
