package outline

import "testing"

func levels(records []HeadingRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Level
	}
	return out
}

func TestFilter(t *testing.T) {
	input := []HeadingRecord{
		rec(0, 1, "a"),
		rec(1, 2, "b"),
		rec(2, 3, "c"),
		rec(3, 2, "d"),
		rec(4, 5, "e"),
	}

	tests := []struct {
		name string
		opts Options
		want []int
	}{
		{"no constraints", Options{}, []int{1, 2, 3, 2, 5}},
		{"max depth", Options{MaxDepth: 2}, []int{1, 2, 2}},
		{"specific levels", Options{SpecificLevels: []int{2, 5}}, []int{2, 2, 5}},
		{"both AND", Options{MaxDepth: 3, SpecificLevels: []int{2, 5}}, []int{2, 2}},
		{"allow-set independent of depth", Options{SpecificLevels: []int{5}}, []int{5}},
		{"nothing survives", Options{SpecificLevels: []int{9}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(input, tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records (%v), want %d", len(got), levels(got), len(tt.want))
			}
			for i, lvl := range tt.want {
				if got[i].Level != lvl {
					t.Errorf("record %d level = %d, want %d", i, got[i].Level, lvl)
				}
			}
		})
	}
}

func TestFilter_PreservesOrderAndPositions(t *testing.T) {
	input := []HeadingRecord{
		rec(3, 2, "x"),
		rec(7, 1, "y"),
		rec(9, 2, "z"),
	}

	got := Filter(input, Options{SpecificLevels: []int{2}})

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Position != 3 || got[1].Position != 9 {
		t.Errorf("positions = [%d, %d], want [3, 9] unrenumbered", got[0].Position, got[1].Position)
	}
}

func TestFilter_RejectsOutOfRangeLevels(t *testing.T) {
	input := []HeadingRecord{
		{Position: 0, Level: 0, Text: "not a heading"},
		{Position: 1, Level: 10, Text: "bogus"},
		{Position: 2, Level: -1, Text: "bogus"},
		rec(3, 1, "real"),
	}

	got := Filter(input, Options{})
	if len(got) != 1 || got[0].Position != 3 {
		t.Errorf("expected only the level-1 record to survive, got %v", levels(got))
	}
}
