package outline

import "testing"

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading 1", 1},
		{"Heading 9", 9},
		{"heading 3", 3},
		{"HEADING 2", 2},
		{"Heading1", 1},
		{"heading7", 7},
		{" Heading 4 ", 4},
		{"标题 1", 1},
		{"标题2", 2},
		{"Heading 0", 0},
		{"Heading 10", 0},
		{"Heading", 0},
		{"Heading A", 0},
		{"Subtitle", 0},
		{"Normal", 0},
		{"", 0},
		{"MyHeading 1", 0},
		{"Heading 1 Char", 0},
	}
	for _, tt := range tests {
		if got := HeadingLevel(tt.style); got != tt.want {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}
