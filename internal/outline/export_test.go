package outline

import (
	"reflect"
	"testing"
)

func TestMarkdown_MarkersFollowLevelIndentFollowsDepth(t *testing.T) {
	records := []HeadingRecord{
		rec(0, 1, "Intro"),
		rec(1, 2, "Background"),
		rec(2, 1, "Methods"),
	}
	o := Build(records, Options{})

	got := Markdown(o)
	want := "# Intro\n  ## Background\n# Methods"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestMarkdown_DeepRootKeepsItsMarkers(t *testing.T) {
	// A level-4 root renders #### at depth 0: markers never follow depth.
	o := Build([]HeadingRecord{rec(0, 4, "Orphan")}, Options{})

	got := Markdown(o)
	if got != "#### Orphan" {
		t.Errorf("Markdown() = %q, want %q", got, "#### Orphan")
	}
}

func TestMarkdown_LevelJump(t *testing.T) {
	records := []HeadingRecord{
		rec(0, 1, "Top"),
		rec(1, 4, "Deep"),
		rec(2, 2, "Shallow"),
	}
	o := Build(records, Options{})

	got := Markdown(o)
	want := "# Top\n  #### Deep\n  ## Shallow"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	if got := Markdown(Build(nil, Options{})); got != "" {
		t.Errorf("Markdown(empty) = %q, want empty string", got)
	}
}

func TestInterchange_RoundTrip(t *testing.T) {
	records := []HeadingRecord{
		{Position: 0, Level: 1, Text: "A", StyleName: "Heading 1", Format: &TextFormat{Bold: true, FontSize: 16}},
		rec(1, 3, "B"),
		rec(2, 2, "C"),
		rec(4, 1, "D"),
	}
	o := Build(records, Options{IncludeFormat: true})

	data, err := MarshalInterchange(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := ParseInterchange(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !reflect.DeepEqual(o, back) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", back, o)
	}
}

func TestInterchange_RoundTripEmpty(t *testing.T) {
	o := Build(nil, Options{})
	data, err := MarshalInterchange(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := ParseInterchange(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back.TotalHeadings != 0 || len(back.Roots) != 0 || len(back.LevelCounts) != 0 {
		t.Errorf("expected empty outline, got %+v", back)
	}
}

func TestParseInterchange_Malformed(t *testing.T) {
	if _, err := ParseInterchange([]byte("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}
