package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestEmptyRecordSerializesOutlineAsArray(t *testing.T) {
	data, err := json.Marshal(EmptyRecord())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"title":"","outline":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestHeadingText(t *testing.T) {
	r := Record{
		Title: "ignored",
		Outline: []OutlineEntry{
			{Level: LevelH1, Text: "Overview", Page: 0},
			{Level: LevelH2, Text: "Scope", Page: 1},
		},
	}
	if got, want := r.HeadingText(), "Overview\nScope\n"; got != want {
		t.Errorf("HeadingText() = %q, want %q", got, want)
	}
	if got := EmptyRecord().HeadingText(); got != "" {
		t.Errorf("HeadingText() on empty record = %q, want empty", got)
	}
}

func TestLevelCounts(t *testing.T) {
	r := Record{
		Outline: []OutlineEntry{
			{Level: LevelH1, Text: "a"},
			{Level: LevelH3, Text: "b"},
			{Level: LevelH3, Text: "c"},
		},
	}
	got := r.LevelCounts()
	want := map[string]int{LevelH1: 1, LevelH3: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LevelCounts() = %v, want %v", got, want)
	}
}
