package analytics

import (
	"reflect"
	"testing"
)

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}
	got := a.WordFrequency("Executive Summary\nProject Summary, and Scope.\n")
	want := map[string]int{
		"executive": 1,
		"summary":   2,
		"project":   1,
		"scope":     1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want %v", got, want)
	}
}

func TestWordFrequencySkipsStopwordsAndEmpties(t *testing.T) {
	a := &Analytics{}
	got := a.WordFrequency("Chapter 1: The Introduction --- of the section")
	want := map[string]int{"1": 1, "introduction": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want %v", got, want)
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"SECTION", true},
		{"summary", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %t, want %t", tt.word, got, tt.want)
		}
	}
}

func TestTopNWords(t *testing.T) {
	a := &Analytics{}
	text := "alpha alpha alpha beta beta gamma"

	got := a.TopNWords(text, 2)
	if len(got) != 2 {
		t.Fatalf("TopNWords() = %v, want 2 words", got)
	}
	if got[0] != "alpha" {
		t.Errorf("top word = %q, want %q", got[0], "alpha")
	}
	if got[1] != "beta" {
		t.Errorf("second word = %q, want %q", got[1], "beta")
	}

	if got := a.TopNWords(text, 10); len(got) != 3 {
		t.Errorf("TopNWords() with n over vocabulary = %v, want 3 words", got)
	}
}
