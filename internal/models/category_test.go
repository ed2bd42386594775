package models

import "testing"

func TestParseCategory(t *testing.T) {
	cat, ok := ParseCategory("bug_report")
	if !ok {
		t.Fatal("Expected bug_report to parse")
	}
	if cat != CategoryBugReport {
		t.Errorf("Expected CategoryBugReport, got %q", cat)
	}

	if _, ok := ParseCategory("not_a_category"); ok {
		t.Error("Expected unknown category to be rejected")
	}
	if _, ok := ParseCategory(""); ok {
		t.Error("Expected empty string to be rejected")
	}
}

func TestPlaceholderMarkerNamesKey(t *testing.T) {
	marker := PlaceholderMarker("environment")
	if marker != "_To be filled: environment_" {
		t.Errorf("Unexpected marker %q", marker)
	}
}

func TestClassificationMargin(t *testing.T) {
	r := &ClassificationResult{Candidates: []Candidate{
		{TemplateID: "a", MatchScore: 0.75},
		{TemplateID: "b", MatchScore: 0.25},
	}}
	if got := r.Margin(); got != 0.5 {
		t.Errorf("Expected margin 0.5, got %f", got)
	}

	single := &ClassificationResult{Candidates: []Candidate{{TemplateID: "a", MatchScore: 0.5}}}
	if got := single.Margin(); got != 1 {
		t.Errorf("Expected a lone candidate to stand alone with margin 1, got %f", got)
	}
}
