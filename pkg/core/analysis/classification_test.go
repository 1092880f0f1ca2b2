package analysis

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Classification
	}{
		{11, Risky},
		{54, Risky},
		{55, Average},
		{69, Average},
		{70, Strong},
		{84, Strong},
		{85, HighQuality},
		{110, HighQuality},
	}
	for _, c := range cases {
		if got := Classify(c.score); got != c.want {
			t.Errorf("Classify(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	if MinTotalScore != 11 || MaxTotalScore != 110 {
		t.Errorf("score bounds = [%d,%d], want [11,110]", MinTotalScore, MaxTotalScore)
	}
}

func TestDimensionsAreCanonical(t *testing.T) {
	if len(Dimensions) != NumDimensions {
		t.Fatalf("expected %d dimensions, got %d", NumDimensions, len(Dimensions))
	}
	seen := map[string]bool{}
	for _, d := range Dimensions {
		if d == "" {
			t.Error("empty dimension name")
		}
		if seen[d] {
			t.Errorf("duplicate dimension %q", d)
		}
		seen[d] = true
		if !IsCanonicalDimension(d) {
			t.Errorf("IsCanonicalDimension(%q) = false", d)
		}
	}
	if IsCanonicalDimension("P/E Ratio") {
		t.Error("IsCanonicalDimension accepted a non-canonical name")
	}
}
