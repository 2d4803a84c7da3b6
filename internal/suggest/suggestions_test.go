package suggest

import "testing"

func TestJaroExactMatch(t *testing.T) {
	if got := jaro("dracula", "dracula"); got != 1 {
		t.Errorf("expected exact match to score 1, got %v", got)
	}
}

func TestJaroEmptyStrings(t *testing.T) {
	if got := jaro("", ""); got != 1 {
		t.Errorf("expected two empty strings to score 1, got %v", got)
	}
	if got := jaro("x", ""); got != 0 {
		t.Errorf("expected one-sided empty to score 0, got %v", got)
	}
}

func TestJaroCloseTypoScoresHigh(t *testing.T) {
	if got := jaro("dracula", "draclua"); got < 0.8 {
		t.Errorf("expected a transposed typo to score high, got %v", got)
	}
}

func TestNewFiltersBelowThreshold(t *testing.T) {
	s := New("dracula", []string{"draclua", "nord", "solarized"})

	if s.Empty() {
		t.Fatal("expected at least one plausible suggestion")
	}
	names := s.Names()
	if names[0] != "draclua" {
		t.Errorf("expected the closest candidate first, got %v", names)
	}
	for _, n := range names {
		if n == "nord" || n == "solarized" {
			t.Errorf("expected unrelated names filtered out, got %v", names)
		}
	}
}

func TestNewNoPlausibleCandidates(t *testing.T) {
	s := New("zzzzzzzz", []string{"dracula", "nord"})

	if !s.Empty() {
		t.Errorf("expected no suggestions for an unrelated name, got %v", s.Names())
	}
}

func TestMergeRequiresMatchingWanted(t *testing.T) {
	a := New("dracula", []string{"draclua"})
	b := New("nord", []string{"noord"})

	if _, ok := a.Merge(b); ok {
		t.Error("expected Merge to reject mismatched wanted names")
	}
}

func TestMergeCombinesRankedCandidates(t *testing.T) {
	a := New("dracula", []string{"draclua"})
	b := New("dracula", []string{"dracul4"})

	merged, ok := a.Merge(b)
	if !ok {
		t.Fatal("expected Merge to succeed for matching wanted names")
	}
	if len(merged.Names()) != 2 {
		t.Errorf("expected both candidates retained, got %v", merged.Names())
	}
}
