package suggest

import "sort"

// minRelevance is the Jaro similarity threshold below which a candidate
// is not considered a plausible typo of the wanted name.
const minRelevance = 0.75

type candidate struct {
	relevance float64
	name      string
}

// Suggestions holds the variants that plausibly match a name the user
// asked for but that wasn't found, ranked most-relevant first.
type Suggestions struct {
	wanted     string
	candidates []candidate
}

// New computes Suggestions for wanted against variants, keeping only
// those at or above minRelevance.
func New(wanted string, variants []string) Suggestions {
	s := Suggestions{wanted: wanted}
	for _, v := range variants {
		s.insert(jaro(wanted, v), v)
	}
	return s
}

func (s *Suggestions) insert(relevance float64, name string) {
	if relevance < minRelevance {
		return
	}
	pos := sort.Search(len(s.candidates), func(i int) bool {
		return s.candidates[i].relevance < relevance
	})
	s.candidates = append(s.candidates, candidate{})
	copy(s.candidates[pos+1:], s.candidates[pos:])
	s.candidates[pos] = candidate{relevance, name}
}

// Names returns the surviving candidate names, most relevant first.
func (s Suggestions) Names() []string {
	names := make([]string, len(s.candidates))
	for i, c := range s.candidates {
		names[i] = c.name
	}
	return names
}

// Empty reports whether no variant cleared the relevance threshold.
func (s Suggestions) Empty() bool { return len(s.candidates) == 0 }

// Merge combines s with other, which must share the same wanted name,
// keeping the ranked order.
func (s Suggestions) Merge(other Suggestions) (Suggestions, bool) {
	if s.wanted != other.wanted {
		return Suggestions{}, false
	}
	merged := s
	for _, c := range other.candidates {
		merged.insert(c.relevance, c.name)
	}
	return merged, true
}
