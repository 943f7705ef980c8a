package vectorizer

// Vocabulary maps terms to dense slot indices in [0, Len()). Slot order is
// the lexicographic order of the terms. Immutable after Build.
type Vocabulary struct {
	terms []string
	slots map[string]int
}

func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns the terms in slot order. The returned slice is a copy.
func (v *Vocabulary) Terms() []string {
	terms := make([]string, len(v.terms))
	copy(terms, v.terms)
	return terms
}

// Slot returns the slot index for a term and whether the term is present.
func (v *Vocabulary) Slot(term string) (int, bool) {
	slot, ok := v.slots[term]
	return slot, ok
}
