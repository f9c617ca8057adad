package domain

// ResultEntry pairs a candidate with the section it was emitted in.
type ResultEntry struct {
	Candidate Candidate
	Source    SourceKind
}

// ResultList is the ordered output of one update cycle.
// Sections appear in the fixed order tabs, history, bookmarks, followed by
// at most one literal navigation entry.
type ResultList []ResultEntry

// Len returns the number of entries.
func (l ResultList) Len() int {
	return len(l)
}

// At returns the entry at index i, or false when i is out of range.
func (l ResultList) At(i int) (ResultEntry, bool) {
	if i < 0 || i >= len(l) {
		return ResultEntry{}, false
	}
	return l[i], true
}

// Section returns the entries emitted for the given source, in order.
func (l ResultList) Section(kind SourceKind) []ResultEntry {
	var out []ResultEntry
	for _, e := range l {
		if e.Source == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries were emitted for the given source.
func (l ResultList) Count(kind SourceKind) int {
	n := 0
	for _, e := range l {
		if e.Source == kind {
			n++
		}
	}
	return n
}
