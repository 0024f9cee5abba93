package terrain

// KindSet is a possibility set over the closed Kind enum, one bit per kind.
type KindSet uint16

// FullSet contains every terrain kind.
const FullSet = KindSet(1<<KindCount) - 1

// NewKindSet builds a set from the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s KindSet) Contains(k Kind) bool {
	return s&(1<<k) != 0
}

func (s KindSet) With(k Kind) KindSet {
	return s | 1<<k
}

// Intersect narrows s to the kinds also present in other.
func (s KindSet) Intersect(other KindSet) KindSet {
	return s & other
}

// Count returns the number of kinds in the set (the cell's entropy).
func (s KindSet) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

func (s KindSet) Empty() bool {
	return s == 0
}

// Kinds lists the members in declaration order.
func (s KindSet) Kinds() []Kind {
	out := make([]Kind, 0, s.Count())
	for i := 0; i < KindCount; i++ {
		if s.Contains(Kind(i)) {
			out = append(out, Kind(i))
		}
	}
	return out
}

// Single returns the only member of a one-element set.
func (s KindSet) Single() (Kind, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	for i := 0; i < KindCount; i++ {
		if s.Contains(Kind(i)) {
			return Kind(i), true
		}
	}
	return 0, false
}
