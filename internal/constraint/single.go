package constraint

// SingleCandidate is the "exactly one of these candidates is true" rule.
// As soon as one of its candidates is confirmed, all others are mutually
// excluded; if only one candidate is left undecided, it must be the
// solution. It is the only rule a classic grid puzzle needs: cell, row,
// column and box requirements are all instances of it.
type SingleCandidate struct {
	base
	n int
}

// NewSingleCandidate creates the rule with no candidates attached. The
// label is used for debug output.
func NewSingleCandidate(g *Graph, label string) *SingleCandidate {
	s := &SingleCandidate{}
	s.bind(g, label, s)
	return s
}

func (s *SingleCandidate) Add(c Candidate) error {
	if err := s.base.Add(c); err != nil {
		return err
	}
	// Before the first application every live candidate is a distinct
	// possible solution.
	s.n = s.NCandidates()
	return nil
}

// Apply resolves the rule as far as the current partition allows:
//
//	>1 definite            -> contradiction, 0 solutions
//	 1 definite            -> solved; every live candidate is eliminated
//	 0 definite, >1 live   -> still ambiguous, one solution per live candidate
//	 0 definite,  1 live   -> the lone candidate is confirmed
//	 0 definite,  0 live   -> contradiction, 0 solutions
func (s *SingleCandidate) Apply() {
	switch {
	case s.NDefinites() > 1:
		s.n = 0
	case s.NDefinites() == 1:
		if s.NCandidates() > 0 {
			s.eliminateAll(s.Candidates())
		}
		s.n = 1
	default:
		switch s.NCandidates() {
		case 0:
			s.n = 0
		case 1:
			s.includeAllInSolution(s.Candidates())
			s.n = 1
		default:
			s.n = s.NCandidates()
		}
	}
}

func (s *SingleCandidate) NSolutions() int { return s.n }

func (s *SingleCandidate) Solution() (Set, error) {
	if s.n != 1 {
		return nil, ErrNotSolved
	}
	return s.Definites(), nil
}

// PossibleSolutions returns one singleton set per remaining live
// candidate.
func (s *SingleCandidate) PossibleSolutions() []Set {
	out := make([]Set, 0, s.NCandidates())
	for c := range s.live {
		out = append(out, NewSet(c))
	}
	return out
}
