// Package constraint is a generic constraint-satisfaction engine.
//
// A problem is a graph of candidates (atomic hypotheses) and constraints
// (rules over candidate subsets). Applying a constraint may eliminate
// candidates or confirm them as part of the solution; either change ripples
// to every other constraint sharing those candidates, which are queued for
// re-application. When propagation alone cannot finish, a backtracking
// search tries each remaining possibility, undoing its effects exactly
// before the next attempt. The engine classifies a problem as having zero,
// exactly one, or many solutions; it never enumerates beyond the second.
package constraint

// Candidate identifies one atomic hypothesis within a Graph. A candidate
// has no status of its own: each constraint tracks it as live, definite,
// or eliminated from its own point of view.
type Candidate int

// Graph is the arena owning every candidate of one problem, together with
// the back-references from each candidate to the constraints tracking it.
// Candidates are dense ids into the arena, so snapshots of candidate sets
// are plain id-set copies rather than object-graph walks.
type Graph struct {
	labels []string
	owners [][]Constraint
}

func NewGraph() *Graph { return &Graph{} }

// NewCandidate allocates a candidate. The label is only used for debug
// output and error messages.
func (g *Graph) NewCandidate(label string) Candidate {
	g.labels = append(g.labels, label)
	g.owners = append(g.owners, nil)
	return Candidate(len(g.labels) - 1)
}

// Label returns the label the candidate was created with.
func (g *Graph) Label(c Candidate) string { return g.labels[c] }

// NumCandidates returns how many candidates have been allocated.
func (g *Graph) NumCandidates() int { return len(g.labels) }

// attach records that owner tracks c. Membership edges are fixed before
// solving starts and never change afterwards.
func (g *Graph) attach(c Candidate, owner Constraint) {
	for _, o := range g.owners[c] {
		if o == owner {
			return
		}
	}
	g.owners[c] = append(g.owners[c], owner)
}

// The three fan-out operations below are the propagation mechanism: a
// status change made by origin is pushed into every other constraint
// sharing the candidate, and each of those is marked dirty so the owning
// problem re-applies it.

func (g *Graph) eliminate(c Candidate, origin Constraint) {
	for _, owner := range g.owners[c] {
		if owner == origin {
			continue
		}
		owner.exclude(c)
		owner.markDirty()
	}
}

func (g *Graph) includeInSolution(c Candidate, origin Constraint) {
	for _, owner := range g.owners[c] {
		if owner == origin {
			continue
		}
		owner.confirm(c)
		owner.markDirty()
	}
}

func (g *Graph) reinstate(c Candidate, origin Constraint) {
	for _, owner := range g.owners[c] {
		if owner == origin {
			continue
		}
		owner.restore(c)
		owner.markDirty()
	}
}
