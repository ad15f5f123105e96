package constraint

import (
	"errors"
	"math"
)

// ManySolutions is returned by NSolutions when a constraint is known to
// have more than one remaining solution but counting them exactly would be
// expensive.
const ManySolutions = math.MaxInt

var (
	// ErrSealed is returned by Add once solving has started; the graph
	// topology is fixed from that point on.
	ErrSealed = errors.New("constraint: graph is sealed, cannot add candidates after solving has started")
	// ErrNotSolved is returned by Solution when the last application did
	// not classify the constraint as having exactly one solution.
	ErrNotSolved = errors.New("constraint: no unique solution available")
)

// Constraint is a rule over a fixed subset of a graph's candidates. Each
// constraint partitions its candidates into live (undecided) and definite
// (confirmed); an eliminated candidate belongs to neither. Rule variants
// differ in Apply, NSolutions, Solution and PossibleSolutions; everything
// else is shared via the embedded base. The variant set is closed within
// this package: a Problem is itself a Constraint, so problems nest.
type Constraint interface {
	// Apply inspects the current live/definite partition and performs the
	// eliminations and inclusions the rule implies. It must be idempotent
	// while the partition is unchanged.
	Apply()
	// NSolutions returns 0 (unsatisfiable), 1 (solved), an exact remaining
	// count, or ManySolutions.
	NSolutions() int
	// Solution returns the unique confirmed candidate set. It fails with
	// ErrNotSolved unless NSolutions is exactly 1.
	Solution() (Set, error)
	// PossibleSolutions enumerates the candidate sets that could each,
	// alone, fully satisfy this constraint. The search branches over them
	// when NSolutions is greater than one.
	PossibleSolutions() []Set
	// Add registers a candidate with this constraint. Only valid before
	// the owning problem seals the graph.
	Add(c Candidate) error
	// String returns the constraint's debug label.
	String() string

	// Partition mutations without fan-out, invoked on the receiving side
	// of another constraint's propagation.
	exclude(c Candidate)
	confirm(c Candidate)
	restore(c Candidate)

	markDirty()
	markClean()
	dirty() bool
	setParent(p *Problem)
	seal()
}

// base carries the state and behavior shared by every constraint variant.
// Concrete variants embed it and call bind with themselves so that fan-out
// can skip the originating constraint.
type base struct {
	graph    *Graph
	label    string
	self     Constraint
	live     Set
	definite Set
	isDirty  bool
	sealed   bool
	parent   *Problem
}

func (b *base) bind(g *Graph, label string, self Constraint) {
	b.graph = g
	b.label = label
	b.self = self
	b.live = Set{}
	b.definite = Set{}
}

func (b *base) Add(c Candidate) error {
	if b.sealed {
		return ErrSealed
	}
	b.live.Add(c)
	b.graph.attach(c, b.self)
	return nil
}

func (b *base) String() string { return b.label }

// NCandidates returns the number of live (undecided) candidates.
func (b *base) NCandidates() int { return len(b.live) }

// NDefinites returns the number of confirmed candidates.
func (b *base) NDefinites() int { return len(b.definite) }

// Candidates returns a copy of the live set.
func (b *base) Candidates() Set { return b.live.Clone() }

// Definites returns a copy of the confirmed set.
func (b *base) Definites() Set { return b.definite.Clone() }

// exclude, confirm and restore mutate only this constraint's partition.
// They keep live and definite disjoint: a candidate is in at most one.

func (b *base) exclude(c Candidate) {
	b.live.Remove(c)
	b.definite.Remove(c)
}

func (b *base) confirm(c Candidate) {
	b.live.Remove(c)
	b.definite.Add(c)
}

func (b *base) restore(c Candidate) {
	b.live.Add(c)
	b.definite.Remove(c)
}

// eliminate removes a candidate from consideration and propagates the
// removal to every other constraint sharing it.
func (b *base) eliminate(c Candidate) {
	b.exclude(c)
	b.graph.eliminate(c, b.self)
}

// includeInSolution confirms a candidate and propagates the confirmation.
func (b *base) includeInSolution(c Candidate) {
	b.confirm(c)
	b.graph.includeInSolution(c, b.self)
}

// reinstate returns a candidate to the undecided pool, removing it from
// the solution if necessary, and propagates the change. Used on backtrack.
func (b *base) reinstate(c Candidate) {
	b.restore(c)
	b.graph.reinstate(c, b.self)
}

func (b *base) eliminateAll(cs Set) {
	for c := range cs {
		b.eliminate(c)
	}
}

func (b *base) includeAllInSolution(cs Set) {
	for c := range cs {
		b.includeInSolution(c)
	}
}

func (b *base) reinstateAll(cs Set) {
	for c := range cs {
		b.reinstate(c)
	}
}

// markDirty flags the constraint for re-application and registers it in
// the owning problem's dirty queue. The dirty flag is true iff the
// constraint sits in that queue.
func (b *base) markDirty() {
	b.isDirty = true
	if b.parent != nil {
		b.parent.addDirty(b.self)
	}
}

func (b *base) markClean() {
	b.isDirty = false
	if b.parent != nil {
		b.parent.removeDirty(b.self)
	}
}

func (b *base) dirty() bool { return b.isDirty }

func (b *base) setParent(p *Problem) { b.parent = p }

func (b *base) seal() { b.sealed = true }
