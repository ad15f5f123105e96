package constraint

// Problem is a composite constraint: it owns a universe of candidates and
// constraints, drives dirty-queue propagation to a fixed point, and falls
// back to a backtracking search over the remaining possibilities when
// propagation alone cannot classify the problem. Because a Problem is
// itself a Constraint, problems can be nested inside larger problems.
//
// A Problem exclusively owns its graph for its lifetime. Solving mutates
// the shared graph in place; speculative branches are undone by restoring
// a per-recursion-frame snapshot of the live-candidate set and the active
// constraint set.
type Problem struct {
	base
	active map[Constraint]struct{}
	dirtyQ map[Constraint]struct{}
	n      int
	sol    Set
	nodes  int
}

// NewProblem assembles a problem from its candidate universe, its
// constraints and an optional set of pre-confirmed givens. Construction
// seals the graph: membership edges cannot change once solving may start.
// Givens are confirmed immediately, which queues every constraint sharing
// them for application.
func NewProblem(g *Graph, label string, candidates []Candidate, constraints []Constraint, givens []Candidate) *Problem {
	p := &Problem{
		active: make(map[Constraint]struct{}, len(constraints)),
		dirtyQ: make(map[Constraint]struct{}),
		n:      ManySolutions,
	}
	p.bind(g, label, p)
	for _, con := range constraints {
		p.active[con] = struct{}{}
		con.setParent(p)
		if con.dirty() {
			p.dirtyQ[con] = struct{}{}
		}
	}
	for _, c := range candidates {
		p.base.Add(c) // cannot fail: the graph is not sealed yet
	}
	for _, con := range constraints {
		con.seal()
	}
	p.seal()
	p.includeAllInSolution(NewSet(givens...))
	return p
}

// Solve applies the problem and returns its classification: 0 for no
// solution, 1 for a unique solution, ManySolutions once a second solution
// has been confirmed.
func (p *Problem) Solve() int {
	p.Apply()
	p.markClean()
	return p.n
}

// Apply classifies the problem. Counts beyond 1 all collapse into
// ManySolutions: the engine never distinguishes two solutions from more.
func (p *Problem) Apply() {
	p.n = p.solveRecurse()
	if p.n > 1 {
		p.n = ManySolutions
	}
}

func (p *Problem) NSolutions() int { return p.n }

// Solution returns the full confirmed candidate set of the unique
// solution. It fails with ErrNotSolved unless the last application
// classified the problem as having exactly one solution.
func (p *Problem) Solution() (Set, error) {
	if p.n != 1 {
		return nil, ErrNotSolved
	}
	return p.sol.Clone(), nil
}

// PossibleSolutions is only meaningful once the problem is solved, in
// which case it returns the single solution set. Enumerating the
// possibilities of an unsolved sub-problem is not supported.
func (p *Problem) PossibleSolutions() []Set {
	if p.n != 1 {
		return nil
	}
	return []Set{p.sol.Clone()}
}

// Nodes returns how many constraint applications and speculative branches
// the last solve performed.
func (p *Problem) Nodes() int { return p.nodes }

func (p *Problem) addDirty(con Constraint)    { p.dirtyQ[con] = struct{}{} }
func (p *Problem) removeDirty(con Constraint) { delete(p.dirtyQ, con) }

// solveRecurse returns 0, 1 or 2, where 2 stands for "2 or more".
//
// Phase 1 drains the dirty queue: applying a constraint may move
// candidates, which re-queues other constraints, until a fixed point is
// reached. A constraint reporting 0 fails the whole branch; one reporting
// 1 is resolved and retired from the active set for this branch.
//
// Phase 2 runs only if unresolved constraints remain: pick one, try each
// of its possible solutions speculatively, and total the classifications
// of the resulting sub-problems, stopping as soon as two full solutions
// have been confirmed.
func (p *Problem) solveRecurse() int {
	for len(p.dirtyQ) > 0 {
		con := p.anyDirty()
		p.nodes++
		con.Apply()
		con.markClean()
		switch con.NSolutions() {
		case 0:
			return 0
		case 1:
			delete(p.active, con)
		}
	}

	if len(p.active) == 0 {
		// Every constraint resolved: the definites accumulated so far
		// form one complete solution.
		p.sol = p.Definites()
		return 1
	}

	con := p.pickBranch()
	total := 0
	snap := p.takeSnapshot()
	for _, possible := range con.PossibleSolutions() {
		if total >= 2 {
			break
		}
		p.nodes++
		p.includeAllInSolution(possible)
		total += p.solveRecurse()
		p.restoreSnapshot(snap)
	}
	return total
}

// anyDirty picks an arbitrary queued constraint. Selection order is free;
// any order reaches the same fixed point.
func (p *Problem) anyDirty() Constraint {
	for con := range p.dirtyQ {
		return con
	}
	return nil
}

// pickBranch chooses the unresolved constraint with the fewest remaining
// possibilities, keeping the branching factor small. Any choice would be
// correct.
func (p *Problem) pickBranch() Constraint {
	var best Constraint
	for con := range p.active {
		if best == nil || con.NSolutions() < best.NSolutions() {
			best = con
		}
	}
	return best
}

// snapshot captures everything a speculative branch can disturb at this
// level: which candidates are currently live, and which constraints are
// still active.
type snapshot struct {
	live   Set
	active map[Constraint]struct{}
}

func (p *Problem) takeSnapshot() snapshot {
	active := make(map[Constraint]struct{}, len(p.active))
	for con := range p.active {
		active[con] = struct{}{}
	}
	return snapshot{live: p.Candidates(), active: active}
}

// restoreSnapshot undoes a speculative branch. Reinstating every candidate
// recorded live in the snapshot reverses all eliminations and inclusions
// the branch propagated, however deep they fanned out; the active set is
// reinstalled as a fresh copy so later branches cannot corrupt the
// snapshot itself.
func (p *Problem) restoreSnapshot(snap snapshot) {
	p.reinstateAll(snap.live)
	active := make(map[Constraint]struct{}, len(snap.active))
	for con := range snap.active {
		active[con] = struct{}{}
	}
	p.active = active
}
