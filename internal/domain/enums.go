package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked/hidden singles
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
	StrategyXWing                       // advanced fish (placeholder for cap)
)

// Classification is the solution count of a board: none, exactly one, or
// more than one. "Many" never distinguishes two solutions from more.
type Classification int

const (
	NoSolution Classification = iota
	OneSolution
	ManySolutions
)

func (c Classification) String() string {
	switch c {
	case NoSolution:
		return "none"
	case OneSolution:
		return "one"
	default:
		return "many"
	}
}
