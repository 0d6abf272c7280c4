package model

// Scheduler assigns every selected course an exam slot honoring all hard
// constraints: no student sits two overlapping exams, class-level daily caps
// are respected, and every slot lies within the scheduling window and
// operating hours. Build returns either a complete validated schedule or an
// error; it never returns a partial one.
type Scheduler interface {
	Build(input ModelInput, relation ConflictRelation) ([]Exam, error)

	Verify(exams []Exam, input ModelInput, relation ConflictRelation) bool
}

// DefaultMaxBacktracks bounds the search: each unscheduled placement counts
// as one backtrack.
const DefaultMaxBacktracks = 1000

func NewScheduler() Scheduler {
	return newGreedyScheduler(DefaultMaxBacktracks)
}

// NewBoundedScheduler overrides the backtracking bound.
func NewBoundedScheduler(maxBacktracks uint64) Scheduler {
	return newGreedyScheduler(maxBacktracks)
}
