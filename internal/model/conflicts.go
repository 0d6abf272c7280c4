package model

// ConflictRelation maps each course to the set of courses it shares at least
// one student with. It is symmetric, derived from enrollment data only, and
// read-only after construction: a run that changes enrollment rebuilds it
// instead of mutating in place.
type ConflictRelation map[uint64]map[uint64]bool

func (relation ConflictRelation) Conflicts(courseA, courseB uint64) bool {
	return relation[courseA][courseB]
}

// Degree returns the number of courses conflicting with the given one.
func (relation ConflictRelation) Degree(course uint64) int {
	return len(relation[course])
}

// ConflictIndexer derives the conflict relation from student enrollments
type ConflictIndexer interface {
	Build(students []Student) ConflictRelation
}

func NewConflictIndexer() ConflictIndexer {
	return &enrollmentIndexer{}
}
