package model

type enrollmentIndexer struct{}

// Build links all pairs of courses within each student's enrollment. Course
// pairs only materialize through shared students, so the cost is
// O(students * C^2) for C courses per student, independent of the total
// course count.
func (indexer *enrollmentIndexer) Build(students []Student) ConflictRelation {
	relation := make(ConflictRelation)

	link := func(courseA, courseB uint64) {
		if relation[courseA] == nil {
			relation[courseA] = make(map[uint64]bool)
		}
		relation[courseA][courseB] = true
	}

	for _, student := range students {
		// A student enrolled in zero or one course constrains nothing
		for i := 0; i < len(student.Courses)-1; i++ {
			for j := i + 1; j < len(student.Courses); j++ {
				courseA, courseB := student.Courses[i], student.Courses[j]
				if courseA == courseB {
					continue
				}
				link(courseA, courseB)
				link(courseB, courseA)
			}
		}
	}

	return relation
}
