package model

import "math/rand"

// SeatingAssigner distributes an exam's enrolled students across the
// candidate classrooms' seats. Randomness comes from the injected source
// only, so a run is fully reproducible given the same seed and inputs.
type SeatingAssigner interface {
	// Assign returns a seat for every student or a *CapacityError naming the
	// deficit; it never returns a partial plan.
	Assign(exam Exam, students []Student, classrooms []Classroom, random *rand.Rand) ([]SeatAssignment, error)

	Verify(assignments []SeatAssignment, exam Exam, students []Student, classrooms []Classroom) bool
}

func NewSeatingAssigner() SeatingAssigner {
	return &shuffleSeatingAssigner{}
}
