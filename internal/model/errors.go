package model

import "fmt"

// InfeasibleError reports the courses for which no feasible slot was found
// within the backtracking bound. The run commits nothing when it is returned.
type InfeasibleError struct {
	Unplaceable []uint64 // course ids
}

func (err *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible slot for courses %v under current constraints", err.Unplaceable)
}

// CapacityError reports that the enrolled students do not fit in the
// candidate classrooms.
type CapacityError struct {
	Students  uint64
	Capacity  uint64
	Shortfall uint64
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("insufficient seating capacity: %v students, %v seats, %v short", err.Students, err.Capacity, err.Shortfall)
}

// InputError reports an input constraint violated before any placement
// attempt.
type InputError struct {
	Reason string
}

func (err *InputError) Error() string {
	return fmt.Sprintf("invalid input: %v", err.Reason)
}
