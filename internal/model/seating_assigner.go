package model

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/samber/lo"
)

type shuffleSeatingAssigner struct{}

func (assigner *shuffleSeatingAssigner) Assign(exam Exam, students []Student, classrooms []Classroom, random *rand.Rand) ([]SeatAssignment, error) {
	if len(students) == 0 {
		return []SeatAssignment{}, nil // nothing to place is not an error
	}

	enrolled := uint64(len(students))
	capacity := SeatingCapacity(classrooms)
	if !CapacitySufficient(classrooms, enrolled) {
		return nil, &CapacityError{
			Students:  enrolled,
			Capacity:  capacity,
			Shortfall: enrolled - capacity,
		}
	}

	// Shuffle from a deterministic base order, so the outcome depends on the
	// seed alone and not on the caller's slice order
	shuffled := slices.Clone(students)
	slices.SortFunc(shuffled, func(a, b Student) int {
		return cmp.Compare(a.Number, b.Number)
	})
	random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assignments := make([]SeatAssignment, 0, len(shuffled))
	index := 0
	for _, classroom := range classrooms {
		if index >= len(shuffled) {
			break
		}

		// Scatter within the room as well: neighbors in the student list must
		// not become neighbors in the grid
		seats := classroom.Seats()
		random.Shuffle(len(seats), func(i, j int) {
			seats[i], seats[j] = seats[j], seats[i]
		})

		placed := uint64(0)
		for _, seat := range seats {
			if index >= len(shuffled) || placed >= classroom.Capacity {
				break
			}
			assignments = append(assignments, SeatAssignment{
				ExamId:      exam.Id,
				ClassroomId: classroom.Id,
				Seat:        seat,
				StudentId:   shuffled[index].Id,
			})
			index++
			placed++
		}
	}

	// All-or-nothing: the capacity check above makes this unreachable, but a
	// partial plan must never leak out
	if index < len(shuffled) {
		return nil, &CapacityError{
			Students:  enrolled,
			Capacity:  uint64(index),
			Shortfall: enrolled - uint64(index),
		}
	}

	return assignments, nil
}

func (assigner *shuffleSeatingAssigner) Verify(assignments []SeatAssignment, exam Exam, students []Student, classrooms []Classroom) bool {
	classroomsById := lo.KeyBy(classrooms, func(classroom Classroom) uint64 {
		return classroom.Id
	})
	enrolled := lo.KeyBy(students, func(student Student) uint64 {
		return student.Id
	})

	validSeats := make(map[uint64]map[Seat]bool)
	for _, classroom := range classrooms {
		validSeats[classroom.Id] = make(map[Seat]bool)
		for _, seat := range classroom.Seats() {
			validSeats[classroom.Id][seat] = true
		}
	}

	occupied := make(map[uint64]map[Seat]bool) // classroom -> taken seats
	seated := make(map[uint64]bool)            // students already seated
	perClassroom := make(map[uint64]uint64)

	for _, assignment := range assignments {
		if assignment.ExamId != exam.Id {
			return false
		}

		classroom, ok := classroomsById[assignment.ClassroomId]
		if !ok || !validSeats[classroom.Id][assignment.Seat] {
			return false
		}

		if _, ok := enrolled[assignment.StudentId]; !ok || seated[assignment.StudentId] {
			return false
		}
		seated[assignment.StudentId] = true

		if occupied[classroom.Id] == nil {
			occupied[classroom.Id] = make(map[Seat]bool)
		}
		if occupied[classroom.Id][assignment.Seat] {
			return false
		}
		occupied[classroom.Id][assignment.Seat] = true

		if perClassroom[classroom.Id]++; perClassroom[classroom.Id] > classroom.Capacity {
			return false
		}
	}

	// Complete: every enrolled student holds exactly one seat
	return len(seated) == len(students)
}
