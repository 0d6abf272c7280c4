package model

import "github.com/samber/lo"

// Pure predicates shared by the scheduling and seating engines. Both engines
// must consult these before committing a placement; none of them has side
// effects.

// Overlaps reports whether two exams' time windows intersect on the same
// date. Actual end times are compared, so exams with different durations are
// handled correctly.
func Overlaps(examA, examB Exam) bool {
	return examA.Date == examB.Date && windowsOverlap(examA.Start, examA.End, examB.Start, examB.End)
}

func windowsOverlap(start1, end1, start2, end2 uint64) bool {
	return start1 < end2 && start2 < end1
}

// DailyCountExceeded reports whether adding one more exam for the class level
// on the date would push the committed same-day count past the cap.
func DailyCountExceeded(exams []Exam, courses map[uint64]Course, year uint64, date string, cap uint64) bool {
	count := lo.CountBy(exams, func(exam Exam) bool {
		return exam.Date == date && courses[exam.CourseId].Year == year
	})
	return uint64(count)+1 > cap
}

// CapacitySufficient reports whether the classrooms' combined usable seats
// hold the given number of students.
func CapacitySufficient(classrooms []Classroom, students uint64) bool {
	return SeatingCapacity(classrooms) >= students
}

// SeatingCapacity sums usable seats across classrooms.
func SeatingCapacity(classrooms []Classroom) uint64 {
	return lo.SumBy(classrooms, func(classroom Classroom) uint64 {
		return classroom.UsableSeats()
	})
}
