package model

import (
	"fmt"

	"github.com/samber/lo"
)

// verifySchedule re-checks a committed schedule against every hard
// constraint, from scratch and without trusting the builder:
// - every input course is scheduled exactly once
// - every exam lies on a usable date within operating hours
// - durations honor the per-course exceptions and End = Start + Duration
// - no two conflicting exams overlap
// - no class-level exceeds the daily cap
// - assigned classrooms exist, are never double-booked and cover enrollment
func verifySchedule(exams []Exam, input ModelInput, relation ConflictRelation) bool {
	config := input.Config.WithDefaults()

	coursesById := lo.KeyBy(input.Courses, func(course Course) uint64 {
		return course.Id
	})
	classroomsById := lo.KeyBy(input.Classrooms, func(classroom Classroom) uint64 {
		return classroom.Id
	})

	enrollment := make(map[uint64]uint64)
	for _, student := range input.Students {
		for _, courseId := range student.Courses {
			if _, ok := coursesById[courseId]; ok {
				enrollment[courseId]++
			}
		}
	}

	usableDates := make(map[string]bool)
	for _, date := range config.UsableDates() {
		usableDates[date] = true
	}

	dayStart := clockToMinutes(config.DayStart)
	dayEnd := clockToMinutes(config.DayEnd)

	scheduled := make(map[uint64]bool)
	dailyCount := make(map[string]uint64) // keyed by class-level and date

	for _, exam := range exams {
		course, known := coursesById[exam.CourseId]
		if !known || scheduled[exam.CourseId] {
			return false
		}
		scheduled[exam.CourseId] = true

		if exam.Type != config.ExamType ||
			!usableDates[exam.Date] ||
			exam.Start < dayStart ||
			exam.End > dayEnd ||
			exam.Duration != config.Duration(course) ||
			exam.End != exam.Start+exam.Duration {
			return false
		}

		var capacity uint64
		for _, classroomId := range exam.Classrooms {
			classroom, ok := classroomsById[classroomId]
			if !ok {
				return false
			}
			capacity += classroom.Capacity
		}
		if capacity < enrollment[exam.CourseId] {
			return false
		}

		key := fmt.Sprintf("%v#%v", course.Year, exam.Date)
		dailyCount[key]++
		if dailyCount[key] > config.DailyCap {
			return false
		}
	}

	if uint64(len(scheduled)) != uint64(len(input.Courses)) {
		return false
	}

	for i := 0; i < len(exams)-1; i++ {
		for j := i + 1; j < len(exams); j++ {
			examA, examB := exams[i], exams[j]
			if relation.Conflicts(examA.CourseId, examB.CourseId) && Overlaps(examA, examB) {
				return false
			}
			if Overlaps(examA, examB) && lo.Some(examA.Classrooms, examB.Classrooms) {
				return false
			}
		}
	}

	return true
}
