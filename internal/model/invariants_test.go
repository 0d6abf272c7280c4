package model

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"
)

// End-to-end run over a faculty-sized instance: every committed record must
// honor the hard constraints, whatever slots the search picked.
func TestScheduleAndSeatingInvariants(t *testing.T) {
	g := NewWithT(t)

	//** Arrange: 3 class-levels, 4 courses each, 20 students per level taking
	//** 3 of their level's courses
	courses := make([]Course, 0, 12)
	for i := 0; i < 12; i++ {
		courses = append(courses, Course{
			Id:   uint64(i + 1),
			Code: fmt.Sprintf("CRS%v", i+1),
			Name: fmt.Sprintf("Course %v", i+1),
			Year: uint64(i/4 + 1),
		})
	}

	students := make([]Student, 0, 60)
	for year := uint64(1); year <= 3; year++ {
		base := (year - 1) * 4
		for i := 0; i < 20; i++ {
			enrolled := []uint64{}
			for offset := 0; offset < 4; offset++ {
				if offset == i%4 { // each student skips one course of their level
					continue
				}
				enrolled = append(enrolled, base+uint64(offset)+1)
			}
			students = append(students, Student{
				Id:      year*1000 + uint64(i),
				Number:  fmt.Sprintf("%v%03d", year, i),
				Year:    year,
				Courses: enrolled,
			})
		}
	}

	classrooms := []Classroom{
		{Id: 1, Code: "A101", Capacity: 40, Rows: 10, Columns: 7, SeatGroup: 3},
		{Id: 2, Code: "A102", Capacity: 30, Rows: 10, Columns: 5, SeatGroup: 3},
		{Id: 3, Code: "B204", Capacity: 20, Rows: 5, Columns: 4, SeatGroup: 4},
	}

	input := ModelInput{
		Courses:    courses,
		Students:   students,
		Classrooms: classrooms,
		Config: ScheduleConfig{
			ExamType:  Final,
			StartDate: "2026-01-12",
			EndDate:   "2026-01-16",
			BreakTime: 15,
		}.WithDefaults(),
	}

	relation := NewConflictIndexer().Build(students)
	scheduler := NewScheduler()

	//** Act
	exams, err := scheduler.Build(input, relation)

	//** Assert scheduling invariants
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exams).To(HaveLen(len(courses)))
	g.Expect(scheduler.Verify(exams, input, relation)).To(BeTrue())

	for i := 0; i < len(exams)-1; i++ {
		for j := i + 1; j < len(exams); j++ {
			if relation.Conflicts(exams[i].CourseId, exams[j].CourseId) {
				g.Expect(Overlaps(exams[i], exams[j])).To(BeFalse())
			}
		}
	}

	coursesById := lo.KeyBy(courses, func(course Course) uint64 { return course.Id })
	daily := map[string]int{}
	for _, exam := range exams {
		daily[fmt.Sprintf("%v#%v", coursesById[exam.CourseId].Year, exam.Date)]++
	}
	for _, count := range daily {
		g.Expect(count).To(BeNumerically("<=", DefaultDailyCap))
	}

	//** Act: seat every exam from one seeded source
	assigner := NewSeatingAssigner()
	random := rand.New(rand.NewSource(99))
	classroomsById := lo.KeyBy(classrooms, func(classroom Classroom) uint64 { return classroom.Id })

	for _, exam := range exams {
		enrolled := lo.Filter(students, func(student Student, _ int) bool {
			return lo.Contains(student.Courses, exam.CourseId)
		})
		candidates := lo.Map(exam.Classrooms, func(id uint64, _ int) Classroom {
			return classroomsById[id]
		})

		assignments, err := assigner.Assign(exam, enrolled, candidates, random)

		//** Assert seating invariants per exam
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(assignments).To(HaveLen(len(enrolled)))
		g.Expect(assigner.Verify(assignments, exam, enrolled, candidates)).To(BeTrue())

		seats := map[string]bool{}
		seated := map[uint64]bool{}
		perClassroom := map[uint64]uint64{}
		for _, assignment := range assignments {
			seatKey := fmt.Sprintf("%v@%v-%v", assignment.ClassroomId, assignment.Seat.Row, assignment.Seat.Column)
			g.Expect(seats).ToNot(HaveKey(seatKey))
			g.Expect(seated).ToNot(HaveKey(assignment.StudentId))
			seats[seatKey] = true
			seated[assignment.StudentId] = true
			perClassroom[assignment.ClassroomId]++
		}
		for classroomId, count := range perClassroom {
			g.Expect(count).To(BeNumerically("<=", classroomsById[classroomId].Capacity))
		}
	}
}
