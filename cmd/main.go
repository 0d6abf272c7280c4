package main

import (
	"fmt"
	"log"
	"math/rand"

	"examplan/internal/model"

	"github.com/samber/lo"
)

const File string = "test/input/final.json"
const Seed int64 = 42

func main() {
	input, err := model.InputFromJson(File)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	indexer := model.NewConflictIndexer()
	relation := indexer.Build(input.Students)

	scheduler := model.NewScheduler()
	exams, err := scheduler.Build(input, relation)
	if err != nil {
		log.Fatal(err)
	}

	if !scheduler.Verify(exams, input, relation) {
		log.Fatal("Verification failed")
	}

	coursesById := lo.KeyBy(input.Courses, func(course model.Course) uint64 { return course.Id })
	classroomsById := lo.KeyBy(input.Classrooms, func(classroom model.Classroom) uint64 { return classroom.Id })

	for _, exam := range exams {
		course := coursesById[exam.CourseId]
		rooms := lo.Map(exam.Classrooms, func(id uint64, _ int) string { return classroomsById[id].Code })
		fmt.Printf("Date: %v, Time: %v-%v, Course: %v (%v), Classrooms: %v\n",
			exam.Date, exam.StartClock(), exam.EndClock(), course.Code, course.Name, rooms)
	}

	assigner := model.NewSeatingAssigner()
	random := rand.New(rand.NewSource(Seed))

	for _, exam := range exams {
		enrolled := lo.Filter(input.Students, func(student model.Student, _ int) bool {
			return lo.Contains(student.Courses, exam.CourseId)
		})
		classrooms := lo.Map(exam.Classrooms, func(id uint64, _ int) model.Classroom {
			return classroomsById[id]
		})

		assignments, err := assigner.Assign(exam, enrolled, classrooms, random)
		if err != nil {
			log.Fatal(err)
		}
		if !assigner.Verify(assignments, exam, enrolled, classrooms) {
			log.Fatal("Verification failed")
		}

		fmt.Printf("Seating %v: %v students placed\n", coursesById[exam.CourseId].Code, len(assignments))
	}

	fmt.Println("Well done!")
}
