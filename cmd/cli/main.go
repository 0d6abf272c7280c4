package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"examplan/internal/model"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type output struct {
	Exams   []model.Exam           `json:"exams"`
	Seating []model.SeatAssignment `json:"seating,omitempty"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	seedPtr := flag.Int64("seed", 1, "Seed for the seating shuffle; identical seeds and inputs replay identical plans")
	seatingPtr := flag.Bool("seating", true, "Whether to produce seating plans along with the schedule")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	// Validate arguments
	if *filePathPtr == "" {
		sugar.Fatal("an input file must be specified")
	}

	// Extract input
	input, err := model.InputFromJson(*filePathPtr)
	if err != nil {
		sugar.Fatalf("cannot parse input file: %v", err)
	}

	// Initialize engines
	relation := model.NewConflictIndexer().Build(input.Students)
	scheduler := model.NewScheduler()

	// Build schedule
	exams, err := scheduler.Build(input, relation)

	var infeasible *model.InfeasibleError
	var invalid *model.InputError
	if errors.As(err, &infeasible) {
		sugar.Errorw("schedule is infeasible under current constraints", "unplaceable", infeasible.Unplaceable)
		os.Exit(20)
	} else if errors.As(err, &invalid) {
		sugar.Errorw("input rejected", "reason", invalid.Reason)
		os.Exit(2)
	} else if err != nil {
		sugar.Fatalf("an error occurred during schedule construction: %v", err)
	}

	// Verify schedule correctness
	if !scheduler.Verify(exams, input, relation) {
		sugar.Error("schedule verification failed")
		os.Exit(15)
	}

	days := lo.Uniq(lo.Map(exams, func(exam model.Exam, _ int) string { return exam.Date }))
	sugar.Infow("schedule built", "type", input.Config.ExamType, "exams", len(exams), "days", len(days))

	result := output{Exams: exams}

	if *seatingPtr {
		assigner := model.NewSeatingAssigner()
		random := rand.New(rand.NewSource(*seedPtr))
		classroomsById := lo.KeyBy(input.Classrooms, func(classroom model.Classroom) uint64 { return classroom.Id })

		for _, exam := range exams {
			enrolled := lo.Filter(input.Students, func(student model.Student, _ int) bool {
				return lo.Contains(student.Courses, exam.CourseId)
			})
			classrooms := lo.Map(exam.Classrooms, func(id uint64, _ int) model.Classroom {
				return classroomsById[id]
			})

			assignments, err := assigner.Assign(exam, enrolled, classrooms, random)

			var shortfall *model.CapacityError
			if errors.As(err, &shortfall) {
				sugar.Errorw("seating capacity shortfall", "exam", exam.Id, "shortfall", shortfall.Shortfall)
				os.Exit(20)
			} else if err != nil {
				sugar.Fatalf("an error occurred during seating assignment: %v", err)
			}

			if !assigner.Verify(assignments, exam, enrolled, classrooms) {
				sugar.Error("seating verification failed")
				os.Exit(15)
			}

			result.Seating = append(result.Seating, assignments...)
		}

		sugar.Infow("seating assigned", "assignments", len(result.Seating), "seed", *seedPtr)
	}

	// Write output
	bytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		sugar.Fatalf("cannot serialize output: %v", err)
	}

	if *outFilePathPtr == "" {
		fmt.Println(string(bytes))
	} else if err := os.WriteFile(*outFilePathPtr, bytes, 0644); err != nil {
		sugar.Fatalf("cannot write output file: %v", err)
	}
}
