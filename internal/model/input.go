package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

type ExamType string

const (
	Midterm ExamType = "midterm"
	Final   ExamType = "final"
	Makeup  ExamType = "makeup"
)

type Course struct {
	Id   uint64
	Code string
	Name string
	Year uint64 // class-level used by the daily exam cap
}

type Student struct {
	Id      uint64
	Number  string
	Name    string
	Year    uint64
	Courses []uint64 // enrolled course ids
}

type Classroom struct {
	Id        uint64
	Code      string
	Name      string
	Capacity  uint64
	Rows      uint64
	Columns   uint64 // benches per row
	SeatGroup uint64 `mapstructure:"seatGroup"` // seats per bench: 2, 3 or 4
}

type Seat struct {
	Row    uint64
	Column uint64
}

// Usable seat positions within a bench, indexed by bench width. Narrower
// benches leave gaps between neighboring students.
var seatPositions = map[uint64][]uint64{
	2: {2},
	3: {1, 3},
	4: {1, 4},
}

// Seats returns the classroom's addressable seat coordinates ordered by the
// row/column layout: row by row, bench by bench, usable positions within each
// bench. Rows and seat columns are 1-based.
func (classroom Classroom) Seats() []Seat {
	positions := seatPositions[classroom.SeatGroup]
	seats := make([]Seat, 0, classroom.Rows*classroom.Columns*uint64(len(positions)))
	for row := uint64(0); row < classroom.Rows; row++ {
		for bench := uint64(0); bench < classroom.Columns; bench++ {
			for _, position := range positions {
				seats = append(seats, Seat{
					Row:    row + 1,
					Column: bench*classroom.SeatGroup + position,
				})
			}
		}
	}
	return seats
}

// UsableSeats bounds the derived seat count by the declared capacity, since
// capacity is maintained independently of the grid shape.
func (classroom Classroom) UsableSeats() uint64 {
	seats := uint64(len(classroom.Seats()))
	if classroom.Capacity < seats {
		return classroom.Capacity
	}
	return seats
}

type ScheduleConfig struct {
	ExamType           ExamType          `mapstructure:"examType" validate:"required,oneof=midterm final makeup"`
	StartDate          string            `mapstructure:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate            string            `mapstructure:"endDate" validate:"required,datetime=2006-01-02"`
	DayStart           string            `mapstructure:"dayStart" validate:"required,datetime=15:04"`
	DayEnd             string            `mapstructure:"dayEnd" validate:"required,datetime=15:04"`
	SlotStep           uint64            `mapstructure:"slotStep" validate:"required"`
	BreakTime          uint64            `mapstructure:"breakTime"`
	DefaultDuration    uint64            `mapstructure:"defaultDuration" validate:"required"`
	DailyCap           uint64            `mapstructure:"dailyCap" validate:"required"`
	NoOverlap          bool              `mapstructure:"noOverlap"` // forbid any same-day overlap, conflicting or not
	ExcludedWeekdays   []time.Weekday    `mapstructure:"excludedWeekdays" validate:"dive,min=0,max=6"`
	DurationExceptions map[string]uint64 `mapstructure:"durationExceptions" validate:"dive,gt=0"`
}

const (
	DefaultDayStart = "09:00"
	DefaultDayEnd   = "17:00"
	DefaultSlotStep = 15
	DefaultDuration = 75
	DefaultDailyCap = 2
)

// WithDefaults fills unset fields with the institutional defaults.
func (config ScheduleConfig) WithDefaults() ScheduleConfig {
	if config.DayStart == "" {
		config.DayStart = DefaultDayStart
	}
	if config.DayEnd == "" {
		config.DayEnd = DefaultDayEnd
	}
	if config.SlotStep == 0 {
		config.SlotStep = DefaultSlotStep
	}
	if config.DefaultDuration == 0 {
		config.DefaultDuration = DefaultDuration
	}
	if config.DailyCap == 0 {
		config.DailyCap = DefaultDailyCap
	}
	return config
}

// UsableDates expands the scheduling window into calendar dates in order,
// skipping excluded weekdays.
func (config ScheduleConfig) UsableDates() []string {
	start, err := time.Parse(time.DateOnly, config.StartDate)
	if err != nil {
		panic(fmt.Sprintf("cannot parse start date: %v", err))
	}
	end, err := time.Parse(time.DateOnly, config.EndDate)
	if err != nil {
		panic(fmt.Sprintf("cannot parse end date: %v", err))
	}

	dates := []string{}
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		excluded := false
		for _, weekday := range config.ExcludedWeekdays {
			if current.Weekday() == weekday {
				excluded = true
				break
			}
		}
		if !excluded {
			dates = append(dates, current.Format(time.DateOnly))
		}
	}
	return dates
}

// Duration resolves a course's exam duration: per-code exception first,
// default otherwise.
func (config ScheduleConfig) Duration(course Course) uint64 {
	if duration, ok := config.DurationExceptions[course.Code]; ok {
		return duration
	}
	return config.DefaultDuration
}

type ModelInput struct {
	Courses    []Course
	Students   []Student
	Classrooms []Classroom
	Config     ScheduleConfig
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ModelInput{}, err
	}

	return input, nil
}
