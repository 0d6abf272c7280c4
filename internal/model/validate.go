package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects structurally invalid inputs before any placement attempt.
// It assumes defaults have been applied (see ScheduleConfig.WithDefaults).
func (input ModelInput) Validate() error {
	config := input.Config

	if err := validate.Struct(config); err != nil {
		return &InputError{Reason: err.Error()}
	}

	// DateOnly strings compare chronologically
	if config.EndDate < config.StartDate {
		return &InputError{Reason: fmt.Sprintf("window end %v precedes start %v", config.EndDate, config.StartDate)}
	}
	if clockToMinutes(config.DayEnd) <= clockToMinutes(config.DayStart) {
		return &InputError{Reason: fmt.Sprintf("operating hours end %v does not follow start %v", config.DayEnd, config.DayStart)}
	}
	if len(config.UsableDates()) == 0 {
		return &InputError{Reason: "scheduling window contains no usable dates"}
	}

	if len(input.Courses) == 0 {
		return &InputError{Reason: "no courses to schedule"}
	}
	if len(input.Classrooms) == 0 {
		return &InputError{Reason: "no classrooms available"}
	}

	operatingWindow := clockToMinutes(config.DayEnd) - clockToMinutes(config.DayStart)
	for _, course := range input.Courses {
		if config.Duration(course) > operatingWindow {
			return &InputError{Reason: fmt.Sprintf("course %v duration %v exceeds operating hours", course.Code, config.Duration(course))}
		}
	}

	for _, classroom := range input.Classrooms {
		if classroom.Capacity == 0 {
			return &InputError{Reason: fmt.Sprintf("classroom %v has zero capacity", classroom.Code)}
		}
		if classroom.Rows == 0 || classroom.Columns == 0 {
			return &InputError{Reason: fmt.Sprintf("classroom %v has an empty grid", classroom.Code)}
		}
		if _, ok := seatPositions[classroom.SeatGroup]; !ok {
			return &InputError{Reason: fmt.Sprintf("classroom %v seat group must be 2, 3 or 4", classroom.Code)}
		}
	}

	return nil
}

// clockToMinutes converts a clock string ("09:00") to minutes from midnight.
// Malformed clocks are rejected during validation, so here they panic.
func clockToMinutes(clock string) uint64 {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		panic(fmt.Sprintf("cannot parse clock: %v", clock))
	}
	hours, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		panic(fmt.Sprintf("cannot parse clock: %v", err))
	}
	minutes, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		panic(fmt.Sprintf("cannot parse clock: %v", err))
	}
	return hours*60 + minutes
}

func minutesToClock(minutes uint64) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
