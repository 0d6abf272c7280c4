package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// greedyScheduler places the most constrained courses first (highest conflict
// degree, the classic graph-coloring heuristic) and undoes recent placements
// when it gets stuck, up to a fixed backtracking budget.
type greedyScheduler struct {
	maxBacktracks uint64
}

func newGreedyScheduler(maxBacktracks uint64) *greedyScheduler {
	return &greedyScheduler{
		maxBacktracks: maxBacktracks,
	}
}

func (scheduler *greedyScheduler) Build(input ModelInput, relation ConflictRelation) ([]Exam, error) {
	input.Config = input.Config.WithDefaults()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	state := newSearchState(input, relation)

	//** Search state: a queue of course visit-indices plus an explicit record
	//** of committed decisions, so backtracking is a deterministic undo
	pending := lo.Range(len(state.courses))
	next := make([]uint64, len(state.courses)) // next candidate to try per course
	placed := []Exam{}
	placedCourse := []int{} // visit-index per placed exam, most recent last
	unplaceable := []uint64{}
	var backtracks uint64

	for len(pending) > 0 {
		courseIdx := pending[0]
		pending = pending[1:]
		course := state.courses[courseIdx]

		candidate, exam, ok := state.place(course, next[courseIdx], placed)
		if ok {
			next[courseIdx] = candidate + 1
			placed = append(placed, exam)
			placedCourse = append(placedCourse, courseIdx)
			continue
		}

		// No candidate left: unschedule the most recently placed conflicting
		// course and retry, while the backtracking budget lasts
		victim := -1
		if backtracks < scheduler.maxBacktracks {
			for i := len(placed) - 1; i >= 0; i-- {
				if relation.Conflicts(course.Id, placed[i].CourseId) {
					victim = i
					break
				}
			}
		}
		if victim == -1 {
			unplaceable = append(unplaceable, course.Id)
			continue
		}

		backtracks++
		victimIdx := placedCourse[victim]
		placed = slices.Delete(placed, victim, victim+1)
		placedCourse = slices.Delete(placedCourse, victim, victim+1)
		next[courseIdx] = 0 // removing an exam may unlock earlier candidates
		pending = append([]int{courseIdx, victimIdx}, pending...)
	}

	if len(unplaceable) > 0 {
		slices.Sort(unplaceable)
		return nil, &InfeasibleError{Unplaceable: unplaceable}
	}

	slices.SortFunc(placed, func(a, b Exam) int {
		if comparison := cmp.Compare(a.Date, b.Date); comparison != 0 {
			return comparison
		}
		if comparison := cmp.Compare(a.Start, b.Start); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.CourseId, b.CourseId)
	})

	return placed, nil
}

func (scheduler *greedyScheduler) Verify(exams []Exam, input ModelInput, relation ConflictRelation) bool {
	return verifySchedule(exams, input, relation)
}

type searchState struct {
	config      ScheduleConfig
	relation    ConflictRelation
	courses     []Course // visit order: most constrained first
	coursesById map[uint64]Course
	enrollment  map[uint64]uint64 // course id -> enrolled student count
	classrooms  []Classroom       // capacity descending
	dates       []string
	dayStart    uint64
	dayEnd      uint64
}

func newSearchState(input ModelInput, relation ConflictRelation) *searchState {
	coursesById := lo.KeyBy(input.Courses, func(course Course) uint64 {
		return course.Id
	})

	enrollment := make(map[uint64]uint64)
	for _, student := range input.Students {
		for _, courseId := range student.Courses {
			if _, ok := coursesById[courseId]; ok {
				enrollment[courseId]++
			}
		}
	}

	// Highest conflict degree first, largest enrollment next, id as the final
	// tie-break to keep the visit order deterministic
	courses := slices.Clone(input.Courses)
	slices.SortFunc(courses, func(a, b Course) int {
		if comparison := cmp.Compare(relation.Degree(b.Id), relation.Degree(a.Id)); comparison != 0 {
			return comparison
		}
		if comparison := cmp.Compare(enrollment[b.Id], enrollment[a.Id]); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.Id, b.Id)
	})

	classrooms := slices.Clone(input.Classrooms)
	slices.SortFunc(classrooms, func(a, b Classroom) int {
		if comparison := cmp.Compare(b.Capacity, a.Capacity); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.Id, b.Id)
	})

	return &searchState{
		config:      input.Config,
		relation:    relation,
		courses:     courses,
		coursesById: coursesById,
		enrollment:  enrollment,
		classrooms:  classrooms,
		dates:       input.Config.UsableDates(),
		dayStart:    clockToMinutes(input.Config.DayStart),
		dayEnd:      clockToMinutes(input.Config.DayEnd),
	}
}

// place commits nothing: it returns the first feasible candidate at or after
// the given one, enumerated in window order (earliest date, then earliest
// start time).
func (state *searchState) place(course Course, from uint64, placed []Exam) (uint64, Exam, bool) {
	duration := state.config.Duration(course)
	slots := state.slotsPerDay(duration)
	total := uint64(len(state.dates)) * slots

	for candidate := from; candidate < total; candidate++ {
		date := state.dates[candidate/slots]
		start := state.dayStart + (candidate%slots)*state.config.SlotStep

		classrooms, feasible := state.feasible(course, duration, date, start, placed)
		if !feasible {
			continue
		}

		exam := Exam{
			Id:         examId(state.config.ExamType, course.Id, date, start),
			CourseId:   course.Id,
			Type:       state.config.ExamType,
			Date:       date,
			Start:      start,
			End:        start + duration,
			Duration:   duration,
			Classrooms: classrooms,
		}
		return candidate, exam, true
	}

	return 0, Exam{}, false
}

func (state *searchState) slotsPerDay(duration uint64) uint64 {
	window := state.dayEnd - state.dayStart
	if duration > window {
		return 0
	}
	return (window-duration)/state.config.SlotStep + 1
}

func (state *searchState) feasible(course Course, duration uint64, date string, start uint64, placed []Exam) ([]uint64, bool) {
	end := start + duration
	paddedEnd := end + state.config.BreakTime

	busy := make(map[uint64]bool)
	for _, exam := range placed {
		if exam.Date != date {
			continue
		}
		if !windowsOverlap(start, paddedEnd, exam.Start, exam.End+state.config.BreakTime) {
			continue
		}
		if state.config.NoOverlap || state.relation.Conflicts(course.Id, exam.CourseId) {
			return nil, false
		}
		for _, classroom := range exam.Classrooms {
			busy[classroom] = true
		}
	}

	if DailyCountExceeded(placed, state.coursesById, course.Year, date, state.config.DailyCap) {
		return nil, false
	}

	//** Split the enrolled students across free classrooms, largest first
	remaining := state.enrollment[course.Id]
	classrooms := []uint64{}
	for _, classroom := range state.classrooms {
		if remaining == 0 {
			break
		}
		if busy[classroom.Id] {
			continue
		}
		classrooms = append(classrooms, classroom.Id)
		if classroom.Capacity >= remaining {
			remaining = 0
		} else {
			remaining -= classroom.Capacity
		}
	}
	if remaining > 0 {
		return nil, false
	}

	return classrooms, true
}

// examId derives a stable identifier from the placement itself, so replaying
// a run with identical inputs reproduces identical records.
func examId(examType ExamType, courseId uint64, date string, start uint64) string {
	name := fmt.Sprintf("%v/%v/%v/%v", examType, courseId, date, start)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
