package model

// Exam is a committed placement of one course's exam. Records are immutable
// once a run commits them; a new run for the same exam type replaces them
// wholesale.
type Exam struct {
	Id         string
	CourseId   uint64
	Type       ExamType
	Date       string // 2006-01-02
	Start      uint64 // minutes from midnight
	End        uint64 // Start + Duration; break padding is a placement concern only
	Duration   uint64
	Classrooms []uint64 // assigned classroom ids in filling order
}

func (exam Exam) StartClock() string {
	return minutesToClock(exam.Start)
}

func (exam Exam) EndClock() string {
	return minutesToClock(exam.End)
}

// SeatAssignment binds one student to one seat of one classroom for one exam.
type SeatAssignment struct {
	ExamId      string
	ClassroomId uint64
	Seat        Seat
	StudentId   uint64
}
