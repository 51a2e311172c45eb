package grading

// Session is the state behind one form: its rows and the last result.
// Result is nil until the first successful compute and after a reset.
type Session struct {
	Subjects *SubjectList
	Result   *Result
}

func NewSession() *Session {
	return &Session{Subjects: NewSubjectList()}
}

// Compute stores a new result on success. On ErrNoValidGrades the previous
// result is kept.
func (s *Session) Compute() (Result, error) {
	res, err := Compute(s.Subjects.Entries())
	if err != nil {
		return Result{}, err
	}
	s.Result = &res
	return res, nil
}

// Reset returns the form to a single empty row with no result.
func (s *Session) Reset() {
	s.Subjects.Reset()
	s.Result = nil
}
