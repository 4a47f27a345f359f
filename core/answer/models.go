package answer

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/onesim/simcase/core"
)

// Answer is one submitted row; append-only.
type Answer struct {
	ID          int       `json:"id" db:"id"`
	StudentName string    `json:"studentName" db:"student_name"`
	CaseID      string    `json:"caseId" db:"case_id"`
	QuestionID  string    `json:"questionId" db:"question_id"`
	Answer      string    `json:"answer" db:"answer"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`
}

// Submission is a student's full answer set for one case,
// keyed by question identifier.
type Submission struct {
	StudentName string            `json:"studentName" validate:"required"`
	CaseID      string            `json:"caseId" validate:"required"`
	Answers     map[string]string `json:"answers" validate:"required,min=1"`
}

func (s *Submission) Validate(validate *validator.Validate) error {
	s.StudentName = core.CleanString(s.StudentName)
	s.CaseID = core.CleanString(s.CaseID)
	return validate.Struct(s)
}
