package simcase

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// JSONList is a scenario or question list persisted as serialized JSON.
// Reading back a malformed stored value never fails: the raw text is
// returned as a single-element list instead.
type JSONList []interface{}

var _ driver.Valuer = (JSONList)(nil)

func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		l = JSONList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling list")
	}
	return string(data), nil
}

func (l *JSONList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = JSONList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return errors.Errorf("scanning list: unsupported type %T", src)
	}

	var parsed []interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// lenient degradation: keep the raw stored value
		*l = JSONList{raw}
		return nil
	}
	*l = parsed
	return nil
}

type Case struct {
	ID        int      `json:"id" db:"id"`
	Key       string   `json:"caseKey" db:"case_key"`
	Title     string   `json:"title" db:"title"`
	Scenarios JSONList `json:"scenarios" db:"scenarios"`
	Questions JSONList `json:"questions" db:"questions"`
}

// Assignment is one case handed to one student.
type Assignment struct {
	StudentName string    `json:"-" db:"student_name"`
	CaseID      string    `json:"caseId" db:"case_id"`
	Title       string    `json:"title" db:"title"`
	Scenarios   JSONList  `json:"scenarios" db:"scenarios"`
	Questions   JSONList  `json:"questions" db:"questions"`
	AssignedAt  time.Time `json:"assignedAt" db:"assigned_at"`
}

// NewAssignment contains information needed to assign a case to students.
type NewAssignment struct {
	CaseKey          string   `json:"caseKey" validate:"required"`
	Title            string   `json:"title" validate:"required"`
	Scenarios        JSONList `json:"scenarios" validate:"required,min=1"`
	Questions        JSONList `json:"questions" validate:"required,min=1"`
	AssignedStudents []string `json:"assignedStudents" validate:"required,min=1,dive,required"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	return validate.Struct(na)
}

// ActivityEvent is the message pushed to every connected realtime client
// when a case is assigned.
type ActivityEvent struct {
	Type             string    `json:"type"`
	CaseKey          string    `json:"caseKey"`
	Title            string    `json:"title"`
	AssignedStudents []string  `json:"assignedStudents"`
	Timestamp        time.Time `json:"timestamp"`
}
