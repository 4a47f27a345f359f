package report

import (
	"github.com/volatiletech/null/v8"

	"github.com/onesim/simcase/core"
)

// Record is one row of the teacher aggregate view:
// users joined with their case assignments and the case's patients.
type Record struct {
	StudentName           string      `json:"student_name" db:"student_name"`
	StudentEmail          string      `json:"student_email" db:"student_email"`
	CaseTitle             string      `json:"case_title" db:"case_title"`
	CaseScenarios         string      `json:"case_scenarios" db:"case_scenarios"`
	CaseQuestions         string      `json:"case_questions" db:"case_questions"`
	PatientName           string      `json:"patient_name" db:"patient_name"`
	PatientAge            int         `json:"patient_age" db:"patient_age"`
	PatientGender         string      `json:"patient_gender" db:"patient_gender"`
	PatientContact        string      `json:"patient_contact" db:"patient_contact"`
	PatientMedicalHistory null.String `json:"patient_medical_history" db:"patient_medical_history"`
	PatientAllergies      null.String `json:"patient_allergies" db:"patient_allergies"`
	PatientBloodGroup     null.String `json:"patient_blood_group" db:"patient_blood_group"`
}

// QueryFilter applies AND; an absent field means "no filter applied".
type QueryFilter struct {
	StudentName string `query:"studentName"`
	CaseID      string `query:"caseId"`
}

func (qf *QueryFilter) Clean() {
	qf.StudentName = core.CleanString(qf.StudentName)
	qf.CaseID = core.CleanString(qf.CaseID)
}
