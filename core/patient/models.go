package patient

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/onesim/simcase/core"
)

// Patient is created once per registration and immutable thereafter.
// Everything past the identity fields is optional and stored as NULL
// when absent.
type Patient struct {
	ID             int    `json:"id" db:"id"`
	CaseID         string `json:"caseId" db:"case_id"`
	RegistrationID string `json:"registration_id" db:"registration_id"`
	Name           string `json:"name" db:"name"`
	Age            int    `json:"age" db:"age"`
	Gender         string `json:"gender" db:"gender"`
	Contact        string `json:"contact" db:"contact"`

	Email            null.String `json:"email" db:"email"`
	Address          null.String `json:"address" db:"address"`
	MedicalHistory   null.String `json:"medicalHistory" db:"medical_history"`
	Allergies        null.String `json:"allergies" db:"allergies"`
	BloodGroup       null.String `json:"bloodGroup" db:"blood_group"`
	EmergencyContact null.String `json:"emergencyContact" db:"emergency_contact"`
	DateOfAdmission  null.String `json:"dateOfAdmission" db:"date_of_admission"`

	// vitals
	Height          null.String `json:"height" db:"height"`
	Weight          null.String `json:"weight" db:"weight"`
	Temperature     null.String `json:"temperature" db:"temperature"`
	BloodPressure   null.String `json:"bloodPressure" db:"blood_pressure"`
	PulseRate       null.String `json:"pulseRate" db:"pulse_rate"`
	RespiratoryRate null.String `json:"respiratoryRate" db:"respiratory_rate"`
	SpO2            null.String `json:"spO2" db:"sp_o2"`
}

// NewPatient contains information needed to register a Patient.
type NewPatient struct {
	CaseID         string `json:"caseId" validate:"required"`
	RegistrationID string `json:"registration_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Contact        string `json:"contact" validate:"required"`

	Email            null.String `json:"email"`
	Address          null.String `json:"address"`
	MedicalHistory   null.String `json:"medicalHistory"`
	Allergies        null.String `json:"allergies"`
	BloodGroup       null.String `json:"bloodGroup"`
	EmergencyContact null.String `json:"emergencyContact"`
	DateOfAdmission  null.String `json:"dateOfAdmission"`
	Height           null.String `json:"height"`
	Weight           null.String `json:"weight"`
	Temperature      null.String `json:"temperature"`
	BloodPressure    null.String `json:"bloodPressure"`
	PulseRate        null.String `json:"pulseRate"`
	RespiratoryRate  null.String `json:"respiratoryRate"`
	SpO2             null.String `json:"spO2"`
}

func (np *NewPatient) Validate(validate *validator.Validate) error {
	np.Name = core.CleanString(np.Name)
	np.RegistrationID = core.CleanString(np.RegistrationID)
	return validate.Struct(np)
}

// Patient converts the payload to its persisted form.
func (np NewPatient) Patient() Patient {
	return Patient{
		CaseID:           np.CaseID,
		RegistrationID:   np.RegistrationID,
		Name:             np.Name,
		Age:              np.Age,
		Gender:           np.Gender,
		Contact:          np.Contact,
		Email:            np.Email,
		Address:          np.Address,
		MedicalHistory:   np.MedicalHistory,
		Allergies:        np.Allergies,
		BloodGroup:       np.BloodGroup,
		EmergencyContact: np.EmergencyContact,
		DateOfAdmission:  np.DateOfAdmission,
		Height:           np.Height,
		Weight:           np.Weight,
		Temperature:      np.Temperature,
		BloodPressure:    np.BloodPressure,
		PulseRate:        np.PulseRate,
		RespiratoryRate:  np.RespiratoryRate,
		SpO2:             np.SpO2,
	}
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
