package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/patient"
)

type patientRepository struct {
	db *sqlx.DB
}

var _ patient.Repository = (*patientRepository)(nil)

func NewPatientRepository(db *sqlx.DB) patient.Repository {
	return &patientRepository{db: db}
}

func (repo *patientRepository) CreatePatient(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	res, err := repo.db.ExecContext(ctx,
		`INSERT INTO patients (
			case_id, registration_id, name, age, gender, contact, email, address,
			medical_history, allergies, blood_group, emergency_contact, date_of_admission,
			height, weight, temperature, blood_pressure, pulse_rate, respiratory_rate, sp_o2
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.CaseID, p.RegistrationID, p.Name, p.Age, p.Gender, p.Contact, p.Email, p.Address,
		p.MedicalHistory, p.Allergies, p.BloodGroup, p.EmergencyContact, p.DateOfAdmission,
		p.Height, p.Weight, p.Temperature, p.BloodPressure, p.PulseRate, p.RespiratoryRate, p.SpO2,
	)
	if err != nil {
		return patient.Patient{}, errors.Wrap(err, "creating patient")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return patient.Patient{}, errors.Wrap(err, "getting inserted patient id")
	}
	p.ID = int(id)
	return p, nil
}

func (repo *patientRepository) FilterPatients(ctx context.Context, filter patient.QueryFilter) ([]patient.Patient, error) {
	query := `SELECT id, case_id, registration_id, name, age, gender, contact, email, address,
		medical_history, allergies, blood_group, emergency_contact, date_of_admission,
		height, weight, temperature, blood_pressure, pulse_rate, respiratory_rate, sp_o2
		FROM patients WHERE 1=1`
	args := make([]interface{}, 0, 2)

	if filter.StudentName != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+filter.StudentName+"%")
	}
	if filter.CaseID != "" {
		query += " AND case_id = ?"
		args = append(args, filter.CaseID)
	}

	var patients []patient.Patient
	if err := repo.db.SelectContext(ctx, &patients, query, args...); err != nil {
		return nil, errors.Wrap(err, "filtering patients")
	}
	return patients, nil
}
