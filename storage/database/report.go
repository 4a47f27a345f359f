package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/report"
	"github.com/onesim/simcase/core/user"
)

type reportRepository struct {
	db *sqlx.DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *sqlx.DB) report.Repository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) FilterRecords(ctx context.Context, filter report.QueryFilter) ([]report.Record, error) {
	query := `SELECT
			u.name AS student_name,
			u.email AS student_email,
			ca.title AS case_title,
			ca.scenarios AS case_scenarios,
			ca.questions AS case_questions,
			p.name AS patient_name,
			p.age AS patient_age,
			p.gender AS patient_gender,
			p.contact AS patient_contact,
			p.medical_history AS patient_medical_history,
			p.allergies AS patient_allergies,
			p.blood_group AS patient_blood_group
		FROM users u
		INNER JOIN case_assignments ca ON u.name = ca.student_name
		INNER JOIN patients p ON p.case_id = ca.case_id
		WHERE u.role = ?`
	args := []interface{}{user.RoleStudent}

	if filter.StudentName != "" {
		query += " AND u.name LIKE ?"
		args = append(args, "%"+filter.StudentName+"%")
	}
	if filter.CaseID != "" {
		query += " AND ca.case_id = ?"
		args = append(args, filter.CaseID)
	}

	var records []report.Record
	if err := repo.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, errors.Wrap(err, "filtering teacher records")
	}
	return records, nil
}
