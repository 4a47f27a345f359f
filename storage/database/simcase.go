package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/simcase"
)

type caseRepository struct {
	db *sqlx.DB
}

var _ simcase.Repository = (*caseRepository)(nil)

func NewCaseRepository(db *sqlx.DB) simcase.Repository {
	return &caseRepository{db: db}
}

func (repo *caseRepository) QueryAllCases(ctx context.Context) ([]simcase.Case, error) {
	var cases []simcase.Case
	err := repo.db.SelectContext(ctx, &cases,
		"SELECT id, case_key, title, scenarios, questions FROM cases",
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying cases")
	}
	return cases, nil
}

func (repo *caseRepository) CreateAssignments(ctx context.Context, asgs []simcase.Assignment) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning assignments tx")
	}

	const query = "INSERT INTO case_assignments (case_id, student_name, title, scenarios, questions, assigned_at) " +
		"VALUES (?, ?, ?, ?, ?, ?)"
	for _, asg := range asgs {
		if _, err = tx.ExecContext(ctx, query,
			asg.CaseID, asg.StudentName, asg.Title, asg.Scenarios, asg.Questions, asg.AssignedAt,
		); err != nil {
			_ = tx.Rollback()
			return errors.Wrap(err, "inserting assignment")
		}
	}
	return errors.Wrap(tx.Commit(), "committing assignments")
}

func (repo *caseRepository) GetAssignmentsByStudent(ctx context.Context, studentName string) ([]simcase.Assignment, error) {
	var asgs []simcase.Assignment
	err := repo.db.SelectContext(ctx, &asgs,
		"SELECT student_name, case_id, title, scenarios, questions, assigned_at "+
			"FROM case_assignments WHERE student_name = ?",
		studentName,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying student assignments")
	}
	return asgs, nil
}
