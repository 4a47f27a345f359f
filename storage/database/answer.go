package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/answer"
)

type answerRepository struct {
	db *sqlx.DB
}

var _ answer.Repository = (*answerRepository)(nil)

func NewAnswerRepository(db *sqlx.DB) answer.Repository {
	return &answerRepository{db: db}
}

// SaveAnswers inserts the batch in one transaction: a single failing row
// rolls the whole submission back.
func (repo *answerRepository) SaveAnswers(ctx context.Context, answers []answer.Answer) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning answers tx")
	}

	const query = "INSERT INTO student_answers (student_name, case_id, question_id, answer, submitted_at) " +
		"VALUES (?, ?, ?, ?, ?)"
	for _, ans := range answers {
		if _, err = tx.ExecContext(ctx, query,
			ans.StudentName, ans.CaseID, ans.QuestionID, ans.Answer, ans.SubmittedAt,
		); err != nil {
			_ = tx.Rollback()
			return errors.Wrap(err, "inserting answer")
		}
	}
	return errors.Wrap(tx.Commit(), "committing answers")
}
