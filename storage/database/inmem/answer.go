package inmemdb

import (
	"context"

	"github.com/onesim/simcase/core/answer"
)

type answerRepository struct {
	db *answerTable
}

var _ answer.Repository = (*answerRepository)(nil)

func NewAnswerRepository(db *DB) answer.Repository {
	return &answerRepository{db: db.answers}
}

func (repo *answerRepository) SaveAnswers(_ context.Context, answers []answer.Answer) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range answers {
		repo.db.pkCount++
		answers[i].ID = repo.db.pkCount
	}
	repo.db.table = append(repo.db.table, answers...)
	return nil
}
