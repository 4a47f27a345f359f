package answer

import (
	"context"
	"sort"
	"time"
)

type (
	Repository interface {
		// SaveAnswers persists the whole batch atomically: either every row
		// is inserted or none is.
		SaveAnswers(ctx context.Context, answers []Answer) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit turns the submission into one row per (question, answer) pair,
// all sharing a single submission timestamp.
func (svc *Service) Submit(ctx context.Context, sub Submission) ([]Answer, error) {
	now := time.Now().UTC()

	questionIDs := make([]string, 0, len(sub.Answers))
	for qid := range sub.Answers {
		questionIDs = append(questionIDs, qid)
	}
	sort.Strings(questionIDs) // deterministic insert order

	answers := make([]Answer, 0, len(questionIDs))
	for _, qid := range questionIDs {
		answers = append(answers, Answer{
			StudentName: sub.StudentName,
			CaseID:      sub.CaseID,
			QuestionID:  qid,
			Answer:      sub.Answers[qid],
			SubmittedAt: now,
		})
	}

	if err := svc.repo.SaveAnswers(ctx, answers); err != nil {
		return nil, err
	}
	return answers, nil
}
