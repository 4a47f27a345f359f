package simcase

import (
	"context"
	"errors"
	"time"
)

var ErrNoAssignments = errors.New("no assignments found for this student")

type (
	Repository interface {
		QueryAllCases(ctx context.Context) ([]Case, error)
		CreateAssignments(ctx context.Context, asgs []Assignment) error
		GetAssignmentsByStudent(ctx context.Context, studentName string) ([]Assignment, error)
	}

	// Broadcaster fans an event out to the clients connected at call time.
	// Delivery is best-effort, at-most-once, unacknowledged.
	Broadcaster interface {
		Broadcast(event ActivityEvent)
	}

	Service struct {
		repo  Repository
		bcast Broadcaster
	}
)

func NewService(repo Repository, bcast Broadcaster) *Service {
	return &Service{repo: repo, bcast: bcast}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Case, error) {
	return svc.repo.QueryAllCases(ctx)
}

// Assign persists one assignment row per student, then broadcasts a single
// ActivityEvent. Persistence failure aborts before any broadcast attempt;
// how many clients actually receive the event never affects the result.
func (svc *Service) Assign(ctx context.Context, na NewAssignment) (ActivityEvent, error) {
	now := time.Now().UTC()

	asgs := make([]Assignment, 0, len(na.AssignedStudents))
	for _, student := range na.AssignedStudents {
		asgs = append(asgs, Assignment{
			StudentName: student,
			CaseID:      na.CaseKey,
			Title:       na.Title,
			Scenarios:   na.Scenarios,
			Questions:   na.Questions,
			AssignedAt:  now,
		})
	}
	if err := svc.repo.CreateAssignments(ctx, asgs); err != nil {
		return ActivityEvent{}, err
	}

	event := ActivityEvent{
		Type:             "assignment",
		CaseKey:          na.CaseKey,
		Title:            na.Title,
		AssignedStudents: na.AssignedStudents,
		Timestamp:        now,
	}
	svc.bcast.Broadcast(event)
	return event, nil
}

func (svc *Service) StudentAssignments(ctx context.Context, studentName string) ([]Assignment, error) {
	asgs, err := svc.repo.GetAssignmentsByStudent(ctx, studentName)
	if err != nil {
		return nil, err
	}
	if len(asgs) == 0 {
		return nil, ErrNoAssignments
	}
	return asgs, nil
}
