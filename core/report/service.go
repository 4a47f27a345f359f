package report

import "context"

type (
	Repository interface {
		// FilterRecords matches QueryFilter.StudentName against the student
		// name (substring) and QueryFilter.CaseID against the assigned case.
		FilterRecords(ctx context.Context, filter QueryFilter) ([]Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Record, error) {
	return svc.repo.FilterRecords(ctx, filter)
}
