package patient

import "context"

type (
	Repository interface {
		CreatePatient(ctx context.Context, p Patient) (Patient, error)
		// FilterPatients matches QueryFilter.StudentName against the patient
		// name (substring) and QueryFilter.CaseID exactly.
		FilterPatients(ctx context.Context, filter QueryFilter) ([]Patient, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Register(ctx context.Context, np NewPatient) (Patient, error) {
	return svc.repo.CreatePatient(ctx, np.Patient())
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Patient, error) {
	return svc.repo.FilterPatients(ctx, filter)
}
