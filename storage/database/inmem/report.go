package inmemdb

import (
	"context"
	"strings"

	"github.com/onesim/simcase/core/report"
	"github.com/onesim/simcase/core/user"
)

type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *DB) report.Repository {
	return &reportRepository{db: db}
}

// FilterRecords mirrors the SQL join: users to case_assignments on the
// student name, then to patients on the assigned case.
func (repo *reportRepository) FilterRecords(_ context.Context, filter report.QueryFilter) ([]report.Record, error) {
	repo.db.user.RLock()
	repo.db.assignments.RLock()
	repo.db.patients.RLock()
	defer repo.db.user.RUnlock()
	defer repo.db.assignments.RUnlock()
	defer repo.db.patients.RUnlock()

	var records []report.Record
	for _, usr := range repo.db.user.table {
		if usr.Role != user.RoleStudent {
			continue
		}
		if filter.StudentName != "" && !strings.Contains(usr.Name, filter.StudentName) {
			continue
		}
		for _, asg := range repo.db.assignments.table {
			if asg.StudentName != usr.Name {
				continue
			}
			if filter.CaseID != "" && asg.CaseID != filter.CaseID {
				continue
			}
			for _, p := range repo.db.patients.table {
				if p.CaseID != asg.CaseID {
					continue
				}
				scenarios, _ := asg.Scenarios.Value()
				questions, _ := asg.Questions.Value()
				records = append(records, report.Record{
					StudentName:           usr.Name,
					StudentEmail:          usr.Email,
					CaseTitle:             asg.Title,
					CaseScenarios:         scenarios.(string),
					CaseQuestions:         questions.(string),
					PatientName:           p.Name,
					PatientAge:            p.Age,
					PatientGender:         p.Gender,
					PatientContact:        p.Contact,
					PatientMedicalHistory: p.MedicalHistory,
					PatientAllergies:      p.Allergies,
					PatientBloodGroup:     p.BloodGroup,
				})
			}
		}
	}
	return records, nil
}
