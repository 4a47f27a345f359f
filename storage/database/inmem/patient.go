package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/onesim/simcase/core/patient"
)

type patientRepository struct {
	db *patientTable
}

var _ patient.Repository = (*patientRepository)(nil)

func NewPatientRepository(db *DB) patient.Repository {
	return &patientRepository{db: db.patients}
}

func (repo *patientRepository) CreatePatient(_ context.Context, p patient.Patient) (patient.Patient, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	p.ID = repo.db.pkCount
	repo.db.table[p.ID] = &p
	return p, nil
}

func (repo *patientRepository) FilterPatients(_ context.Context, filter patient.QueryFilter) ([]patient.Patient, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var patients []patient.Patient
	for _, p := range repo.db.table {
		if filter.StudentName != "" && !strings.Contains(p.Name, filter.StudentName) {
			continue
		}
		if filter.CaseID != "" && p.CaseID != filter.CaseID {
			continue
		}
		patients = append(patients, *p)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}
