package inmemdb

import (
	"context"
	"sort"

	"github.com/onesim/simcase/core/simcase"
)

type caseRepository struct {
	cases       *caseTable
	assignments *assignmentTable
}

var _ simcase.Repository = (*caseRepository)(nil)

func NewCaseRepository(db *DB) simcase.Repository {
	return &caseRepository{cases: db.cases, assignments: db.assignments}
}

func (repo *caseRepository) QueryAllCases(_ context.Context) ([]simcase.Case, error) {
	repo.cases.RLock()
	defer repo.cases.RUnlock()

	cases := make([]simcase.Case, 0, len(repo.cases.table))
	for _, cs := range repo.cases.table {
		cases = append(cases, *cs)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].ID < cases[j].ID })
	return cases, nil
}

func (repo *caseRepository) CreateAssignments(_ context.Context, asgs []simcase.Assignment) error {
	repo.assignments.Lock()
	defer repo.assignments.Unlock()

	repo.assignments.table = append(repo.assignments.table, asgs...)
	return nil
}

func (repo *caseRepository) GetAssignmentsByStudent(_ context.Context, studentName string) ([]simcase.Assignment, error) {
	repo.assignments.RLock()
	defer repo.assignments.RUnlock()

	var asgs []simcase.Assignment
	for _, asg := range repo.assignments.table {
		if asg.StudentName == studentName {
			asgs = append(asgs, asg)
		}
	}
	return asgs, nil
}
