package inmemdb

import (
	"sync"

	"github.com/onesim/simcase/core/answer"
	"github.com/onesim/simcase/core/patient"
	"github.com/onesim/simcase/core/simcase"
	"github.com/onesim/simcase/core/user"
)

// DB is an in-memory stand-in for the MySQL store, used in tests.
type (
	DB struct {
		user        *userTable
		cases       *caseTable
		assignments *assignmentTable
		patients    *patientTable
		answers     *answerTable
	}

	userTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*user.User
	}

	caseTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*simcase.Case
	}

	assignmentTable struct {
		sync.RWMutex
		table []simcase.Assignment
	}

	patientTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*patient.Patient
	}

	answerTable struct {
		sync.RWMutex
		pkCount int
		table   []answer.Answer
	}
)

// SeedCase inserts a case directly; the creation path is out of scope,
// so tests seed through here.
func (db *DB) SeedCase(cs simcase.Case) simcase.Case {
	db.cases.Lock()
	defer db.cases.Unlock()

	db.cases.pkCount++
	cs.ID = db.cases.pkCount
	db.cases.table[cs.ID] = &cs
	return cs
}

// Answers returns a snapshot of everything submitted so far.
func (db *DB) Answers() []answer.Answer {
	db.answers.RLock()
	defer db.answers.RUnlock()

	out := make([]answer.Answer, len(db.answers.table))
	copy(out, db.answers.table)
	return out
}

func Open() (*DB, error) {
	db := &DB{
		user:        &userTable{table: make(map[int]*user.User)},
		cases:       &caseTable{table: make(map[int]*simcase.Case)},
		assignments: &assignmentTable{},
		patients:    &patientTable{table: make(map[int]*patient.Patient)},
		answers:     &answerTable{},
	}
	return db, nil
}
