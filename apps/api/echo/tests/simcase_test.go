package tests

import (
	"net/http"
	"testing"
	"time"

	. "github.com/onesim/simcase/apps/api/echo"
	"github.com/onesim/simcase/core/simcase"
)

func Test_caseAPI_query(t *testing.T) {
	app := newTestApp(t)

	tests := []httpTest{
		{name: "empty", method: http.MethodGet, path: "/api/cases", wantCode: http.StatusOK, wantData: []byte(`[]`)},
	}
	for _, tt := range tests {
		tt.run(t, app)
	}

	cs1 := app.db.SeedCase(simcase.Case{
		Key:       "trauma-01",
		Title:     "Blunt Trauma",
		Scenarios: simcase.JSONList{"Patient arrives unresponsive"},
		Questions: simcase.JSONList{map[string]interface{}{"id": "q1", "text": "First assessment?"}},
	})
	cs2 := app.db.SeedCase(simcase.Case{
		Key:       "cardio-02",
		Title:     "Chest Pain",
		Scenarios: simcase.JSONList{"Sudden onset chest pain"},
		Questions: simcase.JSONList{"Differential diagnosis?"},
	})

	tests = []httpTest{
		{name: "all", method: http.MethodGet, path: "/api/cases", wantCode: http.StatusOK, wantData: marchallList(t, cs1, cs2)},
	}
	for _, tt := range tests {
		tt.run(t, app)
	}
}

func Test_caseAPI_assign(t *testing.T) {
	app := newTestApp(t)

	tests := []httpTest{
		{
			name: "empty payload", method: http.MethodPost, path: "/api/assign-case", body: []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, invalidPayload(map[string]string{
				"caseKey":          requiredText,
				"title":            requiredText,
				"scenarios":        requiredText,
				"questions":        requiredText,
				"assignedStudents": requiredText,
			})),
		},
		{
			name:   "no students", method: http.MethodPost, path: "/api/assign-case",
			body: marchallObj(t, simcase.NewAssignment{
				CaseKey:          "trauma-01",
				Title:            "Blunt Trauma",
				Scenarios:        simcase.JSONList{"s1"},
				Questions:        simcase.JSONList{"q1"},
				AssignedStudents: []string{},
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, invalidPayload(map[string]string{"assignedStudents": "at least one entry is required"})),
		},
		{
			name: "nothing persisted after rejection", method: http.MethodGet, path: "/api/student-assignments/jane",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "No assignments found for this student."}),
		},
	}
	for _, tt := range tests {
		tt.run(t, app)
	}

	// happy path; the event timestamp is dynamic so the body is decoded
	na := simcase.NewAssignment{
		CaseKey:          "trauma-01",
		Title:            "Blunt Trauma",
		Scenarios:        simcase.JSONList{"Patient arrives unresponsive"},
		Questions:        simcase.JSONList{"First assessment?"},
		AssignedStudents: []string{"jane", "john"},
	}
	req, rec := newRequest(http.MethodPost, "/api/assign-case", marchallObj(t, na))
	app.app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("assign failed! code = %v; body = %s", rec.Code, rec.Body.String())
	}
	var resp AssignCaseResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "Case assigned successfully!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.NewActivity.Type != "assignment" {
		t.Errorf("activity type = %q; want %q", resp.NewActivity.Type, "assignment")
	}
	if resp.NewActivity.CaseKey != na.CaseKey || resp.NewActivity.Title != na.Title {
		t.Errorf("activity = %+v", resp.NewActivity)
	}
	if len(resp.NewActivity.AssignedStudents) != 2 {
		t.Errorf("assignedStudents = %v", resp.NewActivity.AssignedStudents)
	}
	if time.Since(resp.NewActivity.Timestamp) > time.Minute {
		t.Errorf("stale timestamp = %v", resp.NewActivity.Timestamp)
	}

	// every named student got their own copy
	for _, student := range na.AssignedStudents {
		req, rec = newRequest(http.MethodGet, "/api/student-assignments/"+student)
		app.app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("student-assignments(%s) failed! code = %v; body = %s", student, rec.Code, rec.Body.String())
		}
		var asgs []simcase.Assignment
		decodeBody(t, rec, &asgs)
		if len(asgs) != 1 {
			t.Fatalf("assignments(%s) = %d; want 1", student, len(asgs))
		}
		if asgs[0].CaseID != na.CaseKey || asgs[0].Title != na.Title {
			t.Errorf("assignment(%s) = %+v", student, asgs[0])
		}
	}
}

func Test_caseAPI_studentAssignments(t *testing.T) {
	app := newTestApp(t)

	tests := []httpTest{
		{
			name: "none found", method: http.MethodGet, path: "/api/student-assignments/ghost",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "No assignments found for this student."}),
		},
	}
	for _, tt := range tests {
		tt.run(t, app)
	}
}
