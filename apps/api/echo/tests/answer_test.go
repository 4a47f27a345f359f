package tests

import (
	"net/http"
	"testing"

	. "github.com/onesim/simcase/apps/api/echo"
	"github.com/onesim/simcase/core/answer"
)

func Test_answerAPI_submit(t *testing.T) {
	app := newTestApp(t)

	tests := []httpTest{
		{
			name: "empty payload", method: http.MethodPost, path: "/api/submit-answers", body: []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, invalidPayload(map[string]string{
				"studentName": requiredText,
				"caseId":      requiredText,
				"answers":     requiredText,
			})),
		},
		{
			name: "no answers", method: http.MethodPost, path: "/api/submit-answers",
			body:     marchallObj(t, answer.Submission{StudentName: "jane", CaseID: "trauma-01", Answers: map[string]string{}}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, invalidPayload(map[string]string{"answers": "at least one entry is required"})),
		},
		{
			name: "ok", method: http.MethodPost, path: "/api/submit-answers",
			body: marchallObj(t, answer.Submission{
				StudentName: "  jane ",
				CaseID:      "trauma-01",
				Answers:     map[string]string{"q2": "intubate", "q1": "check airway"},
			}),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, SuccessResponse{Message: "Answers submitted successfully!"}),
		},
	}
	for _, tt := range tests {
		tt.run(t, app)
	}

	saved := app.db.Answers()
	if len(saved) != 2 {
		t.Fatalf("saved answers = %d; want 2", len(saved))
	}
	// one batch: deterministic question order, one shared timestamp
	if saved[0].QuestionID != "q1" || saved[1].QuestionID != "q2" {
		t.Errorf("question order = %q, %q", saved[0].QuestionID, saved[1].QuestionID)
	}
	if !saved[0].SubmittedAt.Equal(saved[1].SubmittedAt) {
		t.Errorf("timestamps differ: %v vs %v", saved[0].SubmittedAt, saved[1].SubmittedAt)
	}
	for _, a := range saved {
		if a.StudentName != "jane" || a.CaseID != "trauma-01" {
			t.Errorf("answer = %+v", a)
		}
		if a.ID == 0 {
			t.Errorf("missing ID: %+v", a)
		}
	}
}
