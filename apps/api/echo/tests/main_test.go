package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/onesim/simcase/apps/api/echo"
	"github.com/onesim/simcase/core"
	"github.com/onesim/simcase/core/answer"
	"github.com/onesim/simcase/core/patient"
	"github.com/onesim/simcase/core/report"
	"github.com/onesim/simcase/core/simcase"
	"github.com/onesim/simcase/core/user"
	emailsvc "github.com/onesim/simcase/services/email"
	"github.com/onesim/simcase/services/realtime"
	relaysvc "github.com/onesim/simcase/services/relay"
	inmemdb "github.com/onesim/simcase/storage/database/inmem"
)

// testApp is a fully wired server on in-memory storage. Each test gets
// its own so state never leaks between tests.
type testApp struct {
	conf *core.Config
	db   *inmemdb.DB
	hub  *realtime.Hub
	app  Server
}

func newTestApp(t *testing.T, opts ...func(*core.Config)) *testApp {
	t.Helper()

	conf := newTestConfig(t)
	for _, opt := range opts {
		opt(conf)
	}

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}

	logger := testLogger{t}
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	hub := realtime.NewHub(logger)
	relay := relaysvc.NewService(conf, logger)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	app := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
		UserSvc:    user.NewService(inmemdb.NewUserRepository(db), mailSvc, logger),
		CaseSvc:    simcase.NewService(inmemdb.NewCaseRepository(db), hub),
		PatientSvc: patient.NewService(inmemdb.NewPatientRepository(db)),
		AnswerSvc:  answer.NewService(inmemdb.NewAnswerRepository(db)),
		ReportSvc:  report.NewService(inmemdb.NewReportRepository(db)),
		Hub:        hub,
		RelaySvc:   relay,
	})

	return &testApp{conf: conf, db: db, hub: hub, app: app}
}

func newTestConfig(t *testing.T) *core.Config {
	t.Helper()

	conf := &core.Config{
		Debug:    true,
		TestMode: true,
		Env:      "TEST",
		AppName:  "OneSimulation",
		Build:    "test",
	}
	conf.Server.Port = 0
	conf.Server.ShutdownTimeout = time.Second
	conf.Server.AllowedOrigins = []string{"http://localhost:3000"}
	conf.Compare.URL = "http://localhost:8000/compare"
	conf.Compare.Timeout = 2 * time.Second
	conf.UploadDir = t.TempDir()
	conf.FromEmail = "noreply@localhost"
	return conf
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type testLogger struct {
	t *testing.T
}

var _ core.Logger = (testLogger{})

func (l testLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }

func (l testLogger) log(lvl, msg string, args []interface{}) {
	l.t.Helper()
	l.t.Logf("%s: %s %v", lvl, msg, args)
}

type httpErr struct {
	Error string `json:"error"`
}

type fieldsErr struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func invalidPayload(flds map[string]string) fieldsErr {
	return fieldsErr{Error: "Invalid payload.", Fields: flds}
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func (tt httpTest) run(t *testing.T, app *testApp) {
	t.Run(tt.name, func(t *testing.T) {
		req, rec := newRequest(tt.method, tt.path, tt.body)
		app.app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func createUser(t *testing.T, app *testApp, name, email, pwd, role string) user.User {
	t.Helper()

	usr := user.User{Name: name, Email: email, Role: role}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser(): %v", err)
		}
	}
	usr, err := inmemdb.NewUserRepository(app.db).CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	return usr
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodeBody(): %v; body = %s", err, rec.Body.String())
	}
}

var requiredText = "this field is required"
