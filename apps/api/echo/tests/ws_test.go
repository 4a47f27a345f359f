package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/onesim/simcase/core/simcase"
)

func dialWS(t *testing.T, srv *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	return websocket.DefaultDialer.Dial(wsURL, header)
}

func readEvent(t *testing.T, conn *websocket.Conn) simcase.ActivityEvent {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event simcase.ActivityEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("reading event: %v", err)
	}
	return event
}

func Test_realtimeAPI_broadcastOnAssign(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.app)
	defer srv.Close()

	conn1, _, err := dialWS(t, srv, nil)
	if err != nil {
		t.Fatalf("dial conn1: %v", err)
	}
	defer func() { _ = conn1.Close() }()

	conn2, _, err := dialWS(t, srv, nil)
	if err != nil {
		t.Fatalf("dial conn2: %v", err)
	}
	defer func() { _ = conn2.Close() }()

	if n := app.hub.Len(); n != 2 {
		t.Fatalf("connected clients = %d; want 2", n)
	}

	na := simcase.NewAssignment{
		CaseKey:          "trauma-01",
		Title:            "Blunt Trauma",
		Scenarios:        simcase.JSONList{"s1"},
		Questions:        simcase.JSONList{"q1"},
		AssignedStudents: []string{"jane"},
	}
	resp, err := http.Post(srv.URL+"/api/assign-case", "application/json", bytes.NewReader(marchallObj(t, na)))
	if err != nil {
		t.Fatalf("assign-case: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assign-case code = %v", resp.StatusCode)
	}

	// every client connected at assign time gets exactly one event
	for i, conn := range []*websocket.Conn{conn1, conn2} {
		event := readEvent(t, conn)
		if event.Type != "assignment" || event.CaseKey != na.CaseKey {
			t.Errorf("conn%d event = %+v", i+1, event)
		}
		if len(event.AssignedStudents) != 1 || event.AssignedStudents[0] != "jane" {
			t.Errorf("conn%d assignedStudents = %v", i+1, event.AssignedStudents)
		}
	}

	// a late joiner gets nothing
	late, _, err := dialWS(t, srv, nil)
	if err != nil {
		t.Fatalf("dial late: %v", err)
	}
	defer func() { _ = late.Close() }()

	_ = late.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err = late.ReadMessage(); err == nil {
		t.Error("late joiner received an event")
	}
}

func Test_realtimeAPI_originCheck(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.app)
	defer srv.Close()

	t.Run("allowed origin", func(t *testing.T) {
		header := http.Header{"Origin": []string{"http://localhost:3000"}}
		conn, _, err := dialWS(t, srv, header)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		_ = conn.Close()
	})

	t.Run("forbidden origin", func(t *testing.T) {
		header := http.Header{"Origin": []string{"http://evil.test"}}
		conn, resp, err := dialWS(t, srv, header)
		if err == nil {
			_ = conn.Close()
			t.Fatal("handshake succeeded for forbidden origin")
		}
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Errorf("resp = %+v", resp)
		}
	})
}

func Test_realtimeAPI_disconnectedClientDropped(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.app)
	defer srv.Close()

	conn, _, err := dialWS(t, srv, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if n := app.hub.Len(); n != 1 {
		t.Fatalf("connected clients = %d; want 1", n)
	}

	_ = conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for app.hub.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never dropped; connected = %d", app.hub.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
