package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func seeded() *Series {
	s := NewSeries()
	_ = s.Record(Point{At: 0, Value: 3})
	_ = s.Record(Point{At: ms(150), Value: 7})
	return s
}

func TestServeSnapshot(t *testing.T) {
	srv := httptest.NewServer(NewServer("", seeded(), 0).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/series")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Averages) != 2 || snap.Max != 7 || snap.Latest != 7 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestSnapshotRejectsPost(t *testing.T) {
	srv := httptest.NewServer(NewServer("", seeded(), 0).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/series", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestWebsocketStreamsSnapshots(t *testing.T) {
	srv := httptest.NewServer(NewServer("", seeded(), 10*time.Millisecond).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var snap Snapshot
	if err := ws.ReadJSON(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Max != 7 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}
