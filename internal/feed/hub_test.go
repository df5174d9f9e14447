package feed

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-lone-tower/internal/event"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	h := NewHub("run-1")
	conn := dial(t, h)

	d := event.NewDispatcher()
	d.Subscribe(event.Any, h)
	d.Emit(event.WaveStarted, event.WaveData{Index: 2, Total: 5})
	d.Emit(event.EnemyKilled, event.EnemyData{DefID: "E_RUNNER", Reward: 4})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got []Message
	for len(got) < 2 {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var m Message
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, m)
	}
	if got[0].Type != event.WaveStarted || got[1].Type != event.EnemyKilled {
		t.Errorf("types = %s, %s", got[0].Type, got[1].Type)
	}
	if got[0].Run != "run-1" || got[0].Seq != 1 || got[1].Seq != 2 {
		t.Errorf("envelope = %+v / %+v", got[0], got[1])
	}
}

func TestHubWithoutClientsIsNoop(t *testing.T) {
	h := NewHub("idle")
	h.OnEvent(event.Event{Type: event.WaveStarted})
	if h.Dropped() != 0 {
		t.Error("nothing should be dropped without clients")
	}
}

func TestHubCloseDisconnects(t *testing.T) {
	h := NewHub("run-2")
	conn := dial(t, h)
	h.Close()
	if h.Clients() != 0 {
		t.Fatal("clients remain after Close")
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to close")
	}
	h.OnEvent(event.Event{Type: event.WaveStarted})
}
