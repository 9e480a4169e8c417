package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func (h *Hub) clientCount(merchantID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[merchantID])
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestPushNavigationReachesEveryTab(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	merchantID := uuid.New()
	tabs := []*Client{
		{Hub: h, MerchantID: merchantID, Send: make(chan []byte, 4)},
		{Hub: h, MerchantID: merchantID, Send: make(chan []byte, 4)},
	}
	for _, tab := range tabs {
		h.register <- tab
	}
	waitFor(t, func() bool { return h.clientCount(merchantID) == 2 })

	h.PushNavigation(merchantID, "business-info", "ready for review")

	for _, tab := range tabs {
		select {
		case raw := <-tab.Send:
			var envelope struct {
				Type string          `json:"type"`
				Data NavigationEvent `json:"data"`
			}
			if err := json.Unmarshal(raw, &envelope); err != nil {
				t.Fatalf("payload did not parse: %v", err)
			}
			if envelope.Type != "navigation" || envelope.Data.TargetPage != "business-info" {
				t.Errorf("payload = %+v", envelope)
			}
		case <-time.After(time.Second):
			t.Fatal("tab never received the event")
		}
	}
}

func TestSlowShellIsDroppedWithoutClosingTwice(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	merchantID := uuid.New()
	client := &Client{Hub: h, MerchantID: merchantID, Send: make(chan []byte, 1)}
	h.register <- client
	waitFor(t, func() bool { return h.clientCount(merchantID) == 1 })

	// Fill the buffer; nothing drains it, so the next push overflows.
	client.Send <- []byte("stale")
	h.PushNavigation(merchantID, "business-info", "dropped")

	waitFor(t, func() bool { return h.clientCount(merchantID) == 0 })

	// The unregister branch owns the close. Draining the buffer must end
	// at a cleanly closed channel.
	<-client.Send
	select {
	case _, ok := <-client.Send:
		if ok {
			t.Error("send channel should be closed after the drop")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}

func TestClusterEventSkipsOwnPublishes(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	merchantID := uuid.New()
	client := &Client{Hub: h, MerchantID: merchantID, Send: make(chan []byte, 4)}
	h.register <- client
	waitFor(t, func() bool { return h.clientCount(merchantID) == 1 })

	message, _ := json.Marshal(map[string]interface{}{
		"type": "navigation",
		"data": NavigationEvent{TargetPage: "business-info", Message: "hi"},
	})
	event := func(origin string) []byte {
		raw, _ := json.Marshal(map[string]interface{}{
			"origin":             origin,
			"target_merchant_id": merchantID.String(),
			"message":            json.RawMessage(message),
		})
		return raw
	}

	// Self-originated events were already delivered locally by
	// PushNavigation and must not arrive a second time.
	h.handleClusterEvent(event(h.instanceID))
	select {
	case <-client.Send:
		t.Fatal("self-originated event must be skipped")
	case <-time.After(50 * time.Millisecond):
	}

	h.handleClusterEvent(event("another-instance"))
	select {
	case raw := <-client.Send:
		if string(raw) != string(message) {
			t.Errorf("delivered = %s", raw)
		}
	case <-time.After(time.Second):
		t.Fatal("foreign event never delivered")
	}
}
