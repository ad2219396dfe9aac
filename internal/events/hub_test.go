package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHubCoalescesBurstIntoOneRefresh(t *testing.T) {
	hub := newHub(zap.NewNop(), 30*time.Millisecond)
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Notify("categories")
	hub.Notify("products")
	hub.Notify("categories")

	select {
	case batch := <-ch:
		assert.Equal(t, []string{"categories", "products"}, batch.Tables)
	case <-time.After(time.Second):
		t.Fatal("no refresh delivered")
	}

	select {
	case extra := <-ch:
		t.Fatalf("unexpected second refresh: %v", extra.Tables)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubSeparateWindowsDeliverSeparately(t *testing.T) {
	hub := newHub(zap.NewNop(), 20*time.Millisecond)
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Notify("site_settings")

	var first Refresh
	select {
	case first = <-ch:
	case <-time.After(time.Second):
		t.Fatal("first refresh not delivered")
	}
	require.Equal(t, []string{"site_settings"}, first.Tables)

	hub.Notify("products")
	select {
	case second := <-ch:
		assert.Equal(t, []string{"products"}, second.Tables)
	case <-time.After(time.Second):
		t.Fatal("second refresh not delivered")
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	hub := newHub(zap.NewNop(), 10*time.Millisecond)
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Must not panic on a closed subscription set.
	hub.Notify("categories")
	time.Sleep(30 * time.Millisecond)
}
