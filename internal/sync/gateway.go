package sync

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/storage"
)

// Gateway is the persistence hook wired into the engine: every mutation
// is written through to local storage immediately, while remote pushes
// are debounced so a burst of toggles produces one upload. Remote
// failures are logged and never block the local write.
type Gateway struct {
	repo     *storage.StateRepo
	client   *Client
	debounce *Debouncer
}

// NewGateway builds a gateway over repo. client may be nil, in which
// case only local persistence happens.
func NewGateway(repo *storage.StateRepo, client *Client, debounce time.Duration) *Gateway {
	if debounce <= 0 {
		debounce = time.Second
	}
	return &Gateway{
		repo:     repo,
		client:   client,
		debounce: NewDebouncer(debounce),
	}
}

// Save persists g. Shaped to plug straight into engine.NewService.
func (gw *Gateway) Save(g *engine.GameState) {
	if err := gw.repo.Save(context.Background(), g); err != nil {
		log.Printf("local save: %v", err)
	}

	if gw.client == nil {
		return
	}
	snapshot := cloneState(g)
	if snapshot == nil {
		return
	}
	gw.debounce.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := gw.client.Push(ctx, snapshot); err != nil {
			log.Printf("remote sync: %v", err)
		}
	})
}

// Flush pushes any pending remote upload before shutdown.
func (gw *Gateway) Flush() {
	gw.debounce.Flush()
}

// Close flushes pending work and stops the gateway.
func (gw *Gateway) Close() {
	gw.Flush()
	gw.debounce.Stop()
}

// cloneState deep-copies g so the debounced upload is immune to later
// mutations of the live state.
func cloneState(g *engine.GameState) *engine.GameState {
	data, err := json.Marshal(g)
	if err != nil {
		log.Printf("state clone: %v", err)
		return nil
	}
	var out engine.GameState
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("state clone: %v", err)
		return nil
	}
	return &out
}
