package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	gosync "sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
)

// Client talks to a sync server's per-user state document API.
type Client struct {
	baseURL string
	user    string
	http    *http.Client
}

func NewClient(baseURL, user string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		user:    user,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) stateURL() string {
	return c.baseURL + "/api/state/" + c.user
}

// Fetch downloads the remote state document. Returns (nil, nil) when
// the server has no document for this user yet.
func (c *Client) Fetch(ctx context.Context) (*engine.GameState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.stateURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch state: unexpected status %d", resp.StatusCode)
	}

	var g engine.GameState
	if err := json.NewDecoder(resp.Body).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	g.Normalize()
	return &g, nil
}

// Push uploads g as the user's state document.
func (c *Client) Push(ctx context.Context, g *engine.GameState) error {
	body, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.stateURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("push state: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push state: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Subscription is a live websocket feed of the user's state document.
type Subscription struct {
	conn      *websocket.Conn
	closeOnce gosync.Once
}

// Subscribe opens a websocket to the server and invokes fn with each
// state snapshot pushed for this user. Malformed snapshots are logged
// and skipped. The feed ends when the connection drops or Close is
// called.
func (c *Client) Subscribe(ctx context.Context, fn func(*engine.GameState)) (*Subscription, error) {
	wsURL := c.baseURL + "/ws/" + c.user
	if strings.HasPrefix(wsURL, "https") {
		wsURL = "wss" + strings.TrimPrefix(wsURL, "https")
	} else {
		wsURL = "ws" + strings.TrimPrefix(wsURL, "http")
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial sync feed: %w", err)
	}

	sub := &Subscription{conn: conn}
	go func() {
		defer sub.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("sync feed read: %v", err)
				}
				return
			}

			var g engine.GameState
			if err := json.Unmarshal(data, &g); err != nil {
				log.Printf("sync feed decode: %v", err)
				continue
			}
			g.Normalize()
			fn(&g)
		}
	}()

	return sub, nil
}

// Close terminates the feed. Safe to call more than once.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
	return nil
}
