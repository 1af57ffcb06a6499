package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
)

const maxStateBytes = 1 << 20

// Server hosts the sync API: one JSON state document per user, plus a
// websocket feed that pushes each accepted document to subscribers.
type Server struct {
	db       *sql.DB
	router   *mux.Router
	hub      *Hub
	upgrader websocket.Upgrader
}

func New(db *sql.DB) (*Server, error) {
	if err := migrate(context.Background(), db); err != nil {
		return nil, err
	}

	s := &Server{
		db:     db,
		router: mux.NewRouter(),
		hub:    NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	s.setupRoutes()
	go s.hub.Run()

	return s, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			user TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate documents: %w", err)
	}
	return nil
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state/{user}", s.handleGetState).Methods("GET")
	api.HandleFunc("/state/{user}", s.handlePutState).Methods("PUT")

	s.router.HandleFunc("/ws/{user}", s.handleWebSocket)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]

	var body string
	err := s.db.QueryRowContext(r.Context(),
		`SELECT body FROM documents WHERE user = ?`, user).Scan(&body)
	if err == sql.ErrNoRows {
		http.Error(w, "no state for user", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("state read: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]

	body, err := io.ReadAll(io.LimitReader(r.Body, maxStateBytes))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	var g engine.GameState
	if err := json.Unmarshal(body, &g); err != nil {
		http.Error(w, "invalid state document", http.StatusBadRequest)
		return
	}
	g.Normalize()
	stored, err := json.Marshal(&g)
	if err != nil {
		log.Printf("state marshal: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	_, err = s.db.ExecContext(r.Context(), `
		INSERT INTO documents (user, body, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(user) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, user, string(stored))
	if err != nil {
		log.Printf("state write: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.hub.Broadcast(user, stored)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		user: user,
		send: make(chan []byte, 256),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// ListenAndServe blocks serving the sync API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("sync server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
