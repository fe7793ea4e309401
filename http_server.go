package main

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/google/uuid"
)

type HTTPHandler struct {
	registry *Registry
	store    *SubmissionStore
	gateway  *Gateway
}

func NewHTTPServer(registry *Registry, store *SubmissionStore, gateway *Gateway) http.Handler {
	httpHandler := HTTPHandler{registry, store, gateway}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(60, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/"))

	r.Get("/ws", httpHandler.websocket())
	r.Get("/rooms/{roomId}/names", httpHandler.getRoomNames())
	r.Get("/rooms/{roomId}/numbers", httpHandler.getRoomNumbers())
	r.Get("/rooms/{roomId}/player/{playerId}", httpHandler.getRoomPlayer())
	r.Post("/rooms/create", httpHandler.createRoom())
	r.Post("/rooms/join", httpHandler.joinRoom())
	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(MarshalJSON(body))
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		go h.gateway.HandleConnection(conn, r.RemoteAddr)
	}
}

func (h HTTPHandler) getRoomNames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := chi.URLParam(r, "roomId")
		names, exists := h.registry.GetNames(roomID)
		if !exists {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room not found"})
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func (h HTTPHandler) getRoomNumbers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := chi.URLParam(r, "roomId")
		numbers, exists := h.store.GetAll(roomID)
		if !exists {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room numbers not found"})
			return
		}
		writeJSON(w, http.StatusOK, numbers)
	}
}

func (h HTTPHandler) getRoomPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := chi.URLParam(r, "roomId")
		playerID := chi.URLParam(r, "playerId")
		if _, exists := h.registry.GetNames(roomID); !exists {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room not found"})
			return
		}
		member, exists := h.registry.GetMember(roomID, playerID)
		if !exists {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"playerName": member.Name})
	}
}

func (h HTTPHandler) createRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		request := UnmarshalJSON[struct {
			PlayerName string `json:"playerName"`
		}](body)
		// REST clients have no websocket session, so mint an id for them.
		roomID := h.registry.CreateRoom(uuid.NewString(), request.PlayerName)
		writeJSON(w, http.StatusOK, map[string]string{"roomId": roomID})
	}
}

func (h HTTPHandler) joinRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		request := UnmarshalJSON[struct {
			RoomID     string `json:"roomId"`
			PlayerName string `json:"playerName"`
		}](body)
		if !h.registry.JoinRoom(request.RoomID, uuid.NewString(), request.PlayerName) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to join the room"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "playerName": request.PlayerName})
	}
}
