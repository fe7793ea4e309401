package main

import (
	"errors"
	"math"
	"net"
	"strconv"

	"github.com/google/uuid"
)

// Gateway owns the lifecycle of one websocket session: it issues the
// connection id, pumps broadcasts out, dispatches client events into the
// lobby state, and cleans up membership when the transport drops.
type Gateway struct {
	registry *Registry
	store    *SubmissionStore
	timers   *TurnTimerService
	hub      *Hub
}

func NewGateway(registry *Registry, store *SubmissionStore, timers *TurnTimerService, hub *Hub) *Gateway {
	return &Gateway{registry: registry, store: store, timers: timers, hub: hub}
}

func (g *Gateway) HandleConnection(conn net.Conn, remoteAddr string) {
	defer conn.Close()
	connectionID := uuid.NewString()
	logger := GetConnectionLogger(remoteAddr, connectionID)
	playerWs := NewPlayerWebsocket(conn)

	sendChannel := g.hub.Register(connectionID)
	go func() {
		for msg := range sendChannel {
			if err := playerWs.WriteRaw(msg); err != nil {
				return
			}
		}
	}()
	defer func() {
		g.registry.RemoveByConnection(connectionID)
		g.hub.Unregister(connectionID)
	}()

	// The client needs its id to echo in submitNumber.
	g.hub.SendTo(connectionID, ConnectedMessage{Type: "connected", ConnectionID: connectionID})

	for {
		msg, err := playerWs.ReadMessage()
		if err != nil {
			if errors.Is(err, ErrUndefinedType) {
				continue
			}
			logger.Disconnected()
			return
		}
		switch m := msg.(type) {
		case CreateRoomMessage:
			roomID := g.registry.CreateRoom(connectionID, m.PlayerName)
			g.hub.Subscribe(roomID, connectionID)
			g.hub.SendTo(connectionID, RoomCreatedMessage{Type: "roomCreated", RoomID: roomID})
			logger.CreatedRoom(roomID)
		case JoinRoomMessage:
			// Subscribe first so the joiner sees its own roster broadcast.
			g.hub.Subscribe(m.RoomID, connectionID)
			success := g.registry.JoinRoom(m.RoomID, connectionID, m.PlayerName)
			if success {
				logger.JoinedRoom(m.RoomID)
			} else {
				// A duplicate join must not tear down the member's
				// existing subscription.
				if _, isMember := g.registry.GetMember(m.RoomID, connectionID); !isMember {
					g.hub.Unsubscribe(m.RoomID, connectionID)
				}
				logger.JoinRejected(m.RoomID)
			}
			g.hub.SendTo(connectionID, JoinResultMessage{Type: "joinResult", Success: success})
		case StartGameMessage:
			roomID, inRoom := g.registry.RoomOf(connectionID)
			if !inRoom {
				logger.StartGameWithoutRoom()
				continue
			}
			g.timers.StartRound(roomID)
		case SubmitNumberMessage:
			value, err := strconv.ParseFloat(m.NumberInput, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				logger.InvalidNumber(m.RoomID, m.NumberInput)
				continue
			}
			g.store.Submit(m.RoomID, m.ConnectionID, value)
			logger.SubmittedNumber(m.RoomID, value, g.store.Average(m.RoomID))
		}
	}
}
