package main

import (
	"errors"
	"net"

	"github.com/gobwas/ws/wsutil"
)

// Client -> server events.

type CreateRoomMessage struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomMessage struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type StartGameMessage struct{}

type SubmitNumberMessage struct {
	RoomID       string `json:"roomId"`
	ConnectionID string `json:"connectionId"`
	NumberInput  string `json:"numberInput"`
}

// Server -> client events. The Type field doubles as the event name.

type ConnectedMessage struct {
	Type         string `json:"type"`
	ConnectionID string `json:"connectionId"`
}

type RoomCreatedMessage struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

type JoinResultMessage struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
}

type PlayerJoinedMessage struct {
	Type    string   `json:"type"`
	Players []string `json:"players"`
}

type NavigateToGameplayMessage struct {
	Type string `json:"type"`
}

type TurnTimerMessage struct {
	Type     string `json:"type"`
	TurnTime int    `json:"turnTime"`
}

var ErrUndefinedType = errors.New("incorrect type")

type PlayerWebsocket struct {
	conn net.Conn
}

func NewPlayerWebsocket(conn net.Conn) *PlayerWebsocket {
	return &PlayerWebsocket{conn}
}

func (p PlayerWebsocket) WriteRaw(msg []byte) error {
	return wsutil.WriteServerText(p.conn, msg)
}

// Returns one of the client event structs above.
func (p PlayerWebsocket) ReadMessage() (any, error) {
	msg, err := wsutil.ReadClientText(p.conn)
	if err != nil {
		return nil, err
	}
	message := UnmarshalJSON[struct {
		Type string `json:"type"`
	}](msg)
	var parsedMessage any
	switch message.Type {
	case "createRoom":
		parsedMessage = UnmarshalJSON[CreateRoomMessage](msg)
	case "joinRoom":
		parsedMessage = UnmarshalJSON[JoinRoomMessage](msg)
	case "startGame":
		parsedMessage = StartGameMessage{}
	case "submitNumber":
		parsedMessage = UnmarshalJSON[SubmitNumberMessage](msg)
	default:
		return nil, ErrUndefinedType
	}
	return parsedMessage, nil
}
