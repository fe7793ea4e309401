package main

import "sync"

// Publisher is the one side-effecting hook the lobby state uses to reach
// clients. The event name travels inside the message as its Type field.
type Publisher interface {
	PublishToRoom(roomID string, message any)
	PublishToAll(message any)
}

// Hub fans messages out to connected clients. Each connection owns a send
// channel drained by its write pump; room subscriptions are plain sets of
// connection ids.
type Hub struct {
	conns map[string]chan []byte
	rooms map[string]map[string]bool
	lock  sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]chan []byte), rooms: make(map[string]map[string]bool)}
}

// Register hands out the connection's send channel. The channel is closed by
// Unregister and never by senders.
func (h *Hub) Register(connectionID string) chan []byte {
	h.lock.Lock()
	defer h.lock.Unlock()
	sendChannel := make(chan []byte, 256)
	h.conns[connectionID] = sendChannel
	return sendChannel
}

func (h *Hub) Unregister(connectionID string) {
	h.lock.Lock()
	defer h.lock.Unlock()
	sendChannel, exists := h.conns[connectionID]
	if !exists {
		return
	}
	delete(h.conns, connectionID)
	for _, members := range h.rooms {
		delete(members, connectionID)
	}
	close(sendChannel)
}

func (h *Hub) Subscribe(roomID, connectionID string) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]bool)
	}
	h.rooms[roomID][connectionID] = true
}

func (h *Hub) Unsubscribe(roomID, connectionID string) {
	h.lock.Lock()
	defer h.lock.Unlock()
	delete(h.rooms[roomID], connectionID)
}

// SendTo delivers a message to a single connection.
func (h *Hub) SendTo(connectionID string, message any) {
	encoded := MarshalJSON(message)
	h.lock.RLock()
	defer h.lock.RUnlock()
	h.send(connectionID, encoded)
}

func (h *Hub) PublishToRoom(roomID string, message any) {
	encoded := MarshalJSON(message)
	h.lock.RLock()
	defer h.lock.RUnlock()
	for connectionID := range h.rooms[roomID] {
		h.send(connectionID, encoded)
	}
}

func (h *Hub) PublishToAll(message any) {
	encoded := MarshalJSON(message)
	h.lock.RLock()
	defer h.lock.RUnlock()
	for connectionID := range h.conns {
		h.send(connectionID, encoded)
	}
}

// send drops the message when the connection's buffer is full rather than
// blocking the publisher on a slow client.
func (h *Hub) send(connectionID string, encoded []byte) {
	sendChannel, exists := h.conns[connectionID]
	if !exists {
		return
	}
	select {
	case sendChannel <- encoded:
	default:
	}
}
