package main

import (
	"slices"
	"sync"

	"github.com/pvritFiew/Game-scales-server/code"
)

const maxRoomSize = 8

type Member struct {
	ConnectionID string `json:"connectionId"`
	Name         string `json:"name"`
}

// Registry is the single source of truth for room membership. Members are
// kept in join order, creator first.
type Registry struct {
	rooms map[string][]Member
	pub   Publisher
	lock  sync.RWMutex
}

func NewRegistry(pub Publisher) *Registry {
	return &Registry{rooms: make(map[string][]Member), pub: pub}
}

// CreateRoom allocates an unused room id and puts the creator in it.
func (r *Registry) CreateRoom(connectionID, name string) string {
	r.lock.Lock()
	defer r.lock.Unlock()
	var roomID string
	for {
		roomID = code.GenerateRandom()
		if _, exists := r.rooms[roomID]; !exists {
			break
		}
	}
	r.rooms[roomID] = []Member{{ConnectionID: connectionID, Name: name}}
	return roomID
}

// JoinRoom appends a member and broadcasts the new roster. Returns false
// without mutation if the room is missing, full, or already holds the
// connection.
func (r *Registry) JoinRoom(roomID, connectionID, name string) bool {
	r.lock.Lock()
	members, exists := r.rooms[roomID]
	if !exists || len(members) >= maxRoomSize {
		r.lock.Unlock()
		return false
	}
	for _, member := range members {
		if member.ConnectionID == connectionID {
			r.lock.Unlock()
			return false
		}
	}
	members = append(members, Member{ConnectionID: connectionID, Name: name})
	r.rooms[roomID] = members
	// Published under the lock so rosters go out in mutation order.
	r.pub.PublishToRoom(roomID, PlayerJoinedMessage{Type: "playerJoined", Players: memberNames(members)})
	r.lock.Unlock()
	return true
}

// RemoveByConnection drops the connection's member entry from the first room
// containing it and broadcasts that room's new roster. Calling it again for
// the same connection is a no-op.
func (r *Registry) RemoveByConnection(connectionID string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for roomID, members := range r.rooms {
		for i, member := range members {
			if member.ConnectionID == connectionID {
				r.rooms[roomID] = slices.Delete(members, i, i+1)
				r.pub.PublishToRoom(roomID, PlayerJoinedMessage{Type: "playerJoined", Players: memberNames(r.rooms[roomID])})
				return
			}
		}
	}
}

func (r *Registry) GetNames(roomID string) ([]string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	members, exists := r.rooms[roomID]
	if !exists {
		return nil, false
	}
	return memberNames(members), true
}

func (r *Registry) GetMember(roomID, connectionID string) (Member, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, member := range r.rooms[roomID] {
		if member.ConnectionID == connectionID {
			return member, true
		}
	}
	return Member{}, false
}

// RoomOf reports which room currently holds the connection.
func (r *Registry) RoomOf(connectionID string) (string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for roomID, members := range r.rooms {
		for _, member := range members {
			if member.ConnectionID == connectionID {
				return roomID, true
			}
		}
	}
	return "", false
}

func memberNames(members []Member) []string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}
	return names
}
