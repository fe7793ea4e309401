package main

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const turnTimeStart = 10

type round struct {
	cancel chan bool
	done   chan bool
}

// TurnTimerService runs at most one countdown per room. Starting a round
// resets the countdown to its full value and cancels any round already
// running for that room.
type TurnTimerService struct {
	clock  clockwork.Clock
	pub    Publisher
	rounds map[string]*round
	lock   sync.Mutex
}

func NewTurnTimerService(clock clockwork.Clock, pub Publisher) *TurnTimerService {
	return &TurnTimerService{clock: clock, pub: pub, rounds: make(map[string]*round)}
}

// StartRound tells the room to switch to gameplay and begins ticking the
// countdown down once per second. Expiry is silent: the last broadcast is
// turnTime 0.
func (s *TurnTimerService) StartRound(roomID string) {
	current := &round{cancel: make(chan bool), done: make(chan bool)}
	s.lock.Lock()
	prev := s.rounds[roomID]
	s.rounds[roomID] = current
	s.lock.Unlock()
	if prev != nil {
		// Never let two tick streams for one room overlap.
		close(prev.cancel)
		<-prev.done
	}

	LogRoundStarted(roomID)
	s.pub.PublishToRoom(roomID, NavigateToGameplayMessage{Type: "navigateToGameplay"})
	go s.run(roomID, current)
}

func (s *TurnTimerService) run(roomID string, current *round) {
	defer close(current.done)
	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()
	turnTime := turnTimeStart
	for {
		select {
		case <-ticker.Chan():
			turnTime--
			s.pub.PublishToRoom(roomID, TurnTimerMessage{Type: "updateTurnTimer", TurnTime: turnTime})
			if turnTime == 0 {
				s.finishRound(roomID, current)
				return
			}
		case <-current.cancel:
			return
		}
	}
}

// finishRound drops the round's handle unless a newer round has already
// replaced it.
func (s *TurnTimerService) finishRound(roomID string, current *round) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.rounds[roomID] == current {
		delete(s.rounds, roomID)
	}
}
