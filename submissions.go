package main

import "sync"

type Submission struct {
	ConnectionID string  `json:"connectionId"`
	Value        float64 `json:"value"`
}

// SubmissionStore keeps the full submission history per room, independent of
// room membership. Nothing is ever deduplicated or removed.
type SubmissionStore struct {
	numbers map[string][]Submission
	lock    sync.RWMutex
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{numbers: make(map[string][]Submission)}
}

func (s *SubmissionStore) Submit(roomID, connectionID string, value float64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.numbers[roomID] = append(s.numbers[roomID], Submission{ConnectionID: connectionID, Value: value})
}

// Average returns the arithmetic mean of the room's submissions, or 0 when
// there are none.
func (s *SubmissionStore) Average(roomID string) float64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	submissions := s.numbers[roomID]
	if len(submissions) == 0 {
		return 0
	}
	sum := 0.0
	for _, submission := range submissions {
		sum += submission.Value
	}
	return sum / float64(len(submissions))
}

func (s *SubmissionStore) GetAll(roomID string) ([]Submission, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	submissions, exists := s.numbers[roomID]
	if !exists {
		return nil, false
	}
	out := make([]Submission, len(submissions))
	copy(out, submissions)
	return out, true
}
