// Package roster provides the in-memory authority for activity state.
package roster

import (
	"context"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// InMemoryStore keeps the full activity mapping in process memory. A single
// RWMutex serializes mutations so concurrent signups cannot lose updates.
// State does not survive restarts; every process starts from the seed set.
type InMemoryStore struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryStore constructs a store populated with the seed activity set.
func NewInMemoryStore() *InMemoryStore {
	s := &InMemoryStore{}
	s.Reset()
	return s
}

// Reset returns the store to the seed state. Intended for test harnesses;
// the running service never calls it.
func (s *InMemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = seedActivities()
}

// ListActivities implements domain.Repository. It returns a deep copy so
// callers cannot mutate store state through the participant slices.
func (s *InMemoryStore) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		participants := make([]string, len(activity.Participants))
		copy(participants, activity.Participants)
		activity.Participants = participants
		out[name] = activity
	}
	return out, nil
}

// Signup appends email to the named activity's roster. Activity names are
// case-sensitive exact-match keys. MaxParticipants is not checked.
func (s *InMemoryStore) Signup(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return domain.ErrAlreadyRegistered
		}
	}

	activity.Participants = append(activity.Participants, email)
	s.activities[activityName] = activity
	return nil
}

// Unregister removes email from the named activity's roster, preserving the
// order of the remaining participants.
func (s *InMemoryStore) Unregister(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	index := -1
	for i, participant := range activity.Participants {
		if participant == email {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.ErrNotRegistered
	}

	remaining := make([]string, 0, len(activity.Participants)-1)
	remaining = append(remaining, activity.Participants[:index]...)
	remaining = append(remaining, activity.Participants[index+1:]...)
	activity.Participants = remaining
	s.activities[activityName] = activity
	return nil
}
