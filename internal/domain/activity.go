// Package domain defines the business logic for the extracurricular roster service.
package domain

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the store.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("student already signed up for activity")
	// ErrNotRegistered is returned when unregistering an email absent from the roster.
	ErrNotRegistered = errors.New("student not registered for activity")
	// ErrEmailRequired is returned when the email argument is blank.
	ErrEmailRequired = errors.New("email is required")
)

// Activity is a named extracurricular offering with its roster.
// MaxParticipants is advisory display data; signup does not enforce it.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Repository captures roster storage operations. Mutations are atomic: the
// existence and membership checks happen under the same lock as the write.
type Repository interface {
	ListActivities(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Service orchestrates roster operations on top of a Repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns the full activity mapping keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.ListActivities(ctx)
}

// Signup appends email to the named activity's roster, preserving signup order.
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	return s.repo.Signup(ctx, activityName, email)
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	return s.repo.Unregister(ctx, activityName, email)
}
