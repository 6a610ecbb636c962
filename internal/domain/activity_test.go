package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	lastActivity string
	lastEmail    string
}

func (r *recordingRepo) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return map[string]Activity{}, nil
}

func (r *recordingRepo) Signup(ctx context.Context, activityName, email string) error {
	r.lastActivity = activityName
	r.lastEmail = email
	return nil
}

func (r *recordingRepo) Unregister(ctx context.Context, activityName, email string) error {
	r.lastActivity = activityName
	r.lastEmail = email
	return nil
}

func TestSignupRejectsBlankEmail(t *testing.T) {
	service := NewService(&recordingRepo{})

	require.ErrorIs(t, service.Signup(context.Background(), "Chess Club", ""), ErrEmailRequired)
	require.ErrorIs(t, service.Signup(context.Background(), "Chess Club", "   "), ErrEmailRequired)
}

func TestUnregisterRejectsBlankEmail(t *testing.T) {
	service := NewService(&recordingRepo{})

	require.ErrorIs(t, service.Unregister(context.Background(), "Chess Club", ""), ErrEmailRequired)
}

func TestSignupTrimsEmail(t *testing.T) {
	repo := &recordingRepo{}
	service := NewService(repo)

	require.NoError(t, service.Signup(context.Background(), "Chess Club", " student@mergington.edu "))
	require.Equal(t, "student@mergington.edu", repo.lastEmail)
	require.Equal(t, "Chess Club", repo.lastActivity)
}
