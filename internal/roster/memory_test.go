package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/extracurricular/internal/domain"
)

func TestSeedContainsAllActivities(t *testing.T) {
	store := NewInMemoryStore()

	activities, err := store.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 9)

	soccer, ok := activities["Soccer Team"]
	require.True(t, ok)
	require.Equal(t, 25, soccer.MaxParticipants)
	require.Equal(t, "Tuesdays and Thursdays, 4:00 PM - 6:00 PM", soccer.Schedule)
	require.Equal(t, []string{"james@mergington.edu", "william@mergington.edu"}, soccer.Participants)

	for name, activity := range activities {
		require.NotEmpty(t, activity.Description, "activity %s missing description", name)
		require.NotEmpty(t, activity.Schedule, "activity %s missing schedule", name)
		require.Positive(t, activity.MaxParticipants, "activity %s missing capacity", name)
		require.Len(t, activity.Participants, 2, "activity %s unexpected seed roster", name)
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	first, err := store.ListActivities(ctx)
	require.NoError(t, err)
	first["Chess Club"].Participants[0] = "tampered@mergington.edu"

	second, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0])
}

func TestSignupAppendsInOrder(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Signup(ctx, "Soccer Team", "newstudent@mergington.edu"))

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{
		"james@mergington.edu",
		"william@mergington.edu",
		"newstudent@mergington.edu",
	}, activities["Soccer Team"].Participants)
}

func TestSignupUnknownActivity(t *testing.T) {
	store := NewInMemoryStore()

	err := store.Signup(context.Background(), "Rocketry Club", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupDuplicateRejected(t *testing.T) {
	store := NewInMemoryStore()

	err := store.Signup(context.Background(), "Soccer Team", "james@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestSignupIgnoresCapacity(t *testing.T) {
	// max_participants is advisory only; the store accepts signups past it.
	store := NewInMemoryStore()
	ctx := context.Background()

	chess, err := store.ListActivities(ctx)
	require.NoError(t, err)
	capacity := chess["Chess Club"].MaxParticipants

	for i := 0; i < capacity+3; i++ {
		email := "student" + string(rune('a'+i)) + "@mergington.edu"
		require.NoError(t, store.Signup(ctx, "Chess Club", email))
	}

	after, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Greater(t, len(after["Chess Club"].Participants), capacity)
}

func TestUnregisterRemovesParticipant(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Unregister(ctx, "Soccer Team", "james@mergington.edu"))

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"william@mergington.edu"}, activities["Soccer Team"].Participants)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	store := NewInMemoryStore()

	err := store.Unregister(context.Background(), "Rocketry Club", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestUnregisterAbsentParticipant(t *testing.T) {
	store := NewInMemoryStore()

	err := store.Unregister(context.Background(), "Soccer Team", "notregistered@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	before, err := store.ListActivities(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Signup(ctx, "Chess Club", "roundtrip@mergington.edu"))
	require.NoError(t, store.Unregister(ctx, "Chess Club", "roundtrip@mergington.edu"))

	after, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, before["Chess Club"].Participants, after["Chess Club"].Participants)
}

func TestResetRestoresSeedState(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Signup(ctx, "Gym Class", "temp@mergington.edu"))
	store.Reset()

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"john@mergington.edu", "olivia@mergington.edu"}, activities["Gym Class"].Participants)
}
