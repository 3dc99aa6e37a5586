package usecases

import (
	"context"
	"errors"
	"exercise-tracker/db/dbtest"
	"exercise-tracker/entities"
	"exercise-tracker/repositories"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	events []entities.Exercise
}

func (n *recordingNotifier) NotifyExercise(_ entities.User, exercise entities.Exercise) {
	n.events = append(n.events, exercise)
}

type fixture struct {
	users     *UserUseCase
	exercises *ExerciseUseCase
	notifier  *recordingNotifier
	store     repositories.ExerciseRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := dbtest.NewSQLite(t)
	userRepo := repositories.NewUserPgRepository(database)
	exerciseRepo := repositories.NewExercisePgRepository(database)
	notifier := &recordingNotifier{}

	exercises := NewExerciseUseCase(userRepo, exerciseRepo, notifier)
	exercises.SetClock(func() time.Time {
		return time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)
	}, time.UTC)

	return &fixture{
		users:     NewUserUseCase(userRepo),
		exercises: exercises,
		notifier:  notifier,
		store:     exerciseRepo,
	}
}

func TestCreateAndListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.users.ListUsers(ctx)
	require.NoError(t, err)

	user, err := f.users.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err)
	for _, u := range before {
		assert.NotEqual(t, u.ID, user.ID)
	}

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	matches := 0
	for _, u := range users {
		if u.ID == user.ID {
			matches++
			assert.Equal(t, "alice", u.Username)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCreateUserRequiresUsername(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"", "   "} {
		_, err := f.users.CreateUser(context.Background(), name)
		assert.ErrorIs(t, err, ErrUsernameRequired)
	}
}

func TestGetUserErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.GetUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = f.users.GetUser(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddExercise(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	res, err := f.exercises.AddExercise(ctx, AddExerciseInput{
		UserID: user.ID, Description: "run", Duration: "30", Date: "2023-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)
	assert.Equal(t, "run", res.Exercise.Description)
	assert.Equal(t, 30, res.Exercise.Duration)
	assert.Equal(t, "Sun Jan 15 2023", res.Exercise.Date)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, res.Exercise.ID, f.notifier.events[0].ID)
}

func TestAddExerciseDefaultsToToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	res, err := f.exercises.AddExercise(ctx, AddExerciseInput{UserID: user.ID, Description: "yoga", Duration: "45min"})
	require.NoError(t, err)
	assert.Equal(t, "Sat Mar 09 2024", res.Exercise.Date)
	assert.Equal(t, 45, res.Exercise.Duration)
}

func TestAddExerciseUnknownUserWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ghost := uuid.NewString()

	_, err := f.exercises.AddExercise(ctx, AddExerciseInput{UserID: ghost, Description: "run", Duration: "30"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	entries, err := f.store.Find(ctx, repositories.ExerciseFilter{UserID: ghost})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, f.notifier.events)
}

func TestAddExerciseValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	cases := []struct {
		name string
		in   AddExerciseInput
		want error
	}{
		{"missing description", AddExerciseInput{Duration: "10"}, ErrDescriptionRequired},
		{"non numeric duration", AddExerciseInput{Description: "run", Duration: "abc"}, ErrInvalidDuration},
		{"missing duration", AddExerciseInput{Description: "run"}, ErrInvalidDuration},
		{"bad date", AddExerciseInput{Description: "run", Duration: "10", Date: "someday"}, ErrInvalidDate},
		{"malformed id", AddExerciseInput{Description: "run", Duration: "10"}, ErrInvalidUserID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			in.UserID = user.ID
			if errors.Is(tc.want, ErrInvalidUserID) {
				in.UserID = "1234"
			}
			_, err := f.exercises.AddExercise(ctx, in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetLogs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	for _, date := range []string{"2023-01-10", "2023-01-15", "2023-01-20"} {
		_, err := f.exercises.AddExercise(ctx, AddExerciseInput{UserID: user.ID, Description: "run " + date, Duration: "30", Date: date})
		require.NoError(t, err)
	}

	all, err := f.exercises.GetLogs(ctx, LogQuery{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, "alice", all.User.Username)
	assert.Len(t, all.Entries, 3)

	ranged, err := f.exercises.GetLogs(ctx, LogQuery{UserID: user.ID, From: "2023-01-12", To: "2023-01-20"})
	require.NoError(t, err)
	dates := []string{}
	for _, e := range ranged.Entries {
		dates = append(dates, e.Date)
	}
	assert.ElementsMatch(t, []string{"Sun Jan 15 2023", "Fri Jan 20 2023"}, dates)

	limited, err := f.exercises.GetLogs(ctx, LogQuery{UserID: user.ID, Limit: "1"})
	require.NoError(t, err)
	assert.Len(t, limited.Entries, 1)

	for _, limit := range []string{"", "0", "-3", "lots"} {
		unbounded, err := f.exercises.GetLogs(ctx, LogQuery{UserID: user.ID, Limit: limit})
		require.NoError(t, err)
		assert.Len(t, unbounded.Entries, 3, "limit %q", limit)
	}

	_, err = f.exercises.GetLogs(ctx, LogQuery{UserID: user.ID, From: "whenever"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.exercises.GetLogs(ctx, LogQuery{UserID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestParseDuration(t *testing.T) {
	cases := map[string]int{"30": 30, " 45": 45, "30min": 30, "12.9": 12, "-5": -5, "+7": 7}
	for in, want := range cases {
		got, err := ParseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "min30", "-", "  "} {
		_, err := ParseDuration(in)
		assert.ErrorIs(t, err, ErrInvalidDuration, in)
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 0, ParseLimit(""))
	assert.Equal(t, 0, ParseLimit("abc"))
	assert.Equal(t, 0, ParseLimit("-1"))
	assert.Equal(t, 0, ParseLimit("0"))
	assert.Equal(t, 2, ParseLimit("2"))
	assert.Equal(t, 2, ParseLimit("2.5"))
}
