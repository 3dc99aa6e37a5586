package usecases

import (
	"context"
	"exercise-tracker/entities"
	"exercise-tracker/repositories"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExerciseNotifier is told about every exercise that was stored.
type ExerciseNotifier interface {
	NotifyExercise(user entities.User, exercise entities.Exercise)
}

type ExerciseUseCase struct {
	users     repositories.UserRepository
	exercises repositories.ExerciseRepository
	notifier  ExerciseNotifier

	now func() time.Time
	loc *time.Location
}

// NewExerciseUseCase wires the exercise log. notifier may be nil.
func NewExerciseUseCase(users repositories.UserRepository, exercises repositories.ExerciseRepository, notifier ExerciseNotifier) *ExerciseUseCase {
	return &ExerciseUseCase{
		users:     users,
		exercises: exercises,
		notifier:  notifier,
		now:       time.Now,
		loc:       time.Local,
	}
}

// SetClock overrides the time source and the zone dates are resolved in.
func (uc *ExerciseUseCase) SetClock(now func() time.Time, loc *time.Location) {
	uc.now = now
	uc.loc = loc
}

type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

type ExerciseResult struct {
	User     entities.User
	Exercise entities.Exercise
}

// AddExercise appends an entry to a user's log. The user must exist; a
// missing date means today.
func (uc *ExerciseUseCase) AddExercise(ctx context.Context, in AddExerciseInput) (*ExerciseResult, error) {
	user, err := lookupUser(ctx, uc.users, in.UserID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	duration, err := ParseDuration(in.Duration)
	if err != nil {
		return nil, err
	}

	when := uc.now().In(uc.loc)
	if strings.TrimSpace(in.Date) != "" {
		when, err = entities.ParseDate(in.Date, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
		}
	}

	exercise := entities.NewExercise(user.ID, in.Description, duration, when)
	if err := uc.exercises.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	if uc.notifier != nil {
		uc.notifier.NotifyExercise(*user, *exercise)
	}
	return &ExerciseResult{User: *user, Exercise: *exercise}, nil
}

type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

type LogResult struct {
	User    entities.User
	Entries []entities.Exercise
}

// GetLogs returns a user's entries between the optional inclusive from/to
// days, capped at limit when limit is a positive integer.
func (uc *ExerciseUseCase) GetLogs(ctx context.Context, q LogQuery) (*LogResult, error) {
	user, err := lookupUser(ctx, uc.users, q.UserID)
	if err != nil {
		return nil, err
	}

	filter := repositories.ExerciseFilter{UserID: user.ID, Limit: ParseLimit(q.Limit)}
	if filter.FromDay, err = uc.dayBound(q.From); err != nil {
		return nil, err
	}
	if filter.ToDay, err = uc.dayBound(q.To); err != nil {
		return nil, err
	}

	entries, err := uc.exercises.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	return &LogResult{User: *user, Entries: entries}, nil
}

func (uc *ExerciseUseCase) dayBound(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	t, err := entities.ParseDate(value, uc.loc)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return entities.FormatDay(t), nil
}

// ParseDuration reads the leading integer of value, so "30", " 30" and
// "30min" are all 30. Input without a leading integer is rejected.
func ParseDuration(value string) (int, error) {
	n, ok := leadingInt(value)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}
	return n, nil
}

// ParseLimit reads the leading integer of value. Missing, unparseable, zero
// and negative limits all mean no limit and yield 0.
func ParseLimit(value string) int {
	n, ok := leadingInt(value)
	if !ok || n < 0 {
		return 0
	}
	return n
}

func leadingInt(value string) (int, bool) {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
