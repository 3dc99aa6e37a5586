package client_test

import (
	"context"
	"errors"
	"exercise-tracker/client"
	"exercise-tracker/confs"
	"exercise-tracker/db/dbtest"
	"exercise-tracker/server"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := server.NewServer(&confs.Config{UserCacheSize: 8}, server.NewGormStore(dbtest.NewSQLite(t)))
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/")
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTracker(t)

	user, err := c.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []client.User{*user}, users)

	exercise, err := c.AddExercise(ctx, user.ID, "run", "30", "2023-01-15")
	require.NoError(t, err)
	assert.Equal(t, client.Exercise{ID: user.ID, Username: "alice", Description: "run", Duration: 30, Date: "Sun Jan 15 2023"}, *exercise)

	_, err = c.AddExercise(ctx, user.ID, "bike", "60", "2023-02-15")
	require.NoError(t, err)

	log, err := c.GetLog(ctx, user.ID, client.LogOptions{From: "2023-01-01", To: "2023-01-31"})
	require.NoError(t, err)
	assert.Equal(t, 1, log.Count)
	assert.Equal(t, []client.LogEntry{{Description: "run", Duration: 30, Date: "Sun Jan 15 2023"}}, log.Log)

	log, err = c.GetLog(ctx, user.ID, client.LogOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, log.Log, 1)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	c := newTracker(t)

	_, err := c.GetLog(ctx, uuid.NewString(), client.LogOptions{})
	assert.ErrorIs(t, err, client.ErrUserNotFound)

	_, err = c.CreateUser(ctx, "")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Error creating user", apiErr.Message)
}
