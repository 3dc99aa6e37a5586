// Package client talks to a running tracker over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// APIError is any non-2xx answer other than an unknown user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tracker responded %d: %s", e.StatusCode, e.Message)
}

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type Exercise struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type Log struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// LogOptions narrows a log query. Zero values are left out of the request.
type LogOptions struct {
	From  string
	To    string
	Limit int
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateUser(ctx context.Context, username string) (*User, error) {
	var user User
	err := c.postForm(ctx, "/api/users", url.Values{"username": {username}}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddExercise logs an exercise; an empty date means today on the server.
func (c *Client) AddExercise(ctx context.Context, userID, description, duration, date string) (*Exercise, error) {
	form := url.Values{
		"description": {description},
		"duration":    {duration},
	}
	if date != "" {
		form.Set("date", date)
	}

	var exercise Exercise
	if err := c.postForm(ctx, "/api/users/"+url.PathEscape(userID)+"/exercises", form, &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (c *Client) GetLog(ctx context.Context, userID string, opts LogOptions) (*Log, error) {
	q := url.Values{}
	if opts.From != "" {
		q.Set("from", opts.From)
	}
	if opts.To != "" {
		q.Set("to", opts.To)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	path := "/api/users/" + url.PathEscape(userID) + "/logs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var log Log
	if err := c.get(ctx, path, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrUserNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
			body.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
