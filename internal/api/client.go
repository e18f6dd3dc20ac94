// Package api is the thin HTTP boundary to the puzzle backend. It does
// straight request/response wrapping; all game rules (word validity,
// scoring) live on the server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized is returned when the server rejects the stored token.
var ErrUnauthorized = errors.New("unauthorized: run 'anagrid login'")

// Client talks to one anagrid server.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a client for the given server. token may be empty for
// endpoints that do not require auth (login, version).
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password, deviceID string) (string, error) {
	req := loginRequest{Username: username, Password: password, DeviceID: deviceID}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return resp.Token, nil
}

// TodayPuzzle fetches the current daily puzzle.
func (c *Client) TodayPuzzle(ctx context.Context) (Puzzle, error) {
	var p Puzzle
	if err := c.do(ctx, http.MethodGet, "/v1/puzzle/today", nil, &p); err != nil {
		return Puzzle{}, fmt.Errorf("fetch puzzle: %w", err)
	}
	return p, nil
}

// SubmitGuess sends one guessed word for the given puzzle.
func (c *Client) SubmitGuess(ctx context.Context, puzzleID, word string) (GuessResult, error) {
	req := guessRequest{Word: word}
	var res GuessResult
	path := fmt.Sprintf("/v1/puzzle/%s/guess", puzzleID)
	if err := c.do(ctx, http.MethodPost, path, req, &res); err != nil {
		return GuessResult{}, fmt.Errorf("submit guess: %w", err)
	}
	return res, nil
}

// Hint asks the server to reveal part of an unfound word.
func (c *Client) Hint(ctx context.Context, puzzleID string) (Hint, error) {
	var h Hint
	path := fmt.Sprintf("/v1/puzzle/%s/hint", puzzleID)
	if err := c.do(ctx, http.MethodPost, path, nil, &h); err != nil {
		return Hint{}, fmt.Errorf("request hint: %w", err)
	}
	return h, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server: %s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
