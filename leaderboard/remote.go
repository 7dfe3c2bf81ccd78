package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned by Remote.Submit when the endpoint, slug
	// or secret is missing.
	ErrNotConfigured = errors.New("leaderboard: remote not configured")

	errWorkerPanic = errors.New("leaderboard: worker panic")
)

// Remote posts scores to {BaseURL}/api/mini-games/score.
type Remote struct {
	BaseURL  string
	GameSlug string
	Secret   string
	Client   *http.Client
}

type remotePayload struct {
	UserID   string `json:"userId"`
	Score    int    `json:"score"`
	GameSlug string `json:"gameSlug"`
	Secret   string `json:"secret"`
}

func (r *Remote) Configured() bool {
	return r != nil && r.BaseURL != "" && r.GameSlug != "" && r.Secret != ""
}

func (r *Remote) endpoint() string {
	return strings.TrimRight(r.BaseURL, "/") + "/api/mini-games/score"
}

// Submit sends one score. A non-2xx response is an error carrying the
// status and a short prefix of the body.
func (r *Remote) Submit(ctx context.Context, userID string, score int) error {
	if !r.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(remotePayload{
		UserID:   userID,
		Score:    score,
		GameSlug: r.GameSlug,
		Secret:   r.Secret,
	})
	if err != nil {
		return fmt.Errorf("leaderboard: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("leaderboard: remote status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
