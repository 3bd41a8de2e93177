// Package api is the typed client for the remote coaching backend. Response
// shapes are validated at this boundary so the rest of the app never sees a
// half-decoded record.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/reconcile"
)

var (
	// ErrNotFound marks a 404: the backend has no record for the request.
	// Distinct from transport failures so callers can degrade differently.
	ErrNotFound = errors.New("api: not found")
	// ErrNoMember is returned before any request is attempted when no member
	// id is configured. Dependent fetches must be skipped, never sent with a
	// sentinel member.
	ErrNoMember = errors.New("api: member id is required")
	// ErrBadResponse marks a 2xx body that does not match the expected schema.
	ErrBadResponse = errors.New("api: malformed response")
)

// StatusError carries a non-2xx, non-404 response status.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s returned status %d", e.Path, e.Code)
}

type Client struct {
	baseURL  string
	memberID string
	httpc    *http.Client
}

func NewClient(baseURL, memberID string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		memberID: strings.TrimSpace(memberID),
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetMember swaps the member every request is keyed by.
func (c *Client) SetMember(memberID string) {
	c.memberID = strings.TrimSpace(memberID)
}

func (c *Client) MemberID() string {
	return c.memberID
}

// GetActivity fetches the four rolled-up trailing durations for the member.
func (c *Client) GetActivity(ctx context.Context) (model.ActivitySummary, error) {
	if c.memberID == "" {
		return model.ActivitySummary{}, ErrNoMember
	}
	var resp activityResponse
	if err := c.getJSON(ctx, "/api/activity", url.Values{"memberId": {c.memberID}}, &resp); err != nil {
		return model.ActivitySummary{}, err
	}
	return resp.toSummary()
}

// LogActivity records tracked minutes against the member.
func (c *Client) LogActivity(ctx context.Context, minutes int) error {
	if c.memberID == "" {
		return ErrNoMember
	}
	if minutes <= 0 {
		return fmt.Errorf("api: minutes must be positive, got %d", minutes)
	}
	return c.postJSON(ctx, "/api/activity", logActivityRequest{MemberID: c.memberID, Minutes: minutes})
}

// GetDailyTasks fetches the three-task detail for an ISO date. A 404 means
// the backend has no record for that date yet and surfaces as ErrNotFound.
func (c *Client) GetDailyTasks(ctx context.Context, date string) (model.DayDetail, error) {
	if c.memberID == "" {
		return model.DayDetail{}, ErrNoMember
	}
	if err := model.ValidateISODate(date); err != nil {
		return model.DayDetail{}, err
	}
	var resp dailyTasksResponse
	query := url.Values{"memberId": {c.memberID}, "date": {date}}
	if err := c.getJSON(ctx, "/api/daily-tasks", query, &resp); err != nil {
		return model.DayDetail{}, err
	}
	return resp.toDetail(date)
}

// SaveTaskCompletion posts one task's completion flag for an ISO date.
func (c *Client) SaveTaskCompletion(ctx context.Context, taskNumber int, completed bool, date string) error {
	if c.memberID == "" {
		return ErrNoMember
	}
	if taskNumber < 1 || taskNumber > model.DailyTaskCount {
		return model.ErrInvalidTaskNumber
	}
	if err := model.ValidateISODate(date); err != nil {
		return err
	}
	return c.postJSON(ctx, "/api/daily-tasks", taskCompletionRequest{
		MemberID:   c.memberID,
		TaskNumber: taskNumber,
		Completed:  completed,
		Date:       date,
	})
}

// GetSessions fetches every coaching session booked for the member. Records
// that fail validation are dropped rather than failing the whole fetch.
func (c *Client) GetSessions(ctx context.Context) ([]reconcile.Session, error) {
	if c.memberID == "" {
		return nil, ErrNoMember
	}
	var records []sessionRecord
	if err := c.getJSON(ctx, "/api/sessions", url.Values{"memberId": {c.memberID}}, &records); err != nil {
		return nil, err
	}
	out := make([]reconcile.Session, 0, len(records))
	for _, rec := range records {
		session, err := rec.toSession()
		if err != nil {
			continue
		}
		out = append(out, session)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Path: path}
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Path: path}
	}
	return nil
}
