package visioservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the video-conference service that issues meeting links
// for confirmed visio reservations. A disabled client degrades every
// call, so reservations are confirmed without a link.
type Client struct {
	enabled    bool
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a video-conference service client.
func NewClient(enabled bool, baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		enabled: enabled,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateMeeting asks the service to create a meeting for the given window.
func (c *Client) CreateMeeting(ctx context.Context, request CreateMeetingRequest) (*Meeting, error) {
	url := fmt.Sprintf("%s/internal/meetings", c.baseURL)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid meeting request", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var meeting Meeting
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &meeting, nil
}

// CreateMeetingWithGracefulDegradation creates a meeting but maps transport
// failures to ErrServiceDegraded so a reservation can still be confirmed
// without a link when the service is down.
func (c *Client) CreateMeetingWithGracefulDegradation(ctx context.Context, request CreateMeetingRequest) (*Meeting, error) {
	if !c.enabled {
		return nil, fmt.Errorf("%w: visio integration disabled", ErrServiceDegraded)
	}

	c.log.Info("Creating visio meeting for date=%s start=%s", request.Date, request.Start)

	meeting, err := c.CreateMeeting(ctx, request)
	if err != nil {
		c.log.Error("VisioService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: date=%s, error=%v", ErrServiceDegraded, request.Date, err)
	}

	c.log.Info("Visio meeting created, id=%s", meeting.ID)
	return meeting, nil
}
