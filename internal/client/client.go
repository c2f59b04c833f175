package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
)

// APIError carries the HTTP status and the server's detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// Client is a typed HTTP client for the maintenance dashboard API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(code int, raw []byte) error {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &detail); err != nil || detail.Detail == "" {
		detail.Detail = strings.TrimSpace(string(raw))
		if detail.Detail == "" {
			detail.Detail = http.StatusText(code)
		}
	}
	return &APIError{StatusCode: code, Detail: detail.Detail}
}

// decodeList accepts both list wire shapes: a bare JSON array, or the
// paginated {count, next, previous, results} envelope.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func (c *Client) FetchRequests(ctx context.Context, query url.Values) ([]dto.MaintenanceRequestDTO, error) {
	return list[dto.MaintenanceRequestDTO](ctx, c, "/maintenance-requests", query)
}

func (c *Client) FetchEquipment(ctx context.Context, query url.Values) ([]dto.EquipmentDTO, error) {
	return list[dto.EquipmentDTO](ctx, c, "/equipment", query)
}

func (c *Client) FetchTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return list[dto.TeamDTO](ctx, c, "/teams", nil)
}

// FetchTechnicians lists technician users, optionally narrowed to one
// team (0 means all teams).
func (c *Client) FetchTechnicians(ctx context.Context, teamID uint64) ([]dto.UserDTO, error) {
	var query url.Values
	if teamID != 0 {
		query = url.Values{"team_id": {strconv.FormatUint(teamID, 10)}}
	}
	return list[dto.UserDTO](ctx, c, "/users/technicians", query)
}

func (c *Client) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	var out dto.EquipmentDTO
	if err := c.do(ctx, http.MethodPost, "/equipment", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchReport(ctx context.Context) (*entities.RequestsReport, error) {
	var out entities.RequestsReport
	if err := c.do(ctx, http.MethodGet, "/reports/requests", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchNotifications(ctx context.Context) ([]dto.NotificationDTO, error) {
	return list[dto.NotificationDTO](ctx, c, "/notifications", nil)
}

func (c *Client) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	var out dto.MaintenanceRequestDTO
	if err := c.do(ctx, http.MethodPost, "/maintenance-requests", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequest sends a PATCH with exactly the given fields, so absent
// columns keep their values server-side.
func (c *Client) UpdateRequest(ctx context.Context, id uint64, fields map[string]interface{}) (*dto.MaintenanceRequestDTO, error) {
	var out dto.MaintenanceRequestDTO
	path := fmt.Sprintf("/maintenance-requests/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRequest(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/maintenance-requests/%d", id), nil, nil, nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id uint64) (*dto.NotificationDTO, error) {
	var out dto.NotificationDTO
	path := fmt.Sprintf("/notifications/%d/mark_read", id)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
