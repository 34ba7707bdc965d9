package opsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const requestTimeout = 10 * time.Second

// Assignment is the upstream Operations payload for a bus assignment.
type Assignment struct {
	ExternalID          string          `json:"id"`
	BusRoute            string          `json:"bus_route"`
	AssignmentType      string          `json:"assignment_type"`
	AssignmentValue     decimal.Decimal `json:"assignment_value"`
	DriverExternalID    *string         `json:"driver_id,omitempty"`
	ConductorExternalID *string         `json:"conductor_id,omitempty"`
	IsActive            bool            `json:"is_active"`
}

// BusTrip is the upstream Operations payload for one trip.
type BusTrip struct {
	ExternalID           string          `json:"id"`
	AssignmentExternalID string          `json:"assignment_id"`
	TripDate             time.Time       `json:"trip_date"`
	TripRevenue          decimal.Decimal `json:"trip_revenue"`
	TripFuelExpense      decimal.Decimal `json:"trip_fuel_expense"`
	PaymentMethod        string          `json:"payment_method"`
	IsActive             bool            `json:"is_active"`
}

type assignmentListResponse struct {
	Data []Assignment `json:"data"`
}

type tripListResponse struct {
	Data []BusTrip `json:"data"`
}

// Client polls the external Operations API for assignment and trip data. The
// projection it returns is cached locally; this service never writes trip
// financials back upstream.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Log     zerolog.Logger
}

func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: requestTimeout},
		Log:     log.With().Str("integration", "operations").Logger(),
	}
}

func (c *Client) Enabled() bool { return c.BaseURL != "" }

func (c *Client) ListAssignments(ctx context.Context) ([]Assignment, error) {
	body, err := c.get(ctx, c.BaseURL+"/api/assignments")
	if err != nil {
		return nil, err
	}
	var resp assignmentListResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode assignment list: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) ListBusTrips(ctx context.Context, since time.Time) ([]BusTrip, error) {
	url := fmt.Sprintf("%s/api/bus-trips?since=%s", c.BaseURL, since.Format("2006-01-02"))
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var resp tripListResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode bus trip list: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("operations API returned %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
