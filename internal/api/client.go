package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const simulatePath = "/simulate"

// Client is an HTTP client for the Digital Financial Twin projection
// service. One request type, one endpoint; no retries, no cancellation
// beyond the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // four projection runs can take a while
		},
		log: log.With().Str("client", "fintwin").Logger(),
	}
}

// Simulate posts a simulation request and returns the validated result.
// Failures classify into exactly two kinds: *RequestError for anything
// that went wrong with the exchange itself (status, transport, decode)
// and *SchemaError for a well-formed reply missing required data.
func (c *Client) Simulate(ctx context.Context, req SimulationRequest) (*ProjectionResult, error) {
	reqID := uuid.NewString()
	start := time.Now()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+simulatePath, bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Debug().
		Str("request_id", reqID).
		Str("scenario", req.Scenario).
		Str("risk_tolerance", req.RiskTolerance).
		Msg("Calling simulation service")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error().Str("request_id", reqID).Err(err).Msg("Simulation request failed")
		return nil, &RequestError{Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Drain so the connection can be reused; the body is only logged.
		detail, _ := io.ReadAll(io.LimitReader(httpResp.Body, 2048))
		c.log.Error().
			Str("request_id", reqID).
			Int("status", httpResp.StatusCode).
			Str("body", string(detail)).
			Msg("Simulation service returned non-success status")
		return nil, &RequestError{Status: httpResp.StatusCode}
	}

	var raw rawResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&raw); err != nil {
		c.log.Error().Str("request_id", reqID).Err(err).Msg("Failed to decode simulation response")
		return nil, &RequestError{Err: fmt.Errorf("decode response: %w", err)}
	}

	result, err := normalize(raw)
	if err != nil {
		c.log.Error().Str("request_id", reqID).Err(err).Msg("Simulation response failed schema validation")
		return nil, err
	}

	c.log.Info().
		Str("request_id", reqID).
		Dur("duration", time.Since(start)).
		Float64("base_final_net_worth", result.Base.FinalNetWorth).
		Msg("Simulation completed")

	return result, nil
}
