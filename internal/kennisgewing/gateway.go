package kennisgewing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

// PushGateway delivers a notification to subscribed devices and reports how
// many subscriptions were eligible for it.
type PushGateway interface {
	Send(ctx context.Context, req GatewayRequest) (GatewayResponse, error)
}

// GatewayRequest is the payload handed to the push gateway.
type GatewayRequest struct {
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Tipe           string         `json:"type"`
	Priority       string         `json:"priority"`
	GemeenteID     uuid.UUID      `json:"gemeente_id"`
	TargetAudience TargetAudience `json:"target_audience"`
	TargetWykID    *uuid.UUID     `json:"target_wyk_id,omitempty"`
	SentBy         uuid.UUID      `json:"sent_by,omitempty"`
	Data           GatewayData    `json:"data"`
}

// GatewayData is the click-through payload attached to the push message.
type GatewayData struct {
	URL string `json:"url"`
}

// GatewayResponse is what the gateway reports back.
type GatewayResponse struct {
	EligibleSubscriptions int `json:"eligible_subscriptions"`
}

// HTTPGateway talks to the push gateway service over HTTP.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *HTTPGateway) Send(ctx context.Context, req GatewayRequest) (GatewayResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return GatewayResponse{}, fmt.Errorf("marshal gateway request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/send-push-notification", bytes.NewReader(body))
	if err != nil {
		return GatewayResponse{}, fmt.Errorf("build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return GatewayResponse{}, fmt.Errorf("call push gateway: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GatewayResponse{}, fmt.Errorf("push gateway status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	var out GatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return GatewayResponse{}, fmt.Errorf("decode gateway response: %w", err)
	}
	return out, nil
}
