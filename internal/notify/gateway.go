package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gitsunil577/SafeHer-Backend/internal/config"
	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
)

// Gateway is the SMS/voice provider contract. Implementations return the
// per-attempt outcome; retry and queueing live inside the provider.
type Gateway interface {
	SendSMS(ctx context.Context, phone, text string) domain.DeliveryOutcome
	Call(ctx context.Context, phone, script string) domain.DeliveryOutcome
}

// HTTPGateway posts to the provider's JSON API. One attempt per send; a
// non-2xx response or transport error is a failed delivery.
type HTTPGateway struct {
	logger *slog.Logger
	cfg    config.GatewayConfig
	http   *http.Client
}

// NewGateway returns the HTTP client when the provider is configured and a
// logged stub otherwise, so environments without credentials still exercise
// the full dispatch flow deterministically.
func NewGateway(logger *slog.Logger, cfg config.GatewayConfig) Gateway {
	if !cfg.Configured() {
		logger.Warn("SMS gateway not configured, using stub")
		return &StubGateway{logger: logger}
	}
	return &HTTPGateway{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *HTTPGateway) SendSMS(ctx context.Context, phone, text string) domain.DeliveryOutcome {
	return g.post(ctx, "/sms", map[string]string{
		"from": g.cfg.FromNumber,
		"to":   phone,
		"text": text,
	})
}

func (g *HTTPGateway) Call(ctx context.Context, phone, script string) domain.DeliveryOutcome {
	return g.post(ctx, "/call", map[string]string{
		"from":   g.cfg.FromNumber,
		"to":     phone,
		"script": script,
	})
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload map[string]string) domain.DeliveryOutcome {
	body, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("marshal gateway payload failed", slog.String("error", err.Error()))
		return domain.DeliveryFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		g.logger.Error("create gateway request failed", slog.String("error", err.Error()))
		return domain.DeliveryFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.http.Do(req)
	if err != nil {
		g.logger.Warn("gateway send failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return domain.DeliveryFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn("gateway send rejected",
			slog.String("path", path),
			slog.String("status", resp.Status),
		)
		return domain.DeliveryFailed
	}
	return domain.DeliverySent
}

// StubGateway logs instead of sending and always reports success.
type StubGateway struct {
	logger *slog.Logger
}

func (g *StubGateway) SendSMS(_ context.Context, phone, text string) domain.DeliveryOutcome {
	g.logger.Info("stub SMS", slog.String("to", phone), slog.Int("len", len(text)))
	return domain.DeliverySent
}

func (g *StubGateway) Call(_ context.Context, phone, script string) domain.DeliveryOutcome {
	g.logger.Info("stub call", slog.String("to", phone), slog.Int("len", len(script)))
	return domain.DeliverySent
}
