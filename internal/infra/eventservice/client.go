// Package eventservice provides the HTTP client for the external event service.
package eventservice

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"accounts/config"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

const defaultTimeout = 10 * time.Second

// client notifies the event service over its REST API.
type client struct {
	rest    *resty.Client
	enabled bool
	logger  *slog.Logger
}

// NewClient is the constructor for the event service client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.EventNotifier {
	esCfg := cfg.EventService
	if esCfg == nil {
		esCfg = &config.EventServiceConfig{}
	}

	timeout := esCfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	rest := resty.New().
		SetBaseURL(esCfg.BaseURL).
		SetTimeout(timeout)

	return &client{
		rest:    rest,
		enabled: esCfg.Enabled,
		logger:  logger,
	}
}

// UserLeaving removes the account from all events it hosts or attends.
func (c *client) UserLeaving(ctx context.Context, userID, token string) error {
	if !c.enabled {
		c.logger.Debug("Event service disabled, skipping leave notification", slog.String("userID", userID))

		return nil
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"userID": userID,
			"token":  token,
		}).
		SetQueryParam("account_id", userID).
		Put("/leave/{userID}/{token}")
	if err != nil {
		return errors.Wrap(err, "failed to call event service")
	}

	if resp.IsError() {
		return errors.Errorf("event service leave returned status %d", resp.StatusCode())
	}

	return nil
}
