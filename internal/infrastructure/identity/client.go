package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bioacoustic-monitor/internal/logger"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Invitation is what the auth provider needs to e-mail a magic link.
type Invitation struct {
	Email          string
	FullName       string
	OrganizationID uuid.UUID
	Role           string
	RedirectTo     string
}

// InvitedUser is the account the provider created (or already had).
type InvitedUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type inviteRequest struct {
	Email string                 `json:"email"`
	Data  map[string]interface{} `json:"data"`
}

type providerError struct {
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Error   string `json:"error_description"`
}

func (e *providerError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Client talks to the hosted auth provider's admin API with the service key.
// Invites are never retried.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", serviceKey).
		SetAuthToken(serviceKey)

	return &Client{http: client}
}

func (c *Client) Invite(ctx context.Context, inv Invitation) (*InvitedUser, error) {
	body := inviteRequest{
		Email: inv.Email,
		Data: map[string]interface{}{
			"full_name":       inv.FullName,
			"organization_id": inv.OrganizationID.String(),
			"role":            inv.Role,
		},
	}

	var user InvitedUser
	var failure providerError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("redirect_to", inv.RedirectTo).
		SetBody(body).
		SetResult(&user).
		SetError(&failure).
		Post("/auth/v1/invite")
	if err != nil {
		logger.Error("Auth provider invite call failed", zap.Error(err), zap.String("email", inv.Email))
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}

	if resp.IsError() {
		msg := failure.text()
		if msg == "" {
			msg = resp.Status()
		}
		logger.Warn("Auth provider rejected invite",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("email", inv.Email),
			zap.String("msg", msg),
		)
		return nil, fmt.Errorf("%s", msg)
	}

	if user.ID == uuid.Nil {
		return nil, fmt.Errorf("auth provider returned no user id")
	}

	logger.Info("Invitation sent", zap.String("email", inv.Email), zap.String("user_id", user.ID.String()))
	return &user, nil
}

// Unconfigured stands in when no provider URL or service key is set.
type Unconfigured struct{}

func (Unconfigured) Invite(context.Context, Invitation) (*InvitedUser, error) {
	return nil, errors.New("identity provider is not configured")
}
