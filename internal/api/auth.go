package api

import (
	"context"

	"golang-shop-client/internal/models"
)

// AuthClient wraps the /auth endpoints.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

func (a *AuthClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := a.client.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. It does not authenticate the caller; a
// successful registration is followed by an explicit login.
func (a *AuthClient) Register(ctx context.Context, req *models.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.client.post(ctx, "/auth/register", req, nil)
}
