package api

import (
	"context"
	"fmt"

	"golang-shop-client/internal/models"
)

// UserClient wraps /user/me and the admin-only /admin/users endpoints.
type UserClient struct {
	client *Client
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

func (u *UserClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := u.client.get(ctx, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserClient) UpdateMe(ctx context.Context, req *models.UserUpdateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var user models.User
	if err := u.client.put(ctx, "/user/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserClient) AdminList(ctx context.Context, page PageRequest) (*models.Page[models.User], error) {
	var result models.Page[models.User]
	if err := u.client.get(ctx, "/admin/users", page.query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *UserClient) AdminGet(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := u.client.get(ctx, fmt.Sprintf("/admin/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserClient) AdminUpdate(ctx context.Context, id int64, req *models.AdminUserUpdateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var user models.User
	if err := u.client.put(ctx, fmt.Sprintf("/admin/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Deactivate soft-deletes a user account.
func (u *UserClient) Deactivate(ctx context.Context, id int64) error {
	return u.client.delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}
