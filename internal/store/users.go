package store

import (
	"context"
	"sync"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
)

// Users is the user slice: the caller's own profile plus the admin user
// listing.
type Users struct {
	ListState[models.User]

	client *api.UserClient

	meMu sync.Mutex
	me   *models.User
}

func NewUsers(client *api.UserClient) *Users {
	return &Users{client: client}
}

// FetchMe loads the caller's profile.
func (u *Users) FetchMe(ctx context.Context) error {
	u.begin()
	user, err := u.client.Me(ctx)
	if err != nil {
		u.reject(err, "Failed to fetch profile")
		return err
	}
	u.meMu.Lock()
	u.me = user
	u.meMu.Unlock()
	u.settle()
	return nil
}

// UpdateMe updates the caller's profile in place.
func (u *Users) UpdateMe(ctx context.Context, req *models.UserUpdateRequest) (*models.User, error) {
	u.begin()
	user, err := u.client.UpdateMe(ctx, req)
	if err != nil {
		u.reject(err, "Failed to update profile")
		return nil, err
	}
	u.meMu.Lock()
	u.me = user
	u.meMu.Unlock()
	u.settle()
	return user, nil
}

// FetchAdminList loads one page of all users.
func (u *Users) FetchAdminList(ctx context.Context, page api.PageRequest) error {
	u.begin()
	result, err := u.client.AdminList(ctx, page)
	if err != nil {
		u.reject(err, "Failed to fetch users")
		return err
	}
	u.fulfill(result)
	return nil
}

// AdminUpdate applies an admin-side user change to the held list without
// a refetch.
func (u *Users) AdminUpdate(ctx context.Context, id int64, req *models.AdminUserUpdateRequest) (*models.User, error) {
	u.begin()
	user, err := u.client.AdminUpdate(ctx, id, req)
	if err != nil {
		u.reject(err, "Failed to update user")
		return nil, err
	}
	u.replace(func(item models.User) bool { return item.ID == id }, *user)
	return user, nil
}

// Deactivate soft-deletes a user and marks the held entry inactive. The
// backend keeps deactivated users in the listing, so the entry is patched
// rather than removed.
func (u *Users) Deactivate(ctx context.Context, id int64) error {
	u.begin()
	if err := u.client.Deactivate(ctx, id); err != nil {
		u.reject(err, "Failed to deactivate user")
		return err
	}
	u.mu.Lock()
	for i := range u.content {
		if u.content[i].ID == id {
			u.content[i].IsActive = false
		}
	}
	u.status = StatusFulfilled
	u.err = ""
	u.mu.Unlock()
	return nil
}

// Me returns the loaded profile, or nil.
func (u *Users) Me() *models.User {
	u.meMu.Lock()
	defer u.meMu.Unlock()
	if u.me == nil {
		return nil
	}
	user := *u.me
	return &user
}
