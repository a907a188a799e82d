package goConsole

import (
	"context"
	"fmt"
)

// User is a managed console account as the backend reports it.
//
// User instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	Enable   bool   `json:"enable"`
}

// CreateUserInput defines a public type used by goConsole APIs.
//
// CreateUserInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	Enable   bool   `json:"enable"`
}

// UpdateUserInput carries the mutable account fields. An empty Password
// leaves the current credential unchanged.
//
// UpdateUserInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UpdateUserInput struct {
	Name     string `json:"name"`
	Enable   bool   `json:"enable"`
	Password string `json:"password,omitempty"`
}

type userListResponse struct {
	Users []User `json:"users"`
}

// ListUsers fetches every managed account.
//
// ListUsers may return an error when input validation, dependency calls, or security checks fail.
// ListUsers does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var out userListResponse
	if err := c.client.GetJSON(ctx, "/users/all/", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// ListUserModes fetches the mode names the backend accepts for new accounts.
//
// ListUserModes may return an error when input validation, dependency calls, or security checks fail.
// ListUserModes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListUserModes(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var modes []string
	if err := c.client.GetJSON(ctx, "/users_mode/", nil, &modes); err != nil {
		return nil, err
	}
	return modes, nil
}

// ListUsernames fetches the plain username list. Report filters and the model
// assignment dialog use it.
//
// ListUsernames may return an error when input validation, dependency calls, or security checks fail.
// ListUsernames does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListUsernames(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var usernames []string
	if err := c.client.GetJSON(ctx, "/users/", nil, &usernames); err != nil {
		return nil, err
	}
	return usernames, nil
}

// CreateUser describes the createuser operation and its observable behavior.
//
// CreateUser may return an error when input validation, dependency calls, or security checks fail.
// CreateUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) CreateUser(ctx context.Context, input CreateUserInput) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	return c.client.PostJSON(ctx, "/users/", input, nil)
}

// UpdateUser describes the updateuser operation and its observable behavior.
//
// UpdateUser may return an error when input validation, dependency calls, or security checks fail.
// UpdateUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) UpdateUser(ctx context.Context, userID int, input UpdateUserInput) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	return c.client.PutJSON(ctx, fmt.Sprintf("/users/%d", userID), input, nil)
}

// SetUserStatus enables or disables an account without touching its other
// fields.
//
// SetUserStatus may return an error when input validation, dependency calls, or security checks fail.
// SetUserStatus does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) SetUserStatus(ctx context.Context, userID int, enable bool) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	body := map[string]bool{"enable": enable}
	return c.client.PutJSON(ctx, fmt.Sprintf("/users/%d", userID), body, nil)
}
