package apiclient

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an access token. Credentials are validated
// locally first; a validation failure returns validator.ValidationErrors
// without touching the network.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var result LoginResult
	if err := creds.Validate(); err != nil {
		return result, err
	}

	if err := c.do(ctx, http.MethodPost, "/users/login", "", creds, &result); err != nil {
		return LoginResult{}, err
	}

	// A profile embedded in the login response must be usable or dropped;
	// the session manager resolves the profile separately either way.
	if result.User != nil {
		if err := result.User.validate(); err != nil {
			result.User = nil
		}
	}

	return result, nil
}

// Register creates a new account. The registration form is validated locally
// first, including the password confirmation match.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/users/register", "", reg, nil)
}

// Me fetches the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	var user User
	if token == "" {
		return user, ErrMissingToken
	}

	err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &user)
	return user, err
}
