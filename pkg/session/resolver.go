package session

import "context"

// ProfileResolver resolves the profile behind a bearer token, typically by
// calling the remote API's /users/me endpoint.
type ProfileResolver interface {
	ResolveProfile(ctx context.Context, token string) (User, error)
}

// ResolverFunc adapts a plain function to the ProfileResolver interface.
type ResolverFunc func(ctx context.Context, token string) (User, error)

func (f ResolverFunc) ResolveProfile(ctx context.Context, token string) (User, error) {
	return f(ctx, token)
}
