// Package sessions owns the token -> user id mapping that proves a
// caller is authenticated. A session's presence in the store is the
// sole proof of authentication; expiry is enforced natively by the
// backing store, so no sweep process exists.
package sessions

import "context"

// Repository issues, resolves and revokes opaque session tokens.
type Repository interface {
	// Create generates a fresh random token mapped to userID with the
	// store's fixed TTL and returns the token.
	Create(ctx context.Context, userID string) (string, error)

	// Resolve returns the user id a token authorizes. It is a pure
	// lookup: it never extends the TTL. A missing or expired token
	// yields common.ErrorSessionNotFound.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke deletes the mapping, reporting common.ErrorSessionNotFound
	// when the token was already absent. Callers wanting idempotent
	// logout treat that as non-fatal.
	Revoke(ctx context.Context, token string) error
}
