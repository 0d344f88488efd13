package authz

import (
	"context"
	"errors"
	"fmt"

	"healthrecords-service/internal/app/models"
)

var (
	ErrTokenInvalid  = errors.New("token invalid or expired")
	ErrActorNotFound = errors.New("actor not found")
	ErrActorInactive = errors.New("actor inactive")
)

// TokenDecoder extracts the subject and role claims from a signed
// token string. Implemented by the shared token manager.
type TokenDecoder interface {
	Decode(tokenString string) (subject, role string, err error)
}

// ActorStore is the slice of the user repository the resolver needs.
type ActorStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Resolver turns a bearer token into an Actor. Every failure maps to
// one of the sentinel errors above so callers can branch with
// errors.Is without inspecting messages.
type Resolver struct {
	decoder TokenDecoder
	store   ActorStore
}

func NewResolver(decoder TokenDecoder, store ActorStore) *Resolver {
	return &Resolver{decoder: decoder, store: store}
}

// Resolve decodes the token and loads the user behind its subject.
// The role claim in the token is informational only; the stored role
// is authoritative, so a stale token cannot widen access after a role
// change.
func (r *Resolver) Resolve(ctx context.Context, tokenString string) (*Actor, error) {
	subject, _, err := r.decoder.Decode(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	user, err := r.store.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, subject)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: %s", ErrActorInactive, subject)
	}

	return NewActorFromUser(user), nil
}
