package authz

import (
	"context"

	"healthrecords-service/internal/pkg/constvars"
)

// WithActor stores the resolved actor on the request context.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ACTOR_KEY, actor)
}

// ActorFromContext retrieves the actor placed by the authentication
// middleware. The second return is false for unauthenticated contexts.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(constvars.CONTEXT_ACTOR_KEY).(*Actor)
	return actor, ok
}
