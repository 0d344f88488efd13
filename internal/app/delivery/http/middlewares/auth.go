package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/utils"
)

// Authenticate verifies the bearer token, resolves the actor behind it
// and stores the actor on the request context. Downstream handlers can
// assume the actor exists and is active.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		actor, err := m.Resolver.Resolve(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, authz.ErrTokenInvalid):
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			case errors.Is(err, authz.ErrActorNotFound):
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrUserNotExist(err))
			case errors.Is(err, authz.ErrActorInactive):
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrUserDeactivated(err))
			case err == context.DeadlineExceeded:
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			default:
				utils.BuildErrorResponse(m.Log, w, err)
			}
			return
		}

		reqCtx := authz.WithActor(r.Context(), actor)
		if sessionID := r.Header.Get(constvars.HeaderXSessionID); sessionID != "" {
			reqCtx = context.WithValue(reqCtx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		}
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}
