package middleware

import (
	"context"
	"net/http"

	"github.com/gitsunil577/SafeHer-Backend/internal/service"

	"github.com/google/uuid"
)

type ctxKey string

const actorKey ctxKey = "actor"

// Identity extracts the caller asserted by the API gateway from trusted
// headers. The admin role additionally requires the service API key, so a
// forged role header alone never grants admin.
func Identity(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get("X-User-ID"))
			if err != nil {
				http.Error(w, "missing or invalid X-User-ID", http.StatusUnauthorized)
				return
			}

			role := r.Header.Get("X-User-Role")
			if role == "admin" && r.Header.Get("X-API-Key") != apiKey {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			actor := service.Actor{
				ID:   id,
				Name: r.Header.Get("X-User-Name"),
				Role: role,
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ActorFromContext(ctx context.Context) (service.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(service.Actor)
	return actor, ok
}
