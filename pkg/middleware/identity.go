package middleware

import (
	"context"
	"net/http"

	"venuehub/pkg/model"
)

const ActorKey contextKey = "actor"

// GuestActor is attached when a request carries no identity. Guests can
// browse the catalog but own nothing and hold no privileges.
var GuestActor = model.Actor{Username: "guest", Role: model.RoleStudent}

// ActorResolver answers the identity for a request. The session store
// implements it; tests substitute a fixed actor.
type ActorResolver interface {
	Resolve(r *http.Request) (model.Actor, bool)
}

// Identity attaches the resolved actor to the request context. Identity
// is a read-only input to the booking core: authorization decisions
// happen in the service layer, never here.
func Identity(resolver ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := resolver.Resolve(r)
			if !ok {
				actor = GuestActor
			}

			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the request actor, falling back to guest.
func ActorFromContext(ctx context.Context) model.Actor {
	if actor, ok := ctx.Value(ActorKey).(model.Actor); ok {
		return actor
	}
	return GuestActor
}
