package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinex/internal/domain"
)

type sessionKey string

// The authentication service writes these keys into the shared session store on login.
const (
	SessionKeyUserId = sessionKey("userID")
	SessionKeyRole   = sessionKey("role")
)

func (s sessionKey) String() string {
	return string(s)
}

const actorContextKey = contextKey("actor")

func contextSetActor(r *http.Request, actor domain.Actor) *http.Request {
	ctx := context.WithValue(r.Context(), actorContextKey, actor)
	return r.WithContext(ctx)
}

func contextGetActor(r *http.Request) (domain.Actor, bool) {
	actor, ok := r.Context().Value(actorContextKey).(domain.Actor)
	return actor, ok
}

func (app *Application) mustGetActor(r *http.Request) domain.Actor {
	actor, ok := contextGetActor(r)
	if !ok {
		panic("missing actor from context")
	}

	return actor
}

// seatHolder identifies who places a seat hold. Browser clients hold seats per session,
// token-authenticated callers per user.
func (app *Application) seatHolder(r *http.Request) string {
	if app.sessionManager != nil {
		if token := app.sessionManager.Token(r.Context()); token != "" {
			return "session:" + token
		}
	}

	return fmt.Sprintf("user:%d", app.mustGetActor(r).UserID)
}
