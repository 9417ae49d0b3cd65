package http

import (
	"net/http"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Headers set by the identity provider in front of the service.
const (
	ActorIDHeader   = "X-Actor-ID"
	ActorRoleHeader = "X-Actor-Role"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the calling actor from the trusted identity
// headers. Requests without a valid actor are rejected with 401.
func (s *Server) ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromHeaders(c.Request().Header)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid actor headers: " + err.Error(),
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromHeaders(h http.Header) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(h.Get(ActorIDHeader))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.ParseRole(h.Get(ActorRoleHeader))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// actorOf returns the actor stored by ActorMiddleware.
func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorContextKey).(kernel.Actor)
	return actor
}
