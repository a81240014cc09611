package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nomadnav/travel-api/internal/api/middleware"
	"github.com/nomadnav/travel-api/internal/core/domain"
)

// actorFromContext extracts the actor injected by the Auth middleware.
// Returns nil on routes where the middleware did not run, which the core
// treats as an anonymous request.
func actorFromContext(c echo.Context) *domain.Actor {
	actor, _ := c.Get(middleware.ActorKey).(*domain.Actor)
	return actor
}
