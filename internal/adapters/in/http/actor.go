package http

import (
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Authentication is out of scope: an upstream gateway verifies the caller
// and forwards identity in these headers.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

type actor struct {
	ID   kernel.UUID
	Role kernel.Role
}

// actorFrom extracts the acting user from the identity headers.
func actorFrom(ctx echo.Context) (actor, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return actor{}, errs.NewValueIsRequiredError(HeaderActorID + " header")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorID+" header", err)
	}

	rawRole := ctx.Request().Header.Get(HeaderActorRole)
	if rawRole == "" {
		return actor{}, errs.NewValueIsRequiredError(HeaderActorRole + " header")
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return actor{}, err
	}

	return actor{ID: id, Role: role}, nil
}
