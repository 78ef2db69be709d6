// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// actorGate resolves the acting user for a mutation and enforces the
// role checks in front of it. Every mutating use case goes through the
// gate before touching a repository.
type actorGate struct {
	users repository.UserRepository
}

// actor resolves the acting user. A zero id means the request carried no
// authenticated identity; a missing account is treated the same way since
// a deleted user's token must stop working.
func (g actorGate) actor(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("authentication required")
	}

	user, err := g.users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown account")
		}

		return nil, errors.Wrap(err, "failed to resolve acting user")
	}

	return user, nil
}

// buildingManager resolves the actor and requires the structure permission
// covering buildings, floors and rooms.
func (g actorGate) buildingManager(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	user, err := g.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !service.CanManageBuildings(user) {
		return nil, domainerrors.ErrForbidden.WrapMessage("managing buildings requires an editorial role")
	}

	return user, nil
}

// equipmentManager resolves the actor and requires the equipment permission
// covering equipment, categories and maintenance records.
func (g actorGate) equipmentManager(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	user, err := g.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !service.CanManageEquipment(user) {
		return nil, domainerrors.ErrForbidden.WrapMessage("managing equipment requires an editorial role")
	}

	return user, nil
}

// admin resolves the actor and requires the administrator role.
func (g actorGate) admin(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	user, err := g.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !service.CanManageUsers(user) {
		return nil, domainerrors.ErrForbidden.WrapMessage("administrator role required")
	}

	return user, nil
}
