// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "atrium/internal/domain/entity"

// Permission checks are the single source of truth for authorization. Every
// mutating use case must pass through one of them; read paths do not.
// All checks are total: a nil user is simply denied.

// CanManageBuildings reports whether the user may mutate buildings, floors
// and rooms.
func CanManageBuildings(user *entity.User) bool {
	return hasEditorialRole(user)
}

// CanManageEquipment reports whether the user may mutate equipment,
// categories, reservations and maintenance records.
func CanManageEquipment(user *entity.User) bool {
	return hasEditorialRole(user)
}

// CanManageUsers reports whether the user may list other accounts and change
// their roles.
func CanManageUsers(user *entity.User) bool {
	return user != nil && user.Role == entity.RoleAdmin
}

func hasEditorialRole(user *entity.User) bool {
	if user == nil {
		return false
	}

	switch user.Role {
	case entity.RoleAdmin, entity.RoleEditor:
		return true
	default:
		return false
	}
}
