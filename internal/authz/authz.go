// Package authz is the pure authorization engine for the marketplace.
// Every mutating operation asks Authorize before touching the database;
// a non-nil result is the deny reason and callers fail fast on it.
package authz

import (
	"errors"

	"github.com/google/uuid"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleArtist  Role = "artist"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored role string onto the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleVisitor, RoleArtist, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Actor is the authenticated identity performing an operation. A nil
// *Actor means the request is unauthenticated.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Action enumerates every guarded operation.
type Action int

const (
	ActionCreateArtwork Action = iota
	ActionUpdateArtwork
	ActionDeleteArtwork
	ActionFeatureArtwork
	ActionPurchaseArtwork
	ActionReadOrder
	ActionListAllOrders
	ActionSetOrderStatus
	ActionViewArtistSales
	ActionViewGlobalReport
	ActionListUsers
	ActionUpdateUserRole
	ActionDeleteUser
)

// Resource carries the identities a rule may need. Only the fields
// relevant to the action are consulted.
type Resource struct {
	// ArtistID is the owning artist of the artwork being mutated or purchased.
	ArtistID uuid.UUID
	// BuyerID is the buyer of the order being read.
	BuyerID uuid.UUID
	// TargetUserID is the user targeted by an admin role-change or deletion.
	TargetUserID uuid.UUID
}

// Deny reasons.
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInsufficientRole = errors.New("insufficient role for this action")
	ErrNotOwner         = errors.New("not the owner of this resource")
	ErrSelfModification = errors.New("admins cannot modify their own account")
	ErrSelfPurchase     = errors.New("you cannot purchase your own artwork")
)

// Authorize decides whether actor may perform action on res. It returns
// nil to allow, or one of the deny reasons above. It is side-effect free.
func Authorize(actor *Actor, action Action, res Resource) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	switch action {
	case ActionCreateArtwork:
		if actor.Role == RoleArtist || actor.Role == RoleAdmin {
			return nil
		}
		return ErrInsufficientRole

	case ActionUpdateArtwork, ActionDeleteArtwork:
		switch actor.Role {
		case RoleAdmin:
			return nil
		case RoleArtist:
			if res.ArtistID == actor.ID {
				return nil
			}
			return ErrNotOwner
		case RoleVisitor:
			return ErrInsufficientRole
		}
		return ErrInsufficientRole

	case ActionFeatureArtwork:
		if actor.Role == RoleAdmin {
			return nil
		}
		return ErrInsufficientRole

	case ActionPurchaseArtwork:
		// Any authenticated role may buy, but never their own artwork.
		if res.ArtistID == actor.ID {
			return ErrSelfPurchase
		}
		return nil

	case ActionReadOrder:
		if actor.Role == RoleAdmin || res.BuyerID == actor.ID {
			return nil
		}
		return ErrNotOwner

	case ActionViewArtistSales:
		// Scoping to the artist's own artworks is done by the caller.
		if actor.Role == RoleArtist {
			return nil
		}
		return ErrInsufficientRole

	case ActionListAllOrders, ActionSetOrderStatus, ActionViewGlobalReport, ActionListUsers:
		if actor.Role == RoleAdmin {
			return nil
		}
		return ErrInsufficientRole

	case ActionUpdateUserRole, ActionDeleteUser:
		if actor.Role != RoleAdmin {
			return ErrInsufficientRole
		}
		if res.TargetUserID == actor.ID {
			return ErrSelfModification
		}
		return nil
	}

	return ErrInsufficientRole
}
