package service

import "taskmanager/internal/models"

// Access is the outcome of an ownership decision.
type Access int

const (
	AccessDenied Access = iota
	AccessSelf
	AccessAdmin
)

func (a Access) String() string {
	switch a {
	case AccessSelf:
		return "self"
	case AccessAdmin:
		return "admin"
	default:
		return "denied"
	}
}

func (a Access) Allowed() bool { return a != AccessDenied }

// UserAccess decides whether caller may read or modify the account userID.
// Account holders service themselves; admins service anyone.
func UserAccess(caller *models.User, userID int) Access {
	switch {
	case caller == nil:
		return AccessDenied
	case caller.ID == userID:
		return AccessSelf
	case caller.IsAdmin:
		return AccessAdmin
	default:
		return AccessDenied
	}
}

// OwnerAccess decides access to a project, task or label owned by ownerID.
// Only the owner is allowed; the admin flag grants nothing here.
func OwnerAccess(caller *models.User, ownerID int) Access {
	if caller != nil && caller.ID == ownerID {
		return AccessSelf
	}
	return AccessDenied
}

func authorize(a Access) error {
	if !a.Allowed() {
		return ErrForbidden
	}
	return nil
}
