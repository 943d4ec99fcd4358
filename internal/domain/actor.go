package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Actor identifies who performs an operation. It is passed explicitly to every
// service call instead of being read from request state.
type Actor struct {
	UserID int
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanAccess(ownerID int) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
