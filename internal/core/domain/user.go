package domain

// Role is the capability level attached to a user account.
// The wire format is the integer code, not the name.
type Role int

const (
	RoleAdmin  Role = 1
	RoleMember Role = 2
)

// Valid reports whether r belongs to the closed set of roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}

// User models an account in the booking system.
type User struct {
	ID           int64  `json:"user_id" bson:"user_id"`
	FirstName    string `json:"first_name" bson:"first_name"`
	LastName     string `json:"last_name" bson:"last_name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         Role   `json:"role" bson:"role"`
}
