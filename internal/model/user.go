package model

type Role string

const (
	RoleAdmin        Role = "admin"
	RolePhysician    Role = "physician"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
)

// UserAccount records an operator account. Accounts are stored but never gate
// any operation; the plaintext password is hashed before it reaches this
// struct and is never kept. Usernames are not required to be unique.
type UserAccount struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"password_hash"`
	Role         Role    `json:"role"`
	LastLogin    *string `json:"last_login,omitempty"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=admin physician nurse receptionist"`
}
