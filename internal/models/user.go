package models

// Dashboard roles.
const (
	RoleAdmin = "ADMIN"
	RoleKurir = "KURIR"
)

// User is a dashboard login. Couriers carry a reference to their courier
// record; admins do not.
type User struct {
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	Name         string  `json:"name"`
	KurirID      *string `json:"kurir_id,omitempty"`
}

// LoginRequest is the body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token and the logged-in user.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}
