package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"-"`
}

// AuthenticatedUser is what a successful login hands back to the caller:
// the user record (password stripped), a signed session token and the
// role-specific landing route.
type AuthenticatedUser struct {
	User     User   `json:"user"`
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}
