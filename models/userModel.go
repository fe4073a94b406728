package models

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// ValidRole reports whether role is one of the two allowed values.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller
}

type User struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;size:64"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role" gorm:"size:16"`
}

type CreateUserInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpdateUserInput carries a partial update; empty fields are left untouched.
type UpdateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
