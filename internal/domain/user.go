package domain

type UserRole string

const (
	RoleOwner     UserRole = "owner"
	RoleCompanion UserRole = "companion"
)

func (r UserRole) Valid() bool {
	return r == RoleOwner || r == RoleCompanion
}

// User is the logged-in visitor. The password is kept as typed; nothing verifies it.
type User struct {
	ID       string   `json:"id" gorm:"type:varchar(64);primaryKey"`
	Username string   `json:"username" gorm:"type:text;not null;uniqueIndex"`
	Password string   `json:"password" gorm:"type:text;not null"`
	Role     UserRole `json:"role" gorm:"type:text;not null"`
}
