package models

// UserRole is the single role a user holds for the lifetime of the account.
type UserRole string

const (
	RolePI             UserRole = "PI"
	RoleProjectManager UserRole = "PROJECT_MANAGER"
	RoleAllocator      UserRole = "ALLOCATOR"
	RoleApprover       UserRole = "APPROVER"
)

// UserRoles lists every accepted role in declaration order.
var UserRoles = []UserRole{RolePI, RoleProjectManager, RoleAllocator, RoleApprover}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	for _, role := range UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents the users table
type User struct {
	ID          uint     `gorm:"primaryKey;column:id" json:"id"`
	Name        string   `gorm:"column:name;not null" json:"name"`
	Email       string   `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Affiliation *string  `gorm:"column:affiliation" json:"affiliation"`
	Role        UserRole `gorm:"column:role;type:varchar(32);not null" json:"role"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
