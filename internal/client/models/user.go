package models

// Role is the capability level of a user account.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// CanMutateRecords reports whether the role may create, update or delete
// contacts and trigger category syncs. Any role value outside the known set
// (e.g. corrupted persisted state) behaves as viewer.
func (r Role) CanMutateRecords() bool {
	return r == RoleEditor || r == RoleAdmin
}

// CanManageSystem reports whether the role may manage accounts, categories
// and the activity log. Unknown role values behave as viewer.
func (r Role) CanManageSystem() bool {
	return r == RoleAdmin
}

// User is a directory account.
//
// Usernames are compared case-insensitively after trimming; passwords are
// compared exactly after trimming. The remote store keeps credentials in
// plain text, so the client never hashes them.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Reserved administrator account. It always exists, wins any username
// collision with remote data and can never be deleted, so the system stays
// recoverable even when the remote store is unreachable or empty.
const ReservedAdminID = "admin-root"

// ReservedAdmin returns the built-in administrator account.
func ReservedAdmin() User {
	return User{
		ID:       ReservedAdminID,
		Username: "admin",
		Password: "admin1234",
		Name:     "ผู้ดูแลระบบ",
		Role:     RoleAdmin,
	}
}
