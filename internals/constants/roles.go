package constants

// Portal roles. Matches the users.user_role enum in migrations.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)
