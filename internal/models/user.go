package models

// Role is the job title stored on a user. It is informational only; nothing
// checks it.
type Role string

const (
	RoleManager     Role = "gerente"
	RoleElectrician Role = "eletricista"
	RoleEngineer    Role = "engenheiro"
	RoleStaff       Role = "funcionario"
)

// DefaultRole is applied by the schema when a user is inserted without one.
const DefaultRole = RoleStaff

// Known reports whether r is one of the roles the business uses.
func (r Role) Known() bool {
	switch r {
	case RoleManager, RoleElectrician, RoleEngineer, RoleStaff:
		return true
	}
	return false
}

// User is an operator account. Password is kept in plain text.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     Role
}
