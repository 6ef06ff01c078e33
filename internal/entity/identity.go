package entity

type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleSupervisor Role = "SUPERVISOR"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleSupervisor
}

type Identity struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Avatar       *string `json:"avatar,omitempty"`
	SupervisorID *string `json:"supervisorId,omitempty"`
}

func (i Identity) IsSupervisor() bool {
	return i.Role == RoleSupervisor
}

// Supervises reports whether other reports directly to i.
func (i Identity) Supervises(other Identity) bool {
	return i.IsSupervisor() && other.SupervisorID != nil && *other.SupervisorID == i.ID
}

// Credential pairs an identity with its bcrypt password hash.
type Credential struct {
	Identity     Identity
	PasswordHash []byte
}

// Team is the directory view of a viewer: their supervisor, if any, and the people in the same team.
type Team struct {
	Supervisor *Identity  `json:"supervisor,omitempty"`
	Members    []Identity `json:"members"`
}
