package constants

// Role es el conjunto cerrado de roles del sistema. El token solo puede
// transportar uno de estos valores; cualquier otro se rechaza en el middleware.
type Role string

const (
	RoleDocente     Role = "docente"
	RoleAdmin       Role = "admin"
	RoleRector      Role = "rector"
	RoleCoordinador Role = "coordinador"
)

var allRoles = map[Role]struct{}{
	RoleDocente:     {},
	RoleAdmin:       {},
	RoleRector:      {},
	RoleCoordinador: {},
}

func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

func (r Role) String() string { return string(r) }
