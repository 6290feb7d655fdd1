package user

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var AllRoles = []Role{
	RoleUser,
	RoleAdmin,
}

func (r Role) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
