package types

// Role is the capability a signer holds over a vault.
type Role uint8

const (
	RoleNone Role = iota
	RoleAuthority
	RoleKeeper
)

func (r Role) String() string {
	switch r {
	case RoleAuthority:
		return "authority"
	case RoleKeeper:
		return "keeper"
	default:
		return "none"
	}
}
