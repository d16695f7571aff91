package domain

// Role tags a marketplace user as a buyer or a seller.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

// CanSell is the single capability check for seller-only surfaces.
func (r Role) CanSell() bool {
	return r == RoleSeller
}

type User struct {
	ID          int64
	Username    string
	Email       string
	DisplayName string
	Role        Role
	Country     string
	Phone       string
}
