package domain

import "time"

// Role controls which administrative actions a user may perform.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleGuest   Role = "guest"
)

// ValidRole reports whether r is one of the canonical roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember, RoleGuest:
		return true
	}
	return false
}

// MembershipStatus classifies how a user relates to the company.
type MembershipStatus string

const (
	MemberStaff      MembershipStatus = "staff"      // company employees
	MemberContractor MembershipStatus = "contractor" // external contractors
	MemberSponsored  MembershipStatus = "sponsored"  // guests admitted via sponsorship
)

// ValidMembershipStatus reports whether s is canonical.
func ValidMembershipStatus(s MembershipStatus) bool {
	switch s {
	case MemberStaff, MemberContractor, MemberSponsored:
		return true
	}
	return false
}

// User is a club member account.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	Membership   MembershipStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManage reports whether the user may perform manager-level actions
// (waitlist promotion, sponsorship validation, club-wide listings).
func (u *User) CanManage() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// IsAdmin reports whether the user may administer accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
