package models

// RoleType defines the platform-level user role
type RoleType string

const (
	RoleStudent       RoleType = "STUDENT"
	RoleClubAdmin     RoleType = "CLUB_ADMIN"
	RoleAdministrator RoleType = "ADMINISTRATOR"
)

// ValidRole reports whether the given role is one of the known role types
func ValidRole(role RoleType) bool {
	switch role {
	case RoleStudent, RoleClubAdmin, RoleAdministrator:
		return true
	}
	return false
}

// MemberRole defines a user's role within a club. Values are stored as
// entered by the legacy platform, so they are title-cased strings.
type MemberRole string

const (
	MemberRolePresident     MemberRole = "President"
	MemberRoleVicePresident MemberRole = "Vice President"
	MemberRoleOfficer       MemberRole = "Officer"
	MemberRoleSecretary     MemberRole = "Secretary"
	MemberRoleMember        MemberRole = "Member"
)

// AccessType defines who may register for an event
type AccessType string

const (
	AccessOpen                AccessType = "OPEN"
	AccessUniversityExclusive AccessType = "UNIVERSITY_EXCLUSIVE"
)

// RequestStatus defines the lifecycle state of a club-creation request
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// ApplicationStatus defines the state of a team-recruitment application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)
