// Package permissions holds the platform's permission predicates. Each
// predicate answers yes/no for an already-loaded user and entity; loading
// and error mapping stay in the services.
package permissions

import (
	"github.com/kerem/clubsphere/internal/app/models"
)

// officerRoles are the club member roles that carry announcement authority
var officerRoles = map[models.MemberRole]bool{
	models.MemberRolePresident:     true,
	models.MemberRoleVicePresident: true,
	models.MemberRoleOfficer:       true,
	models.MemberRoleSecretary:     true,
}

// IsOfficer reports whether a member role carries announcement authority
func IsOfficer(role models.MemberRole) bool {
	return officerRoles[role]
}

// CanCreateAnnouncement reports whether a user may post announcements for
// a club: platform administrators, the club president, and members holding
// an officer role.
func CanCreateAnnouncement(user *models.User, club *models.Club) bool {
	if user.Role == models.RoleAdministrator {
		return true
	}
	if club.PresidentID == user.ID {
		return true
	}
	if m := club.MemberByUserID(user.ID); m != nil && IsOfficer(m.MemberRole) {
		return true
	}
	return false
}

// CanModerateAnnouncement reports whether a user may edit or delete an
// announcement: its author, or anyone who could have created it.
func CanModerateAnnouncement(user *models.User, announcement *models.Announcement, club *models.Club) bool {
	if announcement.AuthorID == user.ID {
		return true
	}
	return CanCreateAnnouncement(user, club)
}

// CanReviewClubRequest reports whether a user may approve or reject
// club-creation requests. Review is administrator-only; club presidents
// and officers hold no authority here.
func CanReviewClubRequest(user *models.User) bool {
	return user.Role == models.RoleAdministrator
}

// CanManageClub reports whether a user may edit a club's profile or manage
// its membership roles: administrators and the president.
func CanManageClub(user *models.User, club *models.Club) bool {
	return user.Role == models.RoleAdministrator || club.PresidentID == user.ID
}

// CanManageEvent reports whether a user may create, edit, or cancel events
// for a club. Event management follows club management.
func CanManageEvent(user *models.User, club *models.Club) bool {
	return CanManageClub(user, club)
}

// CanReviewApplication reports whether a user may accept or reject an
// application to a recruitment post: only the post's author.
func CanReviewApplication(user *models.User, post *models.RecruitmentPost) bool {
	return post.PosterID == user.ID
}
