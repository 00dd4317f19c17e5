// Package gate contains the advisory action gate: pure decision functions
// answering "can this user join/leave/register/unregister/apply right now".
// Decisions are advisory only — they exist to reject obviously invalid
// requests early and to drive UI affordances. The services re-check every
// condition against the database before mutating; a passing gate decision
// is never proof of permission.
package gate

import (
	"time"

	"github.com/kerem/clubsphere/internal/app/models"
)

// Reason is a stable machine-readable code explaining a denial
type Reason string

const (
	ReasonFull                Reason = "full"
	ReasonUniversityExclusive Reason = "university-exclusive"
	ReasonRegistrationClosed  Reason = "registration-closed"
	ReasonEventEnded          Reason = "event-ended"
	ReasonAlreadyMember       Reason = "already-member"
	ReasonDifferentUniversity Reason = "different-university"
	ReasonPrivateClub         Reason = "private-club"
	ReasonNotMember           Reason = "not-member"
	ReasonNotRegistered       Reason = "not-registered"
	ReasonPresident           Reason = "president-cannot-leave"
	ReasonOwnPost             Reason = "own-post"
	ReasonAlreadyApplied      Reason = "already-applied"
)

// Decision is the outcome of a gate check
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanJoinClub decides whether a user may join a club: denied when the user
// is already a member, when the club belongs to a different university, or
// when the club is invitation only.
func CanJoinClub(club *models.Club, user *models.User) Decision {
	if club.MemberByUserID(user.ID) != nil {
		return deny(ReasonAlreadyMember)
	}
	if club.UniversityID != user.UniversityID {
		return deny(ReasonDifferentUniversity)
	}
	if club.IsPrivate {
		return deny(ReasonPrivateClub)
	}
	return allow()
}

// CanLeaveClub decides whether a user may leave a club. Leaving is always
// permitted for a member, except for the president, who must hand over the
// club first.
func CanLeaveClub(club *models.Club, user *models.User) Decision {
	if club.MemberByUserID(user.ID) == nil {
		return deny(ReasonNotMember)
	}
	if club.PresidentID == user.ID {
		return deny(ReasonPresident)
	}
	return allow()
}

// CanRegisterForEvent decides whether a user may register for an event at
// the given time. A user who is already registered may always flip to
// unregister, unless the event has ended. For everyone else the
// disqualifying conditions are evaluated in order: capacity, access scope,
// explicit deadline, event end, and implicit close at start when no
// deadline is set.
func CanRegisterForEvent(event *models.Event, user *models.User, now time.Time) Decision {
	if event.AttendeeByUserID(user.ID) != nil {
		if now.After(event.EndDate) {
			return deny(ReasonEventEnded)
		}
		return allow()
	}

	if event.MaxAttendees != nil && len(event.Attendees) >= *event.MaxAttendees {
		return deny(ReasonFull)
	}

	if event.AccessType == models.AccessUniversityExclusive {
		if event.Club == nil || event.Club.UniversityID != user.UniversityID {
			return deny(ReasonUniversityExclusive)
		}
	}

	if event.RegistrationDeadline != nil && now.After(*event.RegistrationDeadline) {
		return deny(ReasonRegistrationClosed)
	}

	if now.After(event.EndDate) {
		return deny(ReasonEventEnded)
	}

	if event.RegistrationDeadline == nil && !now.Before(event.StartDate) {
		return deny(ReasonRegistrationClosed)
	}

	return allow()
}

// CanUnregisterFromEvent decides whether a user may unregister: permitted
// whenever the user is currently registered and the event has not ended.
func CanUnregisterFromEvent(event *models.Event, user *models.User, now time.Time) Decision {
	if event.AttendeeByUserID(user.ID) == nil {
		return deny(ReasonNotRegistered)
	}
	if now.After(event.EndDate) {
		return deny(ReasonEventEnded)
	}
	return allow()
}

// CanApplyToPost decides whether a user may apply to a recruitment post:
// denied for the post's own author and for duplicate applications.
func CanApplyToPost(post *models.RecruitmentPost, user *models.User) Decision {
	if post.PosterID == user.ID {
		return deny(ReasonOwnPost)
	}
	for _, app := range post.Applications {
		if app.ApplicantID == user.ID {
			return deny(ReasonAlreadyApplied)
		}
	}
	return allow()
}
