package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kerem/clubsphere/internal/app/models"
)

func testUser(id, universityID int64) *models.User {
	return &models.User{ID: id, UniversityID: universityID, Role: models.RoleStudent}
}

func testClub(universityID int64) *models.Club {
	return &models.Club{ID: 1, UniversityID: universityID, PresidentID: 100}
}

func testEvent(universityID int64, start, end time.Time) *models.Event {
	return &models.Event{
		ID:         1,
		ClubID:     1,
		StartDate:  start,
		EndDate:    end,
		AccessType: models.AccessOpen,
		Club:       testClub(universityID),
	}
}

func withAttendees(event *models.Event, userIDs ...int64) *models.Event {
	for _, id := range userIDs {
		event.Attendees = append(event.Attendees, &models.EventAttendee{EventID: event.ID, UserID: id})
	}
	return event
}

func TestCanJoinClub(t *testing.T) {
	user := testUser(5, 1)

	t.Run("open same-university club", func(t *testing.T) {
		d := CanJoinClub(testClub(1), user)
		require.True(t, d.Allowed)
		require.Empty(t, d.Reason)
	})

	t.Run("already a member", func(t *testing.T) {
		club := testClub(1)
		club.Members = []*models.ClubMember{{ClubID: 1, UserID: 5, MemberRole: models.MemberRoleMember}}
		d := CanJoinClub(club, user)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonAlreadyMember, d.Reason)
	})

	t.Run("different university", func(t *testing.T) {
		d := CanJoinClub(testClub(2), user)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonDifferentUniversity, d.Reason)
	})

	t.Run("private club", func(t *testing.T) {
		club := testClub(1)
		club.IsPrivate = true
		d := CanJoinClub(club, user)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonPrivateClub, d.Reason)
	})
}

func TestCanLeaveClub(t *testing.T) {
	t.Run("regular member may leave", func(t *testing.T) {
		club := testClub(1)
		club.Members = []*models.ClubMember{{ClubID: 1, UserID: 5, MemberRole: models.MemberRoleMember}}
		d := CanLeaveClub(club, testUser(5, 1))
		require.True(t, d.Allowed)
	})

	t.Run("non-member cannot leave", func(t *testing.T) {
		d := CanLeaveClub(testClub(1), testUser(5, 1))
		require.False(t, d.Allowed)
		require.Equal(t, ReasonNotMember, d.Reason)
	})

	t.Run("president cannot leave", func(t *testing.T) {
		club := testClub(1)
		club.Members = []*models.ClubMember{{ClubID: 1, UserID: 100, MemberRole: models.MemberRolePresident}}
		d := CanLeaveClub(club, testUser(100, 1))
		require.False(t, d.Allowed)
		require.Equal(t, ReasonPresident, d.Reason)
	})
}

func TestCanRegisterForEvent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	deadline := now.Add(24 * time.Hour)

	t.Run("open future event with deadline ahead", func(t *testing.T) {
		event := testEvent(1, future, future.Add(2*time.Hour))
		event.RegistrationDeadline = &deadline
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.True(t, d.Allowed)
	})

	t.Run("full event", func(t *testing.T) {
		event := withAttendees(testEvent(1, future, future.Add(2*time.Hour)), 7, 8)
		event.RegistrationDeadline = &deadline
		cap := 2
		event.MaxAttendees = &cap
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonFull, d.Reason)
	})

	t.Run("university exclusive rejects other universities", func(t *testing.T) {
		event := testEvent(1, future, future.Add(2*time.Hour))
		event.RegistrationDeadline = &deadline
		event.AccessType = models.AccessUniversityExclusive
		d := CanRegisterForEvent(event, testUser(5, 2), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonUniversityExclusive, d.Reason)
	})

	t.Run("university exclusive admits same university", func(t *testing.T) {
		event := testEvent(1, future, future.Add(2*time.Hour))
		event.RegistrationDeadline = &deadline
		event.AccessType = models.AccessUniversityExclusive
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.True(t, d.Allowed)
	})

	t.Run("deadline passed", func(t *testing.T) {
		event := testEvent(1, future, future.Add(2*time.Hour))
		past := now.Add(-time.Hour)
		event.RegistrationDeadline = &past
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonRegistrationClosed, d.Reason)
	})

	t.Run("event already ended", func(t *testing.T) {
		event := testEvent(1, now.Add(-4*time.Hour), now.Add(-2*time.Hour))
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonEventEnded, d.Reason)
	})

	t.Run("no deadline closes at start", func(t *testing.T) {
		event := testEvent(1, now.Add(-time.Hour), now.Add(time.Hour))
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonRegistrationClosed, d.Reason)
	})

	t.Run("capacity check wins over scope check", func(t *testing.T) {
		event := withAttendees(testEvent(1, future, future.Add(2*time.Hour)), 7)
		event.AccessType = models.AccessUniversityExclusive
		cap := 1
		event.MaxAttendees = &cap
		d := CanRegisterForEvent(event, testUser(5, 2), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonFull, d.Reason)
	})

	t.Run("registered user bypasses capacity", func(t *testing.T) {
		event := withAttendees(testEvent(1, future, future.Add(2*time.Hour)), 5)
		cap := 1
		event.MaxAttendees = &cap
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.True(t, d.Allowed)
	})

	t.Run("registered user still blocked after event end", func(t *testing.T) {
		event := withAttendees(testEvent(1, now.Add(-4*time.Hour), now.Add(-2*time.Hour)), 5)
		d := CanRegisterForEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonEventEnded, d.Reason)
	})
}

func TestCanUnregisterFromEvent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("registered user may unregister before end", func(t *testing.T) {
		event := withAttendees(testEvent(1, now.Add(time.Hour), now.Add(3*time.Hour)), 5)
		d := CanUnregisterFromEvent(event, testUser(5, 1), now)
		require.True(t, d.Allowed)
	})

	t.Run("not registered", func(t *testing.T) {
		event := testEvent(1, now.Add(time.Hour), now.Add(3*time.Hour))
		d := CanUnregisterFromEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonNotRegistered, d.Reason)
	})

	t.Run("event ended", func(t *testing.T) {
		event := withAttendees(testEvent(1, now.Add(-4*time.Hour), now.Add(-2*time.Hour)), 5)
		d := CanUnregisterFromEvent(event, testUser(5, 1), now)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonEventEnded, d.Reason)
	})
}

func TestCanApplyToPost(t *testing.T) {
	post := &models.RecruitmentPost{ID: 1, EventID: 1, PosterID: 9}

	t.Run("other user may apply", func(t *testing.T) {
		d := CanApplyToPost(post, testUser(5, 1))
		require.True(t, d.Allowed)
	})

	t.Run("poster cannot apply to own post", func(t *testing.T) {
		d := CanApplyToPost(post, testUser(9, 1))
		require.False(t, d.Allowed)
		require.Equal(t, ReasonOwnPost, d.Reason)
	})

	t.Run("duplicate application", func(t *testing.T) {
		applied := &models.RecruitmentPost{
			ID:       1,
			PosterID: 9,
			Applications: []*models.RecruitmentApplication{
				{PostID: 1, ApplicantID: 5, Status: models.ApplicationPending},
			},
		}
		d := CanApplyToPost(applied, testUser(5, 1))
		require.False(t, d.Allowed)
		require.Equal(t, ReasonAlreadyApplied, d.Reason)
	})
}
