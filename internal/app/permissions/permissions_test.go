package permissions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kerem/clubsphere/internal/app/models"
)

func clubWithMember(userID int64, role models.MemberRole) *models.Club {
	return &models.Club{
		ID:          1,
		PresidentID: 100,
		Members:     []*models.ClubMember{{ClubID: 1, UserID: userID, MemberRole: role}},
	}
}

func TestCanCreateAnnouncement(t *testing.T) {
	cases := []struct {
		name string
		user *models.User
		club *models.Club
		want bool
	}{
		{
			name: "administrator anywhere",
			user: &models.User{ID: 1, Role: models.RoleAdministrator},
			club: &models.Club{ID: 1, PresidentID: 100},
			want: true,
		},
		{
			name: "club president",
			user: &models.User{ID: 100, Role: models.RoleStudent},
			club: &models.Club{ID: 1, PresidentID: 100},
			want: true,
		},
		{
			name: "vice president member",
			user: &models.User{ID: 5, Role: models.RoleStudent},
			club: clubWithMember(5, models.MemberRoleVicePresident),
			want: true,
		},
		{
			name: "officer member",
			user: &models.User{ID: 5, Role: models.RoleStudent},
			club: clubWithMember(5, models.MemberRoleOfficer),
			want: true,
		},
		{
			name: "secretary member",
			user: &models.User{ID: 5, Role: models.RoleStudent},
			club: clubWithMember(5, models.MemberRoleSecretary),
			want: true,
		},
		{
			name: "plain member",
			user: &models.User{ID: 5, Role: models.RoleStudent},
			club: clubWithMember(5, models.MemberRoleMember),
			want: false,
		},
		{
			name: "officer of another club",
			user: &models.User{ID: 5, Role: models.RoleStudent},
			club: clubWithMember(6, models.MemberRoleOfficer),
			want: false,
		},
		{
			name: "non-member student",
			user: &models.User{ID: 5, Role: models.RoleStudent},
			club: &models.Club{ID: 1, PresidentID: 100},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CanCreateAnnouncement(tc.user, tc.club))
		})
	}
}

func TestCanModerateAnnouncement(t *testing.T) {
	club := &models.Club{ID: 1, PresidentID: 100}
	announcement := &models.Announcement{ID: 1, ClubID: 1, AuthorID: 5}

	t.Run("author", func(t *testing.T) {
		require.True(t, CanModerateAnnouncement(&models.User{ID: 5, Role: models.RoleStudent}, announcement, club))
	})

	t.Run("president of the club", func(t *testing.T) {
		require.True(t, CanModerateAnnouncement(&models.User{ID: 100, Role: models.RoleStudent}, announcement, club))
	})

	t.Run("unrelated student", func(t *testing.T) {
		require.False(t, CanModerateAnnouncement(&models.User{ID: 6, Role: models.RoleStudent}, announcement, club))
	})
}

func TestCanReviewClubRequest(t *testing.T) {
	require.True(t, CanReviewClubRequest(&models.User{Role: models.RoleAdministrator}))
	require.False(t, CanReviewClubRequest(&models.User{Role: models.RoleStudent}))
	require.False(t, CanReviewClubRequest(&models.User{Role: models.RoleClubAdmin}))
}

func TestCanManageClub(t *testing.T) {
	club := &models.Club{ID: 1, PresidentID: 100}

	require.True(t, CanManageClub(&models.User{ID: 1, Role: models.RoleAdministrator}, club))
	require.True(t, CanManageClub(&models.User{ID: 100, Role: models.RoleStudent}, club))
	require.False(t, CanManageClub(&models.User{ID: 5, Role: models.RoleStudent}, club))
}

func TestCanReviewApplication(t *testing.T) {
	post := &models.RecruitmentPost{ID: 1, PosterID: 9}

	require.True(t, CanReviewApplication(&models.User{ID: 9}, post))
	require.False(t, CanReviewApplication(&models.User{ID: 5}, post))
}
