package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kerem/clubsphere/internal/app/models"
)

func clubFixtures(ids ...int64) []*models.Club {
	clubs := make([]*models.Club, 0, len(ids))
	for _, id := range ids {
		clubs = append(clubs, &models.Club{ID: id})
	}
	return clubs
}

func eventFixtures(ids ...int64) []*models.Event {
	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, &models.Event{ID: id})
	}
	return events
}

func clubIDs(clubs []*models.Club) []int64 {
	ids := make([]int64, 0, len(clubs))
	for _, c := range clubs {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestParseProfileDocumentShapes(t *testing.T) {
	t.Run("bare IDs", func(t *testing.T) {
		doc, err := ParseProfileDocument([]byte(`{"clubMemberships": ["3", "7"], "eventsAttended": ["12"]}`))
		require.NoError(t, err)
		require.Len(t, doc.ClubMemberships, 2)
		require.Equal(t, "3", doc.ClubMemberships[0].ClubID)
		require.Equal(t, "7", doc.ClubMemberships[1].ClubID)
		require.Equal(t, "12", doc.EventsAttended[0].EventID)
	})

	t.Run("numeric bare IDs", func(t *testing.T) {
		doc, err := ParseProfileDocument([]byte(`{"clubMemberships": [3], "eventsAttended": [12]}`))
		require.NoError(t, err)
		require.Equal(t, "3", doc.ClubMemberships[0].ClubID)
		require.Equal(t, "12", doc.EventsAttended[0].EventID)
	})

	t.Run("scalar field shape", func(t *testing.T) {
		doc, err := ParseProfileDocument([]byte(`{
			"clubMemberships": [{"club": "3", "role": "Officer"}],
			"eventsAttended": [{"event": 12}]
		}`))
		require.NoError(t, err)
		require.Equal(t, "3", doc.ClubMemberships[0].ClubID)
		require.Equal(t, "Officer", doc.ClubMemberships[0].Role)
		require.Equal(t, "12", doc.EventsAttended[0].EventID)
	})

	t.Run("nested object shape", func(t *testing.T) {
		doc, err := ParseProfileDocument([]byte(`{
			"clubMemberships": [{"club": {"_id": "3", "name": "Chess"}, "role": "Member"}],
			"eventsAttended": [{"event": {"_id": 12}}]
		}`))
		require.NoError(t, err)
		require.Equal(t, "3", doc.ClubMemberships[0].ClubID)
		require.Equal(t, "12", doc.EventsAttended[0].EventID)
	})

	t.Run("entry falls back to its own _id", func(t *testing.T) {
		doc, err := ParseProfileDocument([]byte(`{"clubMemberships": [{"_id": "3", "role": "Member"}]}`))
		require.NoError(t, err)
		require.Equal(t, "3", doc.ClubMemberships[0].ClubID)
	})

	t.Run("unrecognizable entry normalizes to empty", func(t *testing.T) {
		doc, err := ParseProfileDocument([]byte(`{"clubMemberships": [{"role": "Member"}, null, true]}`))
		require.NoError(t, err)
		require.Len(t, doc.ClubMemberships, 3)
		for _, ref := range doc.ClubMemberships {
			require.Empty(t, ref.ClubID)
		}
	})

	t.Run("nil and empty documents", func(t *testing.T) {
		for _, data := range [][]byte{nil, {}} {
			doc, err := ParseProfileDocument(data)
			require.NoError(t, err)
			require.Empty(t, doc.ClubMemberships)
			require.Empty(t, doc.EventsAttended)
		}
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		_, err := ParseProfileDocument([]byte(`{"clubMemberships": [`))
		require.Error(t, err)
	})
}

func TestMyClubsShapeEquivalence(t *testing.T) {
	clubs := clubFixtures(3, 7, 9)

	documents := map[string]string{
		"bare":   `{"clubMemberships": ["3", "7"]}`,
		"scalar": `{"clubMemberships": [{"club": "3"}, {"club": "7"}]}`,
		"nested": `{"clubMemberships": [{"club": {"_id": "3"}}, {"club": {"_id": "7"}}]}`,
		"mixed":  `{"clubMemberships": ["3", {"club": {"_id": "7"}}]}`,
	}

	for name, raw := range documents {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseProfileDocument([]byte(raw))
			require.NoError(t, err)
			result := DeriveMyClubs(doc, clubs)
			require.Equal(t, []int64{3, 7}, clubIDs(result))
		})
	}
}

func TestMyClubsOrderIndependence(t *testing.T) {
	clubs := clubFixtures(3, 7, 9)

	forward, err := ParseProfileDocument([]byte(`{"clubMemberships": ["3", "9"]}`))
	require.NoError(t, err)
	reversed, err := ParseProfileDocument([]byte(`{"clubMemberships": ["9", "3"]}`))
	require.NoError(t, err)

	require.Equal(t, clubIDs(DeriveMyClubs(forward, clubs)), clubIDs(DeriveMyClubs(reversed, clubs)))
}

func TestMyClubsDropsUnresolvable(t *testing.T) {
	clubs := clubFixtures(3)

	doc, err := ParseProfileDocument([]byte(`{"clubMemberships": ["3", "404", {"role": "Member"}]}`))
	require.NoError(t, err)

	result := DeriveMyClubs(doc, clubs)
	require.Equal(t, []int64{3}, clubIDs(result))
}

func TestMyClubsDeduplicates(t *testing.T) {
	clubs := clubFixtures(3, 7)

	doc, err := ParseProfileDocument([]byte(`{"clubMemberships": ["3", {"club": "3"}, {"club": {"_id": "3"}}]}`))
	require.NoError(t, err)

	result := DeriveMyClubs(doc, clubs)
	require.Equal(t, []int64{3}, clubIDs(result))
}

func TestMyClubsEmptyInputs(t *testing.T) {
	doc, err := ParseProfileDocument([]byte(`{"clubMemberships": ["3"]}`))
	require.NoError(t, err)

	require.Empty(t, DeriveMyClubs(nil, clubFixtures(3)))
	require.Empty(t, DeriveMyClubs(doc, nil))
	require.Empty(t, DeriveMyClubs(&ProfileDocument{}, clubFixtures(3)))
	require.NotNil(t, DeriveMyClubs(doc, nil))
}

func TestMyEvents(t *testing.T) {
	events := eventFixtures(12, 15)

	doc, err := ParseProfileDocument([]byte(`{"eventsAttended": [{"event": {"_id": 12}}, "999"]}`))
	require.NoError(t, err)

	result := DeriveMyEvents(doc, events)
	require.Len(t, result, 1)
	require.Equal(t, int64(12), result[0].ID)
}

func TestUnresolvedHandler(t *testing.T) {
	clubs := clubFixtures(3)

	doc, err := ParseProfileDocument([]byte(`{"clubMemberships": ["3", "404"]}`))
	require.NoError(t, err)

	var dropped []string
	r := New(WithUnresolvedHandler(func(kind RefKind, id string) {
		require.Equal(t, KindClub, kind)
		dropped = append(dropped, id)
	}))

	result := r.MyClubs(doc, clubs)
	require.Equal(t, []int64{3}, clubIDs(result))
	require.Equal(t, []string{"404"}, dropped)
}

func TestCanonicalDocumentRoundTrip(t *testing.T) {
	memberships := []*models.ClubMember{
		{ClubID: 3, UserID: 5, MemberRole: models.MemberRoleOfficer},
		{ClubID: 7, UserID: 5, MemberRole: models.MemberRoleMember},
	}
	attendances := []*models.EventAttendee{{EventID: 12, UserID: 5}}

	data, err := CanonicalDocument(memberships, attendances)
	require.NoError(t, err)

	doc, err := ParseProfileDocument(data)
	require.NoError(t, err)
	require.Len(t, doc.ClubMemberships, 2)
	require.Equal(t, "3", doc.ClubMemberships[0].ClubID)
	require.Equal(t, "Officer", doc.ClubMemberships[0].Role)
	require.Equal(t, "12", doc.EventsAttended[0].EventID)

	require.Equal(t, []int64{3, 7}, clubIDs(DeriveMyClubs(doc, clubFixtures(3, 7))))
}

func TestCanonicalDocumentEmpty(t *testing.T) {
	data, err := CanonicalDocument(nil, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"clubMemberships": [], "eventsAttended": []}`, string(data))
}
