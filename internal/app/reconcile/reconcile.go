// Package reconcile derives a user's authoritative "my clubs" / "my events"
// view from the denormalized profile document carried over from the legacy
// platform. The legacy document stores club/event references in three shapes
// (bare ID, {"club": id} / {"event": id}, and {"club": {"_id": id}}), so every
// reference is normalized at this boundary before being matched against the
// currently loaded collections. Unresolvable references are dropped, not
// reported: the document is best-effort denormalized state, never the source
// of truth.
package reconcile

import (
	"encoding/json"
	"strconv"

	"github.com/kerem/clubsphere/internal/app/models"
)

// RefKind identifies which collection a reference points into
type RefKind string

const (
	KindClub  RefKind = "club"
	KindEvent RefKind = "event"
)

// MembershipRef is a normalized club-membership reference
type MembershipRef struct {
	ClubID string
	Role   string
}

// AttendanceRef is a normalized event-attendance reference
type AttendanceRef struct {
	EventID string
}

// ProfileDocument is the legacy denormalized per-user document
type ProfileDocument struct {
	ClubMemberships []MembershipRef `json:"clubMemberships"`
	EventsAttended  []AttendanceRef `json:"eventsAttended"`
}

// UnmarshalJSON accepts any of the legacy membership shapes:
// a bare ID, {"club": <id>}, {"club": {"_id": <id>}}, each optionally
// carrying a "role" field. Entries that match none of the shapes fall back
// to their own "_id" and otherwise normalize to an empty ID, which the
// derive step drops.
func (r *MembershipRef) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ClubID = extractID(raw, "club")
	if obj, ok := raw.(map[string]interface{}); ok {
		if role, ok := obj["role"].(string); ok {
			r.Role = role
		}
	}
	return nil
}

// UnmarshalJSON accepts any of the legacy attendance shapes:
// a bare ID, {"event": <id>} or {"event": {"_id": <id>}}.
func (r *AttendanceRef) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.EventID = extractID(raw, "event")
	return nil
}

// extractID normalizes a single legacy reference to an identifier string.
// Dispatch order matches the legacy client: bare value, nested field as
// scalar, nested field as {"_id": ...}, then the entry's own "_id".
func extractID(raw interface{}, field string) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case map[string]interface{}:
		if nested, ok := v[field]; ok {
			switch n := nested.(type) {
			case string:
				return n
			case float64:
				return formatNumber(n)
			case map[string]interface{}:
				if id := scalarID(n["_id"]); id != "" {
					return id
				}
			}
		}
		return scalarID(v["_id"])
	}
	return ""
}

func scalarID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return formatNumber(id)
	}
	return ""
}

func formatNumber(f float64) string {
	// Legacy IDs are integral; avoid exponent formatting
	return strconv.FormatInt(int64(f), 10)
}

// ParseProfileDocument parses a raw profile document. A nil or empty
// document yields an empty profile, never an error; genuinely malformed
// JSON is the only failure mode.
func ParseProfileDocument(data []byte) (*ProfileDocument, error) {
	doc := &ProfileDocument{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseRefID converts a normalized reference ID into a numeric entity ID.
// References that are empty or not numeric cannot resolve against the
// database and report false.
func ParseRefID(id string) (int64, bool) {
	if id == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// UnresolvedFunc is called for each reference that does not resolve against
// the loaded collection. The default is to drop silently.
type UnresolvedFunc func(kind RefKind, id string)

// Reconciler matches normalized profile references against loaded collections
type Reconciler struct {
	onUnresolved UnresolvedFunc
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithUnresolvedHandler reports dropped references instead of discarding
// them silently
func WithUnresolvedHandler(fn UnresolvedFunc) Option {
	return func(r *Reconciler) {
		r.onUnresolved = fn
	}
}

// New creates a Reconciler
func New(opts ...Option) *Reconciler {
	r := &Reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MyClubs returns the clubs from the loaded collection that the profile
// references. Unresolvable references are dropped; duplicates collapse to a
// single entry; result order follows the collection, so it is independent
// of the order of the profile's membership entries.
func (r *Reconciler) MyClubs(doc *ProfileDocument, clubs []*models.Club) []*models.Club {
	result := []*models.Club{}
	if doc == nil || len(doc.ClubMemberships) == 0 || len(clubs) == 0 {
		return result
	}

	wanted := make(map[string]bool, len(doc.ClubMemberships))
	for _, ref := range doc.ClubMemberships {
		if ref.ClubID == "" {
			continue
		}
		wanted[ref.ClubID] = false
	}

	for _, club := range clubs {
		id := strconv.FormatInt(club.ID, 10)
		if _, ok := wanted[id]; ok && !wanted[id] {
			wanted[id] = true
			result = append(result, club)
		}
	}

	r.reportUnresolved(KindClub, wanted)
	return result
}

// MyEvents returns the events from the loaded collection that the profile
// references, with the same guarantees as MyClubs.
func (r *Reconciler) MyEvents(doc *ProfileDocument, events []*models.Event) []*models.Event {
	result := []*models.Event{}
	if doc == nil || len(doc.EventsAttended) == 0 || len(events) == 0 {
		return result
	}

	wanted := make(map[string]bool, len(doc.EventsAttended))
	for _, ref := range doc.EventsAttended {
		if ref.EventID == "" {
			continue
		}
		wanted[ref.EventID] = false
	}

	for _, event := range events {
		id := strconv.FormatInt(event.ID, 10)
		if _, ok := wanted[id]; ok && !wanted[id] {
			wanted[id] = true
			result = append(result, event)
		}
	}

	r.reportUnresolved(KindEvent, wanted)
	return result
}

func (r *Reconciler) reportUnresolved(kind RefKind, wanted map[string]bool) {
	if r.onUnresolved == nil {
		return
	}
	for id, resolved := range wanted {
		if !resolved {
			r.onUnresolved(kind, id)
		}
	}
}

// DeriveMyClubs derives the club view with the default silent-drop policy
func DeriveMyClubs(doc *ProfileDocument, clubs []*models.Club) []*models.Club {
	return New().MyClubs(doc, clubs)
}

// DeriveMyEvents derives the event view with the default silent-drop policy
func DeriveMyEvents(doc *ProfileDocument, events []*models.Event) []*models.Event {
	return New().MyEvents(doc, events)
}

// CanonicalDocument rebuilds a profile document in the canonical shape
// (bare ID strings plus role) from authoritative membership rows. Mutating
// services persist this after every successful join/leave/register/unregister
// so the legacy shapes decay over time.
func CanonicalDocument(memberships []*models.ClubMember, attendances []*models.EventAttendee) ([]byte, error) {
	type membershipEntry struct {
		Club string `json:"club"`
		Role string `json:"role"`
	}
	type attendanceEntry struct {
		Event string `json:"event"`
	}

	doc := struct {
		ClubMemberships []membershipEntry `json:"clubMemberships"`
		EventsAttended  []attendanceEntry `json:"eventsAttended"`
	}{
		ClubMemberships: []membershipEntry{},
		EventsAttended:  []attendanceEntry{},
	}

	for _, m := range memberships {
		doc.ClubMemberships = append(doc.ClubMemberships, membershipEntry{
			Club: strconv.FormatInt(m.ClubID, 10),
			Role: string(m.MemberRole),
		})
	}
	for _, a := range attendances {
		doc.EventsAttended = append(doc.EventsAttended, attendanceEntry{
			Event: strconv.FormatInt(a.EventID, 10),
		})
	}

	return json.Marshal(doc)
}
