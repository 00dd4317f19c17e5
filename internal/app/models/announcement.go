package models

import "time"

// Announcement represents a club announcement
type Announcement struct {
	ID           int64      `json:"id" db:"id"`
	ClubID       int64      `json:"clubId" db:"club_id"`
	AuthorID     int64      `json:"authorId" db:"author_id"`
	Title        string     `json:"title" db:"title"`
	Content      string     `json:"content" db:"content"`
	Type         string     `json:"type" db:"type"`
	Priority     string     `json:"priority" db:"priority"`
	IsPinned     bool       `json:"isPinned" db:"is_pinned"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty" db:"scheduled_for"`
	Tags         []string   `json:"tags" db:"tags"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	// Related entities
	Author    *User                  `json:"author,omitempty"`
	Club      *Club                  `json:"club,omitempty"`
	LikeCount int                    `json:"likeCount"`
	Comments  []*AnnouncementComment `json:"comments,omitempty"`
}

// AnnouncementComment represents a comment on an announcement
type AnnouncementComment struct {
	ID             int64     `json:"id" db:"id"`
	AnnouncementID int64     `json:"announcementId" db:"announcement_id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
