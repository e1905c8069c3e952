package model

import "time"

// Favorite links a user to a bookmarked publication. The table exists for the
// mobile client but no route exposes it yet.
type Favorite struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        int64     `json:"userId" gorm:"not null;index"`
	PublicationID int64     `json:"publicationId" gorm:"not null;index"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReadingProgress tracks how far a user has read a publication. Progress is a
// percentage in [0,100]. Like Favorite, it is schema-only for now.
type ReadingProgress struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        int64     `json:"userId" gorm:"not null;index"`
	PublicationID int64     `json:"publicationId" gorm:"not null;index"`
	Progress      float64   `json:"progress" gorm:"default:0"`
	LastPosition  int       `json:"lastPosition" gorm:"default:0"`
	Completed     bool      `json:"completed" gorm:"default:false"`
	LastReadAt    time.Time `json:"lastReadAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
