package model

import "time"

// Publication types.
const (
	TypeMeditation = "Meditation"
	TypeLivret     = "Livret"
	TypeLivre      = "Livre"
)

// ValidPublicationType reports whether t is one of the three known types.
func ValidPublicationType(t string) bool {
	return t == TypeMeditation || t == TypeLivret || t == TypeLivre
}

// Publication represents a content item: a meditation, a booklet or a book.
type Publication struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	CoverImage *string   `json:"coverImage"`
	Type       string    `json:"type" gorm:"not null;default:Meditation"`
	IsPaid     bool      `json:"isPaid" gorm:"default:false"`
	ProductID  *string   `json:"productId"`
	Excerpt    *string   `json:"excerpt" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PublicationInput carries the decoded multipart fields of a create or update
// request. Empty strings and nil pointers mean "field not supplied".
type PublicationInput struct {
	Title      string
	Content    string
	Excerpt    string
	Type       string
	IsPaid     *bool
	CoverImage *string
}

// MessageResponse is the confirmation body returned by delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}
