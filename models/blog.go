package models

import (
	"time"
)

// Blog represents an admin-managed blog entry
// Collection: blogs
type Blog struct {
	ID           int64     `bson:"_id" json:"id"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
	Title        string    `bson:"title" json:"title"`
	Image        string    `bson:"image" json:"image"`
	TextSummary  string    `bson:"text_summary" json:"textSummary"`
	RedirectLink string    `bson:"redirect_link,omitempty" json:"redirectLink"`
	Active       bool      `bson:"active" json:"active"`
}

// Form returns the editable copy of b.
func (b Blog) Form() BlogForm {
	return BlogForm{
		Title:        b.Title,
		Image:        b.Image,
		TextSummary:  b.TextSummary,
		RedirectLink: b.RedirectLink,
		Active:       b.Active,
	}
}

// Apply copies the editable fields of f onto b.
func (b *Blog) Apply(f BlogForm) {
	b.Title = f.Title
	b.Image = f.Image
	b.TextSummary = f.TextSummary
	b.RedirectLink = f.RedirectLink
	b.Active = f.Active
}
