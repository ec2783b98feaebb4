package dto

import (
	"time"

	"blog-admin/models"
)

// BlogDTO is the admin-facing view of models.Blog
type BlogDTO struct {
	ID           int64     `json:"id" example:"42"`
	Title        string    `json:"title" example:"Scaling our search cluster"`
	Image        string    `json:"image" example:"http://localhost:8080/uploads/blogs/2f1c.png"`
	TextSummary  string    `json:"textSummary" example:"How we moved to a sharded index"`
	RedirectLink string    `json:"redirectLink" example:"https://example.com/posts/search"`
	Active       bool      `json:"active" example:"true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewBlogDTO constructs BlogDTO from models.Blog
func NewBlogDTO(b models.Blog) BlogDTO {
	return BlogDTO{
		ID:           b.ID,
		Title:        b.Title,
		Image:        b.Image,
		TextSummary:  b.TextSummary,
		RedirectLink: b.RedirectLink,
		Active:       b.Active,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Form returns the editable fields of d.
func (d BlogDTO) Form() models.BlogForm {
	return models.BlogForm{
		Title:        d.Title,
		Image:        d.Image,
		TextSummary:  d.TextSummary,
		RedirectLink: d.RedirectLink,
		Active:       d.Active,
	}
}
