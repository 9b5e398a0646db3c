package posts

import (
	"time"

	"github.com/google/uuid"

	"github.com/mishaszu/imagery-storage/internal/domain/posts"
)

type PostDTO struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	UserID          uuid.UUID `json:"user_id"`
	AddToFeed       bool      `json:"add_to_feed"`
	DisableComments bool      `json:"disable_comments"`
	PublicLvl       int       `json:"public_lvl"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListItemDTO is one feed/album slot. Redacted slots acknowledge a post
// exists at this position but withhold it.
type ListItemDTO struct {
	Redacted bool     `json:"redacted"`
	Post     *PostDTO `json:"post,omitempty"`
}

func toPostDTO(p posts.Post) PostDTO {
	return PostDTO{
		ID:              p.ID,
		Title:           p.Title,
		Body:            p.Body,
		UserID:          p.UserID,
		AddToFeed:       p.AddToFeed,
		DisableComments: p.DisableComments,
		PublicLvl:       p.PublicLvl,
		CreatedAt:       p.CreatedAt,
	}
}

func toListDTO(items []*posts.Post) []ListItemDTO {
	out := make([]ListItemDTO, 0, len(items))
	for _, p := range items {
		if p == nil {
			out = append(out, ListItemDTO{Redacted: true})
			continue
		}
		dto := toPostDTO(*p)
		out = append(out, ListItemDTO{Post: &dto})
	}
	return out
}

type CreatePostRequest struct {
	Title           string      `json:"title" binding:"required"`
	Body            string      `json:"body" binding:"required"`
	AddToFeed       *bool       `json:"add_to_feed"`
	DisableComments bool        `json:"disable_comments"`
	PublicLvl       int         `json:"public_lvl"`
	ImageIDs        []uuid.UUID `json:"image_ids"`
}

type UpdatePostRequest struct {
	Title           *string `json:"title"`
	Body            *string `json:"body"`
	AddToFeed       *bool   `json:"add_to_feed"`
	DisableComments *bool   `json:"disable_comments"`
	PublicLvl       *int    `json:"public_lvl"`
}
