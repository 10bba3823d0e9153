package entity

import "time"

type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"video_file"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	OwnerID     string    `json:"owner_id"`
	IsPublished bool      `json:"is_published"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoFilter narrows a video listing. Zero values mean "no constraint";
// PublishedOnly is forced on whenever Query is set.
type VideoFilter struct {
	OwnerID       string
	Query         string
	SortBy        string
	SortDesc      bool
	Page          int
	Limit         int
	PublishedOnly bool
}
