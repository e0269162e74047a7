package domain

import "time"

// LikeInput identifies a visitor liking a post, with the display metadata
// captured at the time of the like.
type LikeInput struct {
	Slug      string  `json:"slug"`
	UserID    string  `json:"userId"`
	UserName  string  `json:"userName"`
	UserImage *string `json:"userImage,omitempty"`
}

type Like struct {
	ID        string    `json:"_id"`
	Slug      string    `json:"slug"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserImage *string   `json:"userImage,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Liker struct {
	UserID    string  `json:"userId"`
	UserName  string  `json:"userName"`
	UserImage *string `json:"userImage,omitempty"`
}

// LikeSummary is the count plus an unordered preview of likers.
type LikeSummary struct {
	Count int64   `json:"count"`
	Users []Liker `json:"users"`
}

type ToggleResult struct {
	Liked bool `json:"liked"`
}
