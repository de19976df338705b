package dto

import "time"

// CreatePostRequest represents the post creation request
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdatePostRequest represents the post update request
type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostResponse represents a post with its author's username joined in
type PostResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// PostEnvelope wraps a single post
type PostEnvelope struct {
	Post PostResponse `json:"post"`
}

// PostListResponse represents all posts, newest first
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// DeletePostResponse acknowledges a hard delete
type DeletePostResponse struct {
	Success bool `json:"success"`
}
