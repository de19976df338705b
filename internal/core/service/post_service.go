package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/martijn/chirp/internal/core/domain"
	"github.com/martijn/chirp/internal/core/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// List returns all posts across all users, newest first.
func (s *PostService) List(ctx context.Context) ([]*domain.PostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Create persists a new post for the authenticated author.
func (s *PostService) Create(ctx context.Context, authorID int64, content string) (*domain.PostWithAuthor, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content is required and must be a non-empty string")
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find author: %w", err)
	}

	post := domain.NewPost(authorID, content)
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &domain.PostWithAuthor{Post: *post, Username: author.Username}, nil
}

// Update overwrites the content of a post after checking that it exists and
// belongs to the authenticated author. created_at and author_id never change.
func (s *PostService) Update(ctx context.Context, postID, authorID int64, content string) (*domain.PostWithAuthor, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content is required and must be a non-empty string")
	}

	post, err := s.getOwnedPost(ctx, postID, authorID, "edit")
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdateContent(ctx, postID, content); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	post.Content = content

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find author: %w", err)
	}

	return &domain.PostWithAuthor{Post: *post, Username: author.Username}, nil
}

// Delete removes a post after the same existence and ownership checks as Update.
func (s *PostService) Delete(ctx context.Context, postID, authorID int64) error {
	if _, err := s.getOwnedPost(ctx, postID, authorID, "delete"); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

// getOwnedPost loads a post and rejects the request when it does not exist or
// is owned by someone else. Non-owners are turned away before any write.
func (s *PostService) getOwnedPost(ctx context.Context, postID, authorID int64, action string) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if post.AuthorID != authorID {
		return nil, NewForbiddenError(fmt.Sprintf("you can only %s your own posts", action))
	}

	return post, nil
}
