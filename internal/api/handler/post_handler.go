package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/chirp/internal/api/dto"
	"github.com/martijn/chirp/internal/api/middleware"
	"github.com/martijn/chirp/internal/core/domain"
	"github.com/martijn/chirp/internal/core/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	if _, ok := middleware.GetAuthClaims(c); !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.PostListResponse{
		Posts: make([]dto.PostResponse, len(posts)),
	}
	for i, post := range posts {
		response.Posts[i] = toPostResponse(post)
	}

	c.JSON(http.StatusOK, response)
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "content is required and must be a non-empty string",
		})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), claims.UserID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PostEnvelope{Post: toPostResponse(post)})
}

// UpdatePost handles PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "valid post id is required"})
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "content is required and must be a non-empty string",
		})
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, claims.UserID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{Post: toPostResponse(post)})
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "valid post id is required"})
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletePostResponse{Success: true})
}

func toPostResponse(post *domain.PostWithAuthor) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		Username:  post.Username,
		CreatedAt: post.CreatedAt,
	}
}
