// Package dto holds the externally exposed projections of the stored entities,
// the create/update request bodies, and the explicit mappings between them.
package dto

import (
	"time"

	"github.com/localnerve/articles-api/internal/types"
)

// UserDTO is the exposed view of a user
type UserDTO struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ArticleCategoryDTO is the exposed view of an article category
type ArticleCategoryDTO struct {
	ID           int    `json:"id"`
	CategoryName string `json:"categoryName"`
}

// ArticleDTO is the exposed view of an article
type ArticleDTO struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedDate time.Time `json:"createdDate"`
	CategoryID  int       `json:"categoryId"`
	UserID      int       `json:"userId"`
}

// CommentDTO is the exposed view of a comment
type CommentDTO struct {
	ID         int       `json:"id"`
	Content    string    `json:"content"`
	CreateDate time.Time `json:"createDate"`
	UserID     int       `json:"userId"`
	ArticleID  int       `json:"articleId"`
}

// UpdateUserRequest creates or replaces a user
type UpdateUserRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateArticleCategoryRequest creates or replaces an article category
type UpdateArticleCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
}

// UpdateArticleRequest creates or replaces an article
type UpdateArticleRequest struct {
	Title      string        `json:"title" validate:"required,max=255"`
	Content    string        `json:"content" validate:"required,max=2000"`
	CategoryID types.FlexInt `json:"categoryId" validate:"min=1"`
	UserID     types.FlexInt `json:"userId" validate:"min=1"`
}

// UpdateCommentRequest creates or replaces a comment
type UpdateCommentRequest struct {
	Content   string        `json:"content" validate:"required,max=200"`
	UserID    types.FlexInt `json:"userId" validate:"min=1"`
	ArticleID types.FlexInt `json:"articleId" validate:"min=1"`
}
