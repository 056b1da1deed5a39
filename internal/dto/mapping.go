package dto

import (
	"time"

	"github.com/localnerve/articles-api/internal/models"
)

// ToUserDTO projects a stored user
func ToUserDTO(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{ID: u.ID, UserName: u.UserName, Email: u.Email, Password: u.Password}
}

// NewUser builds an unsaved user from a request
func NewUser(req *UpdateUserRequest) *models.User {
	u := &models.User{}
	ApplyUserRequest(req, u)
	return u
}

// ApplyUserRequest overlays the request fields onto an existing user
func ApplyUserRequest(req *UpdateUserRequest, u *models.User) {
	u.UserName = req.UserName
	u.Email = req.Email
	u.Password = req.Password
}

// ToArticleCategoryDTO projects a stored category
func ToArticleCategoryDTO(c *models.ArticleCategory) *ArticleCategoryDTO {
	if c == nil {
		return nil
	}
	return &ArticleCategoryDTO{ID: c.ID, CategoryName: c.CategoryName}
}

// NewArticleCategory builds an unsaved category from a request
func NewArticleCategory(req *UpdateArticleCategoryRequest) *models.ArticleCategory {
	c := &models.ArticleCategory{}
	ApplyArticleCategoryRequest(req, c)
	return c
}

// ApplyArticleCategoryRequest overlays the request fields onto an existing category
func ApplyArticleCategoryRequest(req *UpdateArticleCategoryRequest, c *models.ArticleCategory) {
	c.CategoryName = req.CategoryName
}

// ToArticleDTO projects a stored article
func ToArticleDTO(a *models.Article) *ArticleDTO {
	if a == nil {
		return nil
	}
	return &ArticleDTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		CreatedDate: a.CreatedDate,
		CategoryID:  a.CategoryID,
		UserID:      a.UserID,
	}
}

// NewArticle builds an unsaved article from a request, stamped with now
func NewArticle(req *UpdateArticleRequest, now time.Time) *models.Article {
	a := &models.Article{}
	ApplyArticleRequest(req, a, now)
	return a
}

// ApplyArticleRequest overlays the request onto an existing article.
// The created date is restamped on every write.
func ApplyArticleRequest(req *UpdateArticleRequest, a *models.Article, now time.Time) {
	a.Title = req.Title
	a.Content = req.Content
	a.CategoryID = req.CategoryID.Int()
	a.UserID = req.UserID.Int()
	a.CreatedDate = now
}

// ToCommentDTO projects a stored comment
func ToCommentDTO(c *models.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:         c.ID,
		Content:    c.Content,
		CreateDate: c.CreateDate,
		UserID:     c.UserID,
		ArticleID:  c.ArticleID,
	}
}

// NewComment builds an unsaved comment from a request, stamped with now
func NewComment(req *UpdateCommentRequest, now time.Time) *models.Comment {
	c := &models.Comment{}
	ApplyCommentRequest(req, c, now)
	return c
}

// ApplyCommentRequest overlays the request onto an existing comment.
// The create date is restamped on every write.
func ApplyCommentRequest(req *UpdateCommentRequest, c *models.Comment, now time.Time) {
	c.Content = req.Content
	c.UserID = req.UserID.Int()
	c.ArticleID = req.ArticleID.Int()
	c.CreateDate = now
}
