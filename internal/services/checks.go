package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/articles-api/internal/models"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/types"
)

// Messages returned by the uniqueness and referential checks
const (
	MsgUserNameExists     = "User with same user name exists."
	MsgEmailExists        = "User with same email exists."
	MsgUserNotFound       = "User with given id does not exists."
	MsgCategoryNotFound   = "Article category with given id does not exists."
	MsgArticleNotFound    = "Article with given id does not exists."
	msgArticleTitleExists = "Article with title %s exists."
)

// ArticleTitleExists formats the title conflict message
func ArticleTitleExists(title string) string {
	return fmt.Sprintf(msgArticleTitleExists, title)
}

// checks runs the pre-write validation against the current store state.
// The first failing check wins and nothing is written.
type checks struct {
	store        *repository.Store
	excludesSelf bool
}

// userUnique fails when another user has the same user name, then the same email.
// selfID is ignored unless excludesSelf is set.
func (c *checks) userUnique(ctx context.Context, user *models.User, selfID int) error {
	users, err := c.store.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	skip := func(u *models.User) bool {
		return c.excludesSelf && selfID != 0 && u.ID == selfID
	}

	for i := range users {
		if !skip(&users[i]) && users[i].UserName == user.UserName {
			return types.Conflict(MsgUserNameExists)
		}
	}
	for i := range users {
		if !skip(&users[i]) && users[i].Email == user.Email {
			return types.Conflict(MsgEmailExists)
		}
	}
	return nil
}

// articleRefs fails when the owning user, then the category, does not exist
func (c *checks) articleRefs(ctx context.Context, article *models.Article) error {
	if err := exists(ctx, c.store.Users, article.UserID, MsgUserNotFound); err != nil {
		return err
	}
	return exists(ctx, c.store.Categories, article.CategoryID, MsgCategoryNotFound)
}

// articleTitleUnique fails when any stored article already has the title
func (c *checks) articleTitleUnique(ctx context.Context, title string) error {
	articles, err := c.store.Articles.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list articles: %w", err)
	}
	for i := range articles {
		if articles[i].Title == title {
			return types.Conflict(ArticleTitleExists(title))
		}
	}
	return nil
}

// commentRefs fails when the article, then the user, does not exist
func (c *checks) commentRefs(ctx context.Context, comment *models.Comment) error {
	if err := exists(ctx, c.store.Articles, comment.ArticleID, MsgArticleNotFound); err != nil {
		return err
	}
	return exists(ctx, c.store.Users, comment.UserID, MsgUserNotFound)
}

func exists[T any](ctx context.Context, repo repository.Repository[T], id int, message string) error {
	_, err := repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return types.NotFound(message)
	}
	if err != nil {
		return fmt.Errorf("failed to check reference %d: %w", id, err)
	}
	return nil
}
