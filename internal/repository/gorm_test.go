package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/articles-api/internal/models"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserCRUD(t *testing.T) {
	store := testutil.NewTestStore(t)
	exerciseUserCRUD(t, store)
}

func TestGormArticleLifecycle(t *testing.T) {
	store := testutil.NewTestStore(t)
	exerciseArticleLifecycle(t, store)
}

func TestGormDuplicateTitle(t *testing.T) {
	store := testutil.NewTestStore(t)
	exerciseDuplicates(t, store)
}

func TestGormErrorTranslation(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := store.Categories.Get(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = store.Comments.Delete(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Equal(t, repository.KindSQL, store.Kind)
	assert.NoError(t, store.Ping(ctx))
}

// exerciseUserCRUD runs the user contract against any Store
func exerciseUserCRUD(t *testing.T, store *repository.Store) {
	t.Helper()
	ctx := context.Background()

	before, err := store.Users.List(ctx)
	require.NoError(t, err)

	user := &models.User{UserName: "alice", Email: "a@x.com", Password: "p"}
	require.NoError(t, store.Users.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := store.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, *user, *got)

	got.Email = "alice@x.com"
	require.NoError(t, store.Users.Update(ctx, got))

	updated, err := store.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", updated.Email)
	assert.Equal(t, "alice", updated.UserName)

	after, err := store.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	require.NoError(t, store.Users.Delete(ctx, user.ID))
	_, err = store.Users.Get(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// exerciseArticleLifecycle checks ids increase and deletes leave dependents in place
func exerciseArticleLifecycle(t *testing.T, store *repository.Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	user := &models.User{UserName: "writer", Email: "w@x.com", Password: "p"}
	require.NoError(t, store.Users.Create(ctx, user))
	category := &models.ArticleCategory{CategoryName: "News"}
	require.NoError(t, store.Categories.Create(ctx, category))

	first := &models.Article{Title: "First", Content: "c", CreatedDate: now, UserID: user.ID, CategoryID: category.ID}
	second := &models.Article{Title: "Second", Content: "c", CreatedDate: now, UserID: user.ID, CategoryID: category.ID}
	require.NoError(t, store.Articles.Create(ctx, first))
	require.NoError(t, store.Articles.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	comment := &models.Comment{Content: "nice", CreateDate: now, UserID: user.ID, ArticleID: first.ID}
	require.NoError(t, store.Comments.Create(ctx, comment))

	// No cascade: the comment outlives its article
	require.NoError(t, store.Articles.Delete(ctx, first.ID))
	orphan, err := store.Comments.Get(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, orphan.ArticleID)

	got, err := store.Articles.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, now.Equal(got.CreatedDate.UTC()), "created date round trips")
}

// exerciseDuplicates checks the unique indexes surface ErrDuplicate
func exerciseDuplicates(t *testing.T, store *repository.Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Users.Create(ctx, &models.User{UserName: "dup", Email: "dup1@x.com", Password: "p"}))
	err := store.Users.Create(ctx, &models.User{UserName: "dup", Email: "dup2@x.com", Password: "p"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate), "username: %v", err)

	err = store.Users.Create(ctx, &models.User{UserName: "other", Email: "dup1@x.com", Password: "p"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate), "email: %v", err)

	now := time.Now().UTC()
	require.NoError(t, store.Articles.Create(ctx, &models.Article{Title: "T", Content: "c", CreatedDate: now, UserID: 1, CategoryID: 1}))
	err = store.Articles.Create(ctx, &models.Article{Title: "T", Content: "c", CreatedDate: now, UserID: 1, CategoryID: 1})
	assert.True(t, errors.Is(err, repository.ErrDuplicate), "title: %v", err)
}
