package repository_test

import (
	"context"
	"testing"

	"github.com/localnerve/articles-api/internal/database"
	"github.com/localnerve/articles-api/internal/models"
	"github.com/localnerve/articles-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestWithMongoDB runs the repository contract against a real MongoDB container
func TestWithMongoDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	mongoContainer, err := testutil.StartMongo(ctx)
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}
	defer func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MongoDB container: %v", err)
		}
	}()

	cfg := mongoContainer.Config
	cfg.MongoDatabase = "articles_test"

	store, err := database.OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close(ctx)

	t.Run("SeededDefaults", func(t *testing.T) {
		user, err := store.Users.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "User", user.UserName)

		category, err := store.Categories.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Default Category", category.CategoryName)

		article, err := store.Articles.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Default Article", article.Title)
	})

	t.Run("SequenceContinuesAfterSeed", func(t *testing.T) {
		user := &models.User{UserName: "alice", Email: "a@x.com", Password: "p"}
		require.NoError(t, store.Users.Create(ctx, user))
		assert.Equal(t, 2, user.ID)
		require.NoError(t, store.Users.Delete(ctx, user.ID))
	})

	t.Run("UserCRUD", func(t *testing.T) {
		exerciseUserCRUD(t, store)
	})

	t.Run("ArticleLifecycle", func(t *testing.T) {
		exerciseArticleLifecycle(t, store)
	})

	t.Run("Duplicates", func(t *testing.T) {
		exerciseDuplicates(t, store)
	})

	t.Run("ReopenKeepsSequence", func(t *testing.T) {
		reopened, err := database.OpenStore(ctx, cfg, zap.NewNop())
		require.NoError(t, err)
		defer reopened.Close(ctx)

		all, err := reopened.Categories.List(ctx)
		require.NoError(t, err)
		maxID := 0
		for _, c := range all {
			maxID = max(maxID, c.ID)
		}

		category := &models.ArticleCategory{CategoryName: "Later"}
		require.NoError(t, reopened.Categories.Create(ctx, category))
		assert.Equal(t, maxID+1, category.ID)
	})
}

// TestWithPostgreSQL runs the repository contract against a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := testutil.StartSQL(ctx, "postgres")
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	cfg := postgresContainer.Config

	store, err := database.OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close(ctx)

	t.Run("UserCRUD", func(t *testing.T) {
		exerciseUserCRUD(t, store)
	})

	t.Run("ArticleLifecycle", func(t *testing.T) {
		exerciseArticleLifecycle(t, store)
	})

	t.Run("Duplicates", func(t *testing.T) {
		exerciseDuplicates(t, store)
	})
}

// TestWithMariaDB runs the repository contract through the MySQL dialect
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	mariaContainer, err := testutil.StartSQL(ctx, "mariadb")
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariaContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	store, err := database.OpenStore(ctx, mariaContainer.Config, zap.NewNop())
	require.NoError(t, err)
	defer store.Close(ctx)

	t.Run("UserCRUD", func(t *testing.T) {
		exerciseUserCRUD(t, store)
	})

	t.Run("Duplicates", func(t *testing.T) {
		exerciseDuplicates(t, store)
	})
}
