// Package services applies the validation and business rules for each entity,
// translating between request bodies, stored entities and DTOs.
package services

import (
	"time"

	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/repository"
)

// Options tune service behaviour
type Options struct {
	// UniqueCheckExcludesSelf makes the user update scan skip the record being updated
	UniqueCheckExcludesSelf bool

	// Now stamps created dates, time.Now in UTC when nil
	Now func() time.Time
}

// Services bundles the entity services over one store
type Services struct {
	Users      *UserService
	Articles   *ArticleService
	Categories *ArticleCategoryService
	Comments   *CommentService
	Auth       *AuthService
}

// New wires every service over the store, using cfg for options and token settings
func New(store *repository.Store, cfg *config.Config) *Services {
	opts := Options{UniqueCheckExcludesSelf: cfg.UniqueCheckExcludesSelf}
	tokens := TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Lifetime: cfg.JWTLifetime,
	}
	return &Services{
		Users:      NewUserService(store, opts),
		Articles:   NewArticleService(store, opts),
		Categories: NewArticleCategoryService(store),
		Comments:   NewCommentService(store, opts),
		Auth:       NewAuthService(store.Users, tokens),
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}
