package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/articles-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// KindMongo identifies a Store backed by MongoDB
const KindMongo = "mongo"

// Collection names
const (
	ArticlesCollection   = "Articles"
	UsersCollection      = "Users"
	CommentsCollection   = "Comments"
	CategoriesCollection = "Categories"
	CountersCollection   = "Counters"
)

// mongoRepository implements Repository over one collection keyed by an integer _id.
type mongoRepository[T any] struct {
	coll  *mongo.Collection
	seq   *sequence
	getID func(*T) int
	setID func(*T, int)
}

// NewMongoStore builds a Store over a MongoDB database. It creates the unique indexes,
// seeds a default document into each empty collection when seed is set, and aligns
// the id sequences with the documents already present.
func NewMongoStore(ctx context.Context, db *mongo.Database, seed bool) (*Store, error) {
	counters := db.Collection(CountersCollection)

	users := &mongoRepository[models.User]{
		coll:  db.Collection(UsersCollection),
		seq:   &sequence{counters: counters, name: UsersCollection},
		getID: func(u *models.User) int { return u.ID },
		setID: func(u *models.User, id int) { u.ID = id },
	}
	categories := &mongoRepository[models.ArticleCategory]{
		coll:  db.Collection(CategoriesCollection),
		seq:   &sequence{counters: counters, name: CategoriesCollection},
		getID: func(c *models.ArticleCategory) int { return c.ID },
		setID: func(c *models.ArticleCategory, id int) { c.ID = id },
	}
	articles := &mongoRepository[models.Article]{
		coll:  db.Collection(ArticlesCollection),
		seq:   &sequence{counters: counters, name: ArticlesCollection},
		getID: func(a *models.Article) int { return a.ID },
		setID: func(a *models.Article, id int) { a.ID = id },
	}
	comments := &mongoRepository[models.Comment]{
		coll:  db.Collection(CommentsCollection),
		seq:   &sequence{counters: counters, name: CommentsCollection},
		getID: func(c *models.Comment) int { return c.ID },
		setID: func(c *models.Comment, id int) { c.ID = id },
	}

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := users.init(ctx, seed, &models.User{ID: 1, UserName: "User", Password: "123456", Email: "email"}); err != nil {
		return nil, err
	}
	if err := categories.init(ctx, seed, &models.ArticleCategory{ID: 1, CategoryName: "Default Category"}); err != nil {
		return nil, err
	}
	if err := articles.init(ctx, seed, &models.Article{
		ID: 1, UserID: 1, CategoryID: 1, Title: "Default Article", Content: "Default content", CreatedDate: now,
	}); err != nil {
		return nil, err
	}
	if err := comments.init(ctx, seed, &models.Comment{
		ID: 1, ArticleID: 1, UserID: 1, Content: "Default Content", CreateDate: now,
	}); err != nil {
		return nil, err
	}

	client := db.Client()
	return &Store{
		Kind:       KindMongo,
		Users:      users,
		Articles:   articles,
		Categories: categories,
		Comments:   comments,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}, nil
}

// ensureIndexes creates the unique indexes that back the uniqueness invariants
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName("ux_" + field),
		}
	}

	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("userName"), unique("email"),
	}); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	if _, err := db.Collection(ArticlesCollection).Indexes().CreateOne(ctx, unique("title")); err != nil {
		return fmt.Errorf("failed to create article indexes: %w", err)
	}
	return nil
}

// init seeds the default document into an empty collection and aligns the sequence
func (r *mongoRepository[T]) init(ctx context.Context, seed bool, defaultDoc *T) error {
	if seed {
		count, err := r.coll.CountDocuments(ctx, bson.D{})
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", r.coll.Name(), err)
		}
		if count == 0 {
			if _, err := r.coll.InsertOne(ctx, defaultDoc); err != nil && !mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("failed to seed %s: %w", r.coll.Name(), err)
			}
		}
	}

	maxID, err := r.maxID(ctx)
	if err != nil {
		return err
	}
	return r.seq.atLeast(ctx, maxID)
}

// maxID returns the highest _id in the collection, 0 when empty
func (r *mongoRepository[T]) maxID(ctx context.Context) (int, error) {
	var doc struct {
		ID int `bson:"_id"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}).SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := r.coll.FindOne(ctx, bson.D{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read max id of %s: %w", r.coll.Name(), err)
	}
	return doc.ID, nil
}

func (r *mongoRepository[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoRepository[T]) Get(ctx context.Context, id int) (*T, error) {
	var item T
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoRepository[T]) Create(ctx context.Context, entity *T) error {
	id, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	r.setID(entity, id)

	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		return translateMongoError(err)
	}
	return nil
}

func (r *mongoRepository[T]) Update(ctx context.Context, entity *T) error {
	result, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: r.getID(entity)}}, entity)
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository[T]) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func translateMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
