package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sequence hands out integer ids from a counter document in the Counters collection.
// Increments are atomic on the server, so concurrent writers never share an id.
type sequence struct {
	counters *mongo.Collection
	name     string
}

type counterDoc struct {
	Name string `bson:"_id"`
	Seq  int    `bson:"seq"`
}

// next increments the counter and returns the new value
func (s *sequence) next(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc counterDoc
	// Two first-time upserts can race on the counter _id; the loser retries against the winner's document.
	for attempt := 0; attempt < 2; attempt++ {
		err := s.counters.FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: s.name}},
			bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: 1}}}},
			opts,
		).Decode(&doc)
		if err == nil {
			return doc.Seq, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("failed to allocate %s id: %w", s.name, err)
		}
	}
	return 0, fmt.Errorf("failed to allocate %s id: counter contention", s.name)
}

// atLeast raises the counter to value if it is lower
func (s *sequence) atLeast(ctx context.Context, value int) error {
	_, err := s.counters.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: s.name}},
		bson.D{{Key: "$max", Value: bson.D{{Key: "seq", Value: value}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to initialize %s sequence: %w", s.name, err)
	}
	return nil
}
