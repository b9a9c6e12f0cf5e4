package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

const bansCollection = "bans"

// BanRepository stores ban records. Rows are append-only; only an unban
// deletes, and only the currently active rows.
type BanRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewBanRepository(db *mongo.Database) *BanRepository {
	return &BanRepository{db: db, coll: db.Collection(bansCollection)}
}

func (r *BanRepository) Insert(ctx context.Context, ban *domain.Ban) (*domain.Ban, error) {
	id, err := nextID(ctx, r.db, "ban_id")
	if err != nil {
		return nil, err
	}
	ban.ID = id
	if _, err := r.coll.InsertOne(ctx, ban); err != nil {
		return nil, fmt.Errorf("insert ban: %w", err)
	}
	return ban, nil
}

func (r *BanRepository) ActiveForUser(ctx context.Context, userID int64, now time.Time) ([]domain.Ban, error) {
	filter := bson.M{"user_id": userID, "until_at": bson.M{"$gt": now}}
	opts := options.Find().SetSort(bson.D{{Key: "until_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find active bans: %w", err)
	}
	defer cursor.Close(ctx)

	var bans []domain.Ban
	if err := cursor.All(ctx, &bans); err != nil {
		return nil, fmt.Errorf("decode bans: %w", err)
	}
	return bans, nil
}

func (r *BanRepository) DeleteActive(ctx context.Context, userID int64, now time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID, "until_at": bson.M{"$gt": now}})
	if err != nil {
		return 0, fmt.Errorf("delete active bans: %w", err)
	}
	return res.DeletedCount, nil
}
