package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

const likesCollection = "likes"

// LikeRepository stores the user↔vacation like relation. The unique pair
// index makes Add naturally idempotent.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(likesCollection)}
}

func (r *LikeRepository) Add(ctx context.Context, userID, vacationID int64) (bool, error) {
	_, err := r.coll.InsertOne(ctx, domain.Like{UserID: userID, VacationID: vacationID})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, nil
}

func (r *LikeRepository) Remove(ctx context.Context, userID, vacationID int64) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "vacation_id": vacationID})
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) CountForVacation(ctx context.Context, vacationID int64) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"vacation_id": vacationID})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}

func (r *LikeRepository) ListForUser(ctx context.Context, userID int64) ([]int64, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer cursor.Close(ctx)

	var likes []domain.Like
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, fmt.Errorf("decode likes: %w", err)
	}
	ids := make([]int64, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.VacationID)
	}
	return ids, nil
}

func (r *LikeRepository) DeleteForVacation(ctx context.Context, vacationID int64) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"vacation_id": vacationID})
	if err != nil {
		return 0, fmt.Errorf("delete likes: %w", err)
	}
	return res.DeletedCount, nil
}
