package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

const vacationsCollection = "vacations"

type VacationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewVacationRepository(db *mongo.Database) *VacationRepository {
	return &VacationRepository{db: db, coll: db.Collection(vacationsCollection)}
}

func (r *VacationRepository) Create(ctx context.Context, vacation *domain.Vacation) (*domain.Vacation, error) {
	id, err := nextID(ctx, r.db, "vacation_id")
	if err != nil {
		return nil, err
	}
	vacation.ID = id
	if _, err := r.coll.InsertOne(ctx, vacation); err != nil {
		return nil, fmt.Errorf("insert vacation: %w", err)
	}
	return vacation, nil
}

func (r *VacationRepository) FindByID(ctx context.Context, id int64) (*domain.Vacation, error) {
	var vacation domain.Vacation
	if err := r.coll.FindOne(ctx, bson.M{"vacation_id": id}).Decode(&vacation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVacationNotFound
		}
		return nil, fmt.Errorf("find vacation: %w", err)
	}
	return &vacation, nil
}

func (r *VacationRepository) List(ctx context.Context) ([]*domain.Vacation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer cursor.Close(ctx)

	var vacations []*domain.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, fmt.Errorf("decode vacations: %w", err)
	}
	return vacations, nil
}

func (r *VacationRepository) Update(ctx context.Context, vacation *domain.Vacation) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"vacation_id": vacation.ID}, vacation)
	if err != nil {
		return fmt.Errorf("update vacation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVacationNotFound
	}
	return nil
}

func (r *VacationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"vacation_id": id})
	if err != nil {
		return fmt.Errorf("delete vacation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVacationNotFound
	}
	return nil
}
