package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

const countriesCollection = "countries"

type CountryRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{db: db, coll: db.Collection(countriesCollection)}
}

func (r *CountryRepository) Create(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	id, err := nextID(ctx, r.db, "country_id")
	if err != nil {
		return nil, err
	}
	country.ID = id
	if _, err := r.coll.InsertOne(ctx, country); err != nil {
		return nil, fmt.Errorf("insert country: %w", err)
	}
	return country, nil
}

func (r *CountryRepository) FindByID(ctx context.Context, id int64) (*domain.Country, error) {
	var country domain.Country
	if err := r.coll.FindOne(ctx, bson.M{"country_id": id}).Decode(&country); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return &country, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]*domain.Country, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer cursor.Close(ctx)

	var countries []*domain.Country
	if err := cursor.All(ctx, &countries); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return countries, nil
}

func (r *CountryRepository) Update(ctx context.Context, country *domain.Country) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"country_id": country.ID}, country)
	if err != nil {
		return fmt.Errorf("update country: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"country_id": id})
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}
