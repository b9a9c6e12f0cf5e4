package domain

import "time"

// Country is a destination a vacation can point at.
type Country struct {
	ID   int64  `json:"country_id" bson:"country_id"`
	Name string `json:"country_name" bson:"country_name"`
}

// Vacation is a bookable trip offer managed through the admin panel.
type Vacation struct {
	ID          int64     `json:"vacation_id" bson:"vacation_id"`
	CountryID   int64     `json:"country_id" bson:"country_id"`
	Description string    `json:"description" bson:"description"`
	StartsAt    time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt      time.Time `json:"ends_at" bson:"ends_at"`
	Price       float64   `json:"price" bson:"price"`
	Currency    string    `json:"currency" bson:"currency"`
	ImageName   string    `json:"image_name" bson:"image_name"`
}

// Like marks that a user liked a vacation. The pair is unique.
type Like struct {
	UserID     int64 `json:"user_id" bson:"user_id"`
	VacationID int64 `json:"vacation_id" bson:"vacation_id"`
}
