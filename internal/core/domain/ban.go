package domain

import "time"

// Ban is a time-bounded account restriction. Records are never mutated:
// an unban deletes the active ones, expired history stays behind.
type Ban struct {
	ID        int64     `json:"ban_id" bson:"ban_id"`
	UserID    int64     `json:"user_id" bson:"user_id"`
	Reason    string    `json:"reason" bson:"reason"`
	UntilAt   time.Time `json:"until_at" bson:"until_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Active reports whether the ban is still in force at the given instant.
func (b Ban) Active(now time.Time) bool {
	return b.UntilAt.After(now)
}
