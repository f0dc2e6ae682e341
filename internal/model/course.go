package model

import "time"

// Course is a sellable course managed by admins
type Course struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	Price       int64     `json:"price" bson:"price"` // Minor currency units
	Currency    string    `json:"currency" bson:"currency"`
	Published   bool      `json:"published" bson:"published"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
