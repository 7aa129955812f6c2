package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Users are created on registration and
// read on login; they are never mutated or deleted by the application.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // stored lowercased
	PasswordHash string             `bson:"password" json:"-"`  // never serialized
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
