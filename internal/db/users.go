package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateUser inserts a new user and returns it with the generated ID.
// The email is lowercased before storage.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error) {
	user := &User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := db.users.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// GetUserByEmail looks up a user by email, case-insensitively.
// Returns (nil, nil) when no user exists with that email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := db.users.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// CheckEmailExists reports whether a user with the given email already exists.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	count, err := db.users.CountDocuments(ctx, bson.M{"email": strings.ToLower(email)})
	if err != nil {
		return false, fmt.Errorf("failed to count users by email: %w", err)
	}
	return count > 0, nil
}

// CountUsers returns the total number of registered users.
func (db *DB) CountUsers(ctx context.Context) (int64, error) {
	count, err := db.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
