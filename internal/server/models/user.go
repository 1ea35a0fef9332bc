// Package models defines the persistent document types stored in MongoDB.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. PasswordHash holds the bcrypt digest of the
// user's password and must never cross the API boundary.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
}
