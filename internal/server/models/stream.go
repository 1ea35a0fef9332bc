package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stream is an embedded post owned by a single user. Author always references
// the user that created the stream; it is stamped server-side and never taken
// from client input.
type Stream struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	URL         string             `bson:"url"`
	Author      primitive.ObjectID `bson:"author"`
	CreatedAt   time.Time          `bson:"created_at"`
}
