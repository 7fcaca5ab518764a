package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a tracked user. Usernames are stored normalized
// (first rune uppercased, remainder lowercased) and are unique.
type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
}
