package repository

import (
	"context"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apierrors "exertrack/internal/errors"
	"exertrack/internal/model"
)

// UserRepository defines user persistence operations. Users are never
// updated or deleted.
type UserRepository interface {
	Create(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed repository over the users
// collection.
func NewUserRepository(database *mongo.Database) UserRepository {
	return &userRepository{coll: database.Collection("users")}
}

// NormalizeUsername uppercases the first rune and lowercases the rest,
// unconditionally. The unique index on username therefore collapses any
// casing of the same name.
func NormalizeUsername(username string) string {
	runes := []rune(strings.ToLower(username))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func (r *userRepository) Create(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{Username: NormalizeUsername(username)}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierrors.ErrDuplicateUsername
		}
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	// non-nil so an empty store renders as a JSON array, not null
	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, apierrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
