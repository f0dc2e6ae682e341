package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eduforms/internal/model"
)

// NotificationRepo handles MongoDB operations for notifications
type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) (string, error)
	List(ctx context.Context) ([]*model.Notification, error)
	Delete(ctx context.Context, id string) error
}

type notificationRepo struct {
	collection *mongo.Collection
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepo{
		collection: db.Collection("notifications"),
	}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) (string, error) {
	n.PublishedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, n)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *notificationRepo) List(ctx context.Context) ([]*model.Notification, error) {
	opts := options.Find().SetSort(bson.M{"publishedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
