package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"eduforms/internal/model"
)

// WebinarRepo handles MongoDB operations for webinars
type WebinarRepo interface {
	Create(ctx context.Context, webinar *model.Webinar) (string, error)
	GetByID(ctx context.Context, id string) (*model.Webinar, error)
	List(ctx context.Context) ([]*model.Webinar, error)
	ListByCourse(ctx context.Context, courseID string) ([]*model.Webinar, error)
	Update(ctx context.Context, webinar *model.Webinar) error
	Delete(ctx context.Context, id string) error
}

type webinarRepo struct {
	collection *mongo.Collection
}

// NewWebinarRepo creates a new webinar repository
func NewWebinarRepo(db *mongo.Database) WebinarRepo {
	return &webinarRepo{
		collection: db.Collection("webinars"),
	}
}

func (r *webinarRepo) Create(ctx context.Context, webinar *model.Webinar) (string, error) {
	webinar.CreatedAt = time.Now()
	webinar.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, webinar)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *webinarRepo) GetByID(ctx context.Context, id string) (*model.Webinar, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var webinar model.Webinar
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&webinar)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	webinar.ID = id
	return &webinar, nil
}

func (r *webinarRepo) List(ctx context.Context) ([]*model.Webinar, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var webinars []*model.Webinar
	if err := cursor.All(ctx, &webinars); err != nil {
		return nil, err
	}
	return webinars, nil
}

func (r *webinarRepo) ListByCourse(ctx context.Context, courseID string) ([]*model.Webinar, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var webinars []*model.Webinar
	if err := cursor.All(ctx, &webinars); err != nil {
		return nil, err
	}
	return webinars, nil
}

func (r *webinarRepo) Update(ctx context.Context, webinar *model.Webinar) error {
	oid, err := primitive.ObjectIDFromHex(webinar.ID)
	if err != nil {
		return err
	}

	webinar.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, webinar)
	return err
}

func (r *webinarRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
