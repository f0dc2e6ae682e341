package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"eduforms/internal/model"
)

// CourseRepo handles MongoDB operations for courses
type CourseRepo interface {
	Create(ctx context.Context, course *model.Course) (string, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context, publishedOnly bool) ([]*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
}

type courseRepo struct {
	collection *mongo.Collection
}

// NewCourseRepo creates a new course repository
func NewCourseRepo(db *mongo.Database) CourseRepo {
	return &courseRepo{
		collection: db.Collection("courses"),
	}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) (string, error) {
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var course model.Course
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	course.ID = id
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, publishedOnly bool) ([]*model.Course, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []*model.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return err
	}

	course.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, course)
	return err
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
