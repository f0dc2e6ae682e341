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

// EnquiryRepo handles MongoDB operations for enquiries
type EnquiryRepo interface {
	Create(ctx context.Context, enquiry *model.Enquiry) (string, error)
	GetByID(ctx context.Context, id string) (*model.Enquiry, error)
	List(ctx context.Context, status model.EnquiryStatus) ([]*model.Enquiry, error)
	UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) error
}

type enquiryRepo struct {
	collection *mongo.Collection
}

// NewEnquiryRepo creates a new enquiry repository
func NewEnquiryRepo(db *mongo.Database) EnquiryRepo {
	return &enquiryRepo{
		collection: db.Collection("enquiries"),
	}
}

func (r *enquiryRepo) Create(ctx context.Context, enquiry *model.Enquiry) (string, error) {
	enquiry.Status = model.EnquiryStatusNew
	enquiry.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, enquiry)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *enquiryRepo) GetByID(ctx context.Context, id string) (*model.Enquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var enquiry model.Enquiry
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&enquiry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	enquiry.ID = id
	return &enquiry, nil
}

func (r *enquiryRepo) List(ctx context.Context, status model.EnquiryStatus) ([]*model.Enquiry, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enquiries []*model.Enquiry
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *enquiryRepo) UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	return err
}
