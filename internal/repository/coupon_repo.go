package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"eduforms/internal/model"
)

// CouponRepo handles MongoDB operations for coupons
type CouponRepo interface {
	Create(ctx context.Context, coupon *model.Coupon) (string, error)
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]*model.Coupon, error)
	Delete(ctx context.Context, id string) error
}

type couponRepo struct {
	collection *mongo.Collection
}

// NewCouponRepo creates a new coupon repository
func NewCouponRepo(db *mongo.Database) CouponRepo {
	return &couponRepo{
		collection: db.Collection("coupons"),
	}
}

func (r *couponRepo) Create(ctx context.Context, coupon *model.Coupon) (string, error) {
	coupon.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *couponRepo) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepo) List(ctx context.Context) ([]*model.Coupon, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*model.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
