package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tapanbhakhar27/inventory-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.db.Collection("categories").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Category, err error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}

	cursor, err := r.db.Collection("categories").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoriesByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoriesByIDs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) AddCategories(ctx context.Context, data []domain.Category) (inserted int, err error) {
	docs := make([]interface{}, 0, len(data))
	for _, category := range data {
		docs = append(docs, category)
	}

	result, err := r.db.Collection("categories").InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategories").Msg("")
		return
	}

	return len(result.InsertedIDs), nil
}

func (r *MongoDBCategoryRepositoryImpl) DeleteAllCategories(ctx context.Context) (err error) {
	_, err = r.db.Collection("categories").DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAllCategories").Msg("")
	}

	return
}
