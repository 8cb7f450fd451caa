package repository

import (
	"context"
	"regexp"

	"github.com/rs/zerolog/log"
	"github.com/tapanbhakhar27/inventory-service/internal/domain"
	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

// GetProductByName matches the name case-insensitively and exactly. The zero
// Product with a nil error means no match.
func (r *MongoDBProductRepositoryImpl) GetProductByName(ctx context.Context, name string) (product domain.Product, err error) {
	filter := bson.D{{Key: "name", Value: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Product{}, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByName").Msg("")
		return
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product, err error) {
	query, err := buildProductQuery(filter)
	if err != nil {
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit != 0 && filter.Page != 0 {
		opts = opts.SetSkip((filter.Page - 1) * filter.Limit).SetLimit(filter.Limit)
	}

	cursor, err := r.db.Collection("products").Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, filter dto.ProductFilter) (total int64, err error) {
	query, err := buildProductQuery(filter)
	if err != nil {
		return
	}

	total, err = r.db.Collection("products").CountDocuments(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return
	}

	return total, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("products").FindOneAndDelete(ctx, filter).Decode(&product)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		}
		return
	}

	return product, nil
}

// buildProductQuery translates the filter into a mongo query. Malformed
// category ids are reported as cast failures so the classifier can name the
// offending value.
func buildProductQuery(filter dto.ProductFilter) (bson.M, error) {
	query := bson.M{}

	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}

	if len(filter.Categories) > 0 {
		ids := make([]primitive.ObjectID, 0, len(filter.Categories))
		for _, raw := range filter.Categories {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return nil, &errs.InvalidID{Field: "categories", Kind: "ObjectID", Value: raw}
			}
			ids = append(ids, id)
		}
		query["categories"] = bson.M{"$in": ids}
	}

	return query, nil
}
