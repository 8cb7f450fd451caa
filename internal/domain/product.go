package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Quantity    int64                `bson:"quantity" json:"quantity"`
	Categories  []primitive.ObjectID `bson:"categories" json:"categories"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}
