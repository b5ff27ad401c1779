package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the subset of collection operations the services use.
// Documents are loosely typed, so reads always decode into bson.M.
type Collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error)
	FindOne(ctx context.Context, filter interface{}) (bson.M, error)
	InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	EstimatedDocumentCount(ctx context.Context) (int64, error)
}

// MongoCollection adapts *mongo.Collection to Collection.
type MongoCollection struct {
	coll *mongo.Collection
}

func NewMongoCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{coll: coll}
}

func (m *MongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error) {
	cursor, err := m.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOne returns mongo.ErrNoDocuments when nothing matches.
func (m *MongoCollection) FindOne(ctx context.Context, filter interface{}) (bson.M, error) {
	var doc bson.M
	if err := m.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *MongoCollection) InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	return m.coll.InsertOne(ctx, document)
}

func (m *MongoCollection) UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return m.coll.UpdateOne(ctx, filter, update, opts...)
}

func (m *MongoCollection) DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {
	return m.coll.DeleteOne(ctx, filter)
}

func (m *MongoCollection) EstimatedDocumentCount(ctx context.Context) (int64, error) {
	return m.coll.EstimatedDocumentCount(ctx)
}
