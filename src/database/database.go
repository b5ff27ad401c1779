package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ชื่อ collection ที่ใช้ในระบบ
const (
	FoodCollectionName    = "allFoods"
	OrderCollectionName   = "orders"
	BookingCollectionName = "bookings"
	UserCollectionName    = "users"
)

// Collections รวม collection ทั้งหมดที่ handler ต้องใช้
type Collections struct {
	Foods    Collection
	Orders   Collection
	Bookings Collection
	Users    Collection
}

// Mongo ถือ client ที่ใช้ร่วมกันทุก request (driver ทำ connection pool ให้เอง)
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongoDB เชื่อมต่อกับ MongoDB และ ping เพื่อยืนยันการเชื่อมต่อ
func ConnectMongoDB(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Println("✅ MongoDB connected successfully")
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Collection รับ Collection จาก MongoDB
func (m *Mongo) Collection(name string) Collection {
	return NewMongoCollection(m.db.Collection(name))
}

// Collections returns the four collections the API works on.
func (m *Mongo) Collections() Collections {
	return Collections{
		Foods:    m.Collection(FoodCollectionName),
		Orders:   m.Collection(OrderCollectionName),
		Bookings: m.Collection(BookingCollectionName),
		Users:    m.Collection(UserCollectionName),
	}
}

// ListCollections แสดงรายชื่อ collection ในฐานข้อมูล
func (m *Mongo) ListCollections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// NewMemoryCollections สร้าง collections ในหน่วยความจำ สำหรับรัน local และ test
func NewMemoryCollections() Collections {
	return Collections{
		Foods:    NewMemoryCollection(),
		Orders:   NewMemoryCollection(),
		Bookings: NewMemoryCollection(),
		Users:    NewMemoryCollection(),
	}
}
