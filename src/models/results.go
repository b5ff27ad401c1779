package models

import "go.mongodb.org/mongo-driver/mongo"

// InsertResult ผลลัพธ์ของการเพิ่มเอกสาร
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId" swaggertype:"string"`
}

// UpdateResult ผลลัพธ์ของการแก้ไขเอกสาร
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId" swaggertype:"string"`
}

// DeleteResult ผลลัพธ์ของการลบเอกสาร
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CountResult is the body of /foodsCount.
type CountResult struct {
	Count int64 `json:"count"`
}

func NewInsertResult(r *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: r.InsertedID}
}

func NewUpdateResult(r *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

func NewDeleteResult(r *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}
