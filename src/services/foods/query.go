package foods

import (
	"FoodiePal-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func projectionOf(fields []string) bson.M {
	proj := bson.M{}
	for _, f := range fields {
		proj[f] = 1
	}
	return proj
}

// ListFoodsQuery builds the filter and find options for /all-foods.
//
// Projection and sort only apply when filtering by name; an unfiltered
// listing returns full documents with skip/limit alone.
func ListFoodsQuery(p models.FoodListParams) (bson.M, *options.FindOptions) {
	opts := options.Find().SetSkip(p.GetSkip()).SetLimit(p.Size)
	if p.Name == "" {
		return bson.M{}, opts
	}

	opts.SetProjection(projectionOf(models.FoodSummaryFields))
	if p.HasSort() {
		opts.SetSort(bson.D{{Key: p.SortField, Value: p.GetSortOrder()}})
	}
	return bson.M{models.FoodFieldName: p.Name}, opts
}

// TopFoodsQuery เรียงตามจำนวนที่ถูกสั่งมากที่สุด จำกัด 6 รายการ
func TopFoodsQuery() (bson.M, *options.FindOptions) {
	opts := options.Find().
		SetProjection(projectionOf(models.TopFoodFields)).
		SetSort(bson.D{{Key: models.FoodFieldCount, Value: -1}}).
		SetLimit(models.TopFoodsLimit)
	return bson.M{}, opts
}

// OwnerFilter matches foods added by email, or every food when email is empty.
func OwnerFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{models.FoodFieldEmail: email}
}

// PatchUpdate สร้าง $set จาก patch โดยตัด _id ออก (แก้ไข _id ไม่ได้)
func PatchUpdate(patch bson.M) bson.M {
	set := bson.M{}
	for k, v := range patch {
		if k == models.FoodFieldID {
			continue
		}
		set[k] = v
	}
	return bson.M{"$set": set}
}

// QuantityUpdate decrements quantity and increments count by one.
func QuantityUpdate() bson.M {
	return bson.M{"$inc": bson.M{models.FoodFieldQuantity: -1, models.FoodFieldCount: 1}}
}
