package models

// ชื่อ field ของเอกสารอาหาร (document ไม่มี schema ตายตัว)
const (
	FoodFieldID       = "_id"
	FoodFieldName     = "name"
	FoodFieldImage    = "image"
	FoodFieldCategory = "category"
	FoodFieldPrice    = "price"
	FoodFieldQuantity = "quantity"
	FoodFieldCount    = "count"
	FoodFieldEmail    = "email"
)

// TopFoodsLimit จำนวนอาหารขายดีที่แสดงสูงสุด
const TopFoodsLimit = 6

// FoodSummaryFields are the fields returned by a name-filtered listing.
var FoodSummaryFields = []string{FoodFieldName, FoodFieldImage, FoodFieldCategory, FoodFieldPrice}

// TopFoodFields adds the order count to the summary fields.
var TopFoodFields = []string{FoodFieldName, FoodFieldImage, FoodFieldCategory, FoodFieldPrice, FoodFieldCount}
