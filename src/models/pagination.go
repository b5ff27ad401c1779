package models

import "strings"

// FoodListParams ค่าค้นหา เรียงลำดับ และแบ่งหน้าของ /all-foods
type FoodListParams struct {
	Name      string `query:"name"`
	SortField string `query:"sortField"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc ascending descending 1 -1"`
	Page      int64  `query:"page" validate:"min=0"`
	Size      int64  `query:"size" validate:"min=0"`
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *FoodListParams) GetSkip() int64 {
	return p.Page * p.Size
}

// HasSort reports whether both sort parameters were supplied.
func (p *FoodListParams) HasSort() bool {
	return p.SortField != "" && p.SortOrder != ""
}

// GetSortOrder แปลงทิศทางการเรียงเป็น 1 (asc) หรือ -1 (desc)
func (p *FoodListParams) GetSortOrder() int {
	switch strings.ToLower(p.SortOrder) {
	case "desc", "descending", "-1":
		return -1
	}
	return 1
}
