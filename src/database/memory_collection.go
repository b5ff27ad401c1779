package database

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MemoryCollection เก็บ document ไว้ในหน่วยความจำ
// รองรับเฉพาะ filter แบบเท่ากับ และ operator $gt/$gte/$lt/$lte/$ne,
// update แบบ $set/$inc, projection แบบ inclusion, sort, skip และ limit
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func NewMemoryCollection(docs ...bson.M) *MemoryCollection {
	m := &MemoryCollection{}
	for _, d := range docs {
		doc := copyDoc(d)
		if _, ok := doc["_id"]; !ok {
			doc["_id"] = primitive.NewObjectID()
		}
		m.docs = append(m.docs, doc)
	}
	return m
}

func (m *MemoryCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := asDoc(filter)
	if err != nil {
		return nil, err
	}
	fo := options.MergeFindOptions(opts...)

	m.mu.RLock()
	result := []bson.M{}
	for _, doc := range m.docs {
		if matches(doc, f) {
			result = append(result, copyDoc(doc))
		}
	}
	m.mu.RUnlock()

	if fo.Sort != nil {
		keys, err := asOrdered(fo.Sort)
		if err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		sortDocs(result, keys)
	}
	if fo.Skip != nil && *fo.Skip > 0 {
		skip := int(*fo.Skip)
		if skip > len(result) {
			skip = len(result)
		}
		result = result[skip:]
	}
	if fo.Limit != nil && *fo.Limit > 0 && int(*fo.Limit) < len(result) {
		result = result[:*fo.Limit]
	}
	if fo.Projection != nil {
		proj, err := asDoc(fo.Projection)
		if err != nil {
			return nil, fmt.Errorf("projection: %w", err)
		}
		for i, doc := range result {
			result[i] = project(doc, proj)
		}
	}
	return result, nil
}

func (m *MemoryCollection) FindOne(ctx context.Context, filter interface{}) (bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := asDoc(filter)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.docs {
		if matches(doc, f) {
			return copyDoc(doc), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *MemoryCollection) InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := asDoc(document)
	if err != nil {
		return nil, err
	}
	doc = copyDoc(doc)
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.docs {
		if equalValues(existing["_id"], doc["_id"]) {
			return nil, fmt.Errorf("duplicate key: _id %v", doc["_id"])
		}
	}
	m.docs = append(m.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (m *MemoryCollection) UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := asDoc(filter)
	if err != nil {
		return nil, err
	}
	u, err := asDoc(update)
	if err != nil {
		return nil, err
	}
	uo := options.MergeUpdateOptions(opts...)

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs {
		if !matches(doc, f) {
			continue
		}
		updated := copyDoc(doc)
		if err := applyUpdate(updated, u); err != nil {
			return nil, err
		}
		result := &mongo.UpdateResult{MatchedCount: 1}
		if !reflect.DeepEqual(doc, updated) {
			m.docs[i] = updated
			result.ModifiedCount = 1
		}
		return result, nil
	}

	if uo.Upsert == nil || !*uo.Upsert {
		return &mongo.UpdateResult{}, nil
	}

	doc := bson.M{}
	for k, v := range f {
		if !strings.HasPrefix(k, "$") && !isOperatorDoc(v) {
			doc[k] = v
		}
	}
	if err := applyUpdate(doc, u); err != nil {
		return nil, err
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, doc)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: doc["_id"]}, nil
}

func (m *MemoryCollection) DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := asDoc(filter)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, doc := range m.docs {
		if matches(doc, f) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (m *MemoryCollection) EstimatedDocumentCount(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.docs)), nil
}

func asDoc(v interface{}) (bson.M, error) {
	switch d := v.(type) {
	case nil:
		return bson.M{}, nil
	case bson.M:
		return d, nil
	case map[string]interface{}:
		return bson.M(d), nil
	case bson.D:
		out := make(bson.M, len(d))
		for _, e := range d {
			out[e.Key] = e.Value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported document type %T", v)
	}
}

func asOrdered(v interface{}) (bson.D, error) {
	switch d := v.(type) {
	case bson.D:
		return d, nil
	case bson.M:
		if len(d) > 1 {
			return nil, fmt.Errorf("ambiguous order for %d keys in bson.M", len(d))
		}
		out := bson.D{}
		for k, val := range d {
			out = append(out, bson.E{Key: k, Value: val})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported order type %T", v)
	}
}

func isOperatorDoc(v interface{}) bool {
	d, err := asDoc(v)
	if err != nil || len(d) == 0 {
		return false
	}
	for k := range d {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, present := doc[key]
		if isOperatorDoc(want) {
			ops, _ := asDoc(want)
			for op, arg := range ops {
				if !matchOperator(op, got, present, arg) {
					return false
				}
			}
			continue
		}
		if !present || !equalValues(got, want) {
			return false
		}
	}
	return true
}

func matchOperator(op string, got interface{}, present bool, arg interface{}) bool {
	if op == "$ne" {
		return !present || !equalValues(got, arg)
	}
	if !present {
		return false
	}
	c, ok := compareValues(got, arg)
	if !ok {
		return false
	}
	switch op {
	case "$gt":
		return c > 0
	case "$gte":
		return c >= 0
	case "$lt":
		return c < 0
	case "$lte":
		return c <= 0
	}
	return false
}

func applyUpdate(doc, update bson.M) error {
	for op, arg := range update {
		fields, err := asDoc(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		switch op {
		case "$set":
			for k, v := range fields {
				doc[k] = copyValue(v)
			}
		case "$inc":
			for k, v := range fields {
				sum, err := addNumbers(doc[k], v)
				if err != nil {
					return fmt.Errorf("$inc %s: %w", k, err)
				}
				doc[k] = sum
			}
		default:
			return fmt.Errorf("unsupported update operator %q", op)
		}
	}
	return nil
}

func project(doc, proj bson.M) bson.M {
	out := bson.M{}
	keepID := true
	if v, ok := proj["_id"]; ok && !truthy(v) {
		keepID = false
	}
	for k, v := range proj {
		if k == "_id" || !truthy(v) {
			continue
		}
		if val, ok := doc[k]; ok {
			out[k] = val
		}
	}
	if keepID {
		if id, ok := doc["_id"]; ok {
			out["_id"] = id
		}
	}
	return out
}

func sortDocs(docs []bson.M, keys bson.D) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, k := range keys {
			dir := 1
			if n, ok := toFloat(k.Value); ok && n < 0 {
				dir = -1
			}
			a, aok := docs[i][k.Key]
			b, bok := docs[j][k.Key]
			switch {
			case !aok && !bok:
				continue
			case !aok:
				return dir > 0
			case !bok:
				return dir < 0
			}
			c, ok := compareValues(a, b)
			if !ok || c == 0 {
				continue
			}
			return c*dir < 0
		}
		return false
	})
}

func truthy(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	if n, ok := toFloat(v); ok {
		return n != 0
	}
	return v != nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func isInteger(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64:
		return true
	}
	return false
}

func addNumbers(current, delta interface{}) (interface{}, error) {
	d, ok := toFloat(delta)
	if !ok {
		return nil, fmt.Errorf("non-numeric increment %v", delta)
	}
	if current == nil {
		return delta, nil
	}
	c, ok := toFloat(current)
	if !ok {
		return nil, fmt.Errorf("cannot increment non-numeric value %v", current)
	}
	if isInteger(current) && isInteger(delta) {
		return int64(c) + int64(d), nil
	}
	return c + d, nil
}

func compareValues(a, b interface{}) (int, bool) {
	if x, ok := toFloat(a); ok {
		y, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case primitive.ObjectID:
		y, ok := b.(primitive.ObjectID)
		if !ok {
			return 0, false
		}
		return bytes.Compare(x[:], y[:]), true
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func equalValues(a, b interface{}) bool {
	if c, ok := compareValues(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch x := v.(type) {
	case bson.M:
		return copyDoc(x)
	case map[string]interface{}:
		return map[string]interface{}(copyDoc(bson.M(x)))
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = copyValue(e)
		}
		return out
	case bson.A:
		out := make(bson.A, len(x))
		for i, e := range x {
			out[i] = copyValue(e)
		}
		return out
	}
	return v
}
