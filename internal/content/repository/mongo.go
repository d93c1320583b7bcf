package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wolverinesfitness/backend/internal/content"
)

// Mongo is the MongoDB-backed store shared by every section collection.
// The two-parameter form lets the zero value of T be allocated for decoding
// while PT carries the Section methods.
type Mongo[T any, PT interface {
	*T
	content.Section
}] struct {
	col  *mongo.Collection
	sort bson.D
}

// NewMongo wraps a collection. The sort spec is fixed per section type:
// featured-first when the type exposes an isFeatured field.
func NewMongo[T any, PT interface {
	*T
	content.Section
}](col *mongo.Collection) *Mongo[T, PT] {
	var zero T
	sort := bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}
	if _, ok := PT(&zero).Field("isFeatured"); ok {
		sort = append(bson.D{{Key: "isFeatured", Value: -1}}, sort...)
	}
	return &Mongo[T, PT]{col: col, sort: sort}
}

func (m *Mongo[T, PT]) Insert(ctx context.Context, doc PT) error {
	if doc.DocID() == primitive.NilObjectID.Hex() {
		_ = doc.SetDocID(primitive.NewObjectID().Hex())
	}
	doc.Stamp(time.Now().UTC())
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (m *Mongo[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, content.ErrNotFound
	}
	var doc T
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("find: %w", err)
	}
	return PT(&doc), nil
}

func (m *Mongo[T, PT]) First(ctx context.Context) (PT, error) {
	var doc T
	if err := m.col.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("find first: %w", err)
	}
	return PT(&doc), nil
}

// bsonFilter translates a ListQuery filter, mapping Min to a $gte clause.
func bsonFilter(q ListQuery) bson.M {
	filter := bson.M{}
	for k, v := range q.Filter {
		if min, ok := v.(Min); ok {
			filter[k] = bson.M{"$gte": min.Value}
			continue
		}
		filter[k] = v
	}
	return filter
}

func (m *Mongo[T, PT]) List(ctx context.Context, q ListQuery) ([]PT, error) {
	filter := bsonFilter(q)
	opts := options.Find().SetSort(m.sort)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cur.Close(ctx)
	out := []PT{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, PT(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return out, nil
}

func (m *Mongo[T, PT]) Replace(ctx context.Context, doc PT) error {
	oid, err := primitive.ObjectIDFromHex(doc.DocID())
	if err != nil {
		return content.ErrNotFound
	}
	doc.Stamp(time.Now().UTC())
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (m *Mongo[T, PT]) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return content.ErrNotFound
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (m *Mongo[T, PT]) Distinct(ctx context.Context, field string, q ListQuery) ([]string, error) {
	vals, err := m.col.Distinct(ctx, field, bsonFilter(q))
	if err != nil {
		return nil, fmt.Errorf("distinct: %w", err)
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Mongo[T, PT]) UnsetFlagExcept(ctx context.Context, flag, exceptID string) error {
	filter := bson.M{flag: true}
	if oid, err := primitive.ObjectIDFromHex(exceptID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	if _, err := m.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{flag: false}}); err != nil {
		return fmt.Errorf("unset %s: %w", flag, err)
	}
	return nil
}
