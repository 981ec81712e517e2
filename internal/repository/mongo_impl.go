package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"weather-entities/internal/model"
)

type mongoEntityRepository struct {
	coll *mongo.Collection
}

// entityDoc is the stored shape of an entity. The identity stays an
// ObjectID at this layer and is remapped to its public hex form on the way
// out.
type entityDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	StartDate   time.Time          `bson:"start_date"`
	EndDate     time.Time          `bson:"end_date"`
	TempMin     float64            `bson:"temp_min"`
	TempMax     float64            `bson:"temp_max"`
	TempAvg     float64            `bson:"temp_avg"`
	CountryName string             `bson:"country_name"`
	TownName    string             `bson:"town_name"`
}

func (d entityDoc) toModel() model.Entity {
	e := model.Entity{
		Name:        d.Name,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		TempMin:     d.TempMin,
		TempMax:     d.TempMax,
		TempAvg:     d.TempAvg,
		CountryName: d.CountryName,
		TownName:    d.TownName,
	}
	if !d.ID.IsZero() {
		e.ID = d.ID.Hex()
	}
	return e
}

func docFromModel(e model.Entity) entityDoc {
	return entityDoc{
		Name:        e.Name,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		TempMin:     e.TempMin,
		TempMax:     e.TempMax,
		TempAvg:     e.TempAvg,
		CountryName: e.CountryName,
		TownName:    e.TownName,
	}
}

// NewMongoRepository wraps a document collection. It creates the unique
// index on name, which makes the business key unambiguous for every
// name-keyed operation.
func NewMongoRepository(ctx context.Context, coll *mongo.Collection) (EntityRepository, error) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create name index: %w", err)
	}
	return &mongoEntityRepository{coll: coll}, nil
}

func (r *mongoEntityRepository) Insert(ctx context.Context, e model.Entity) (string, error) {
	res, err := r.coll.InsertOne(ctx, docFromModel(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateName
		}
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *mongoEntityRepository) FindByID(ctx context.Context, id string) (*model.Entity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc entityDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e := doc.toModel()
	return &e, nil
}

func (r *mongoEntityRepository) FindByName(ctx context.Context, name string) (*model.Entity, error) {
	var doc entityDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e := doc.toModel()
	return &e, nil
}

func (r *mongoEntityRepository) UpdateByName(ctx context.Context, name string, fields map[string]interface{}) (*model.Entity, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc entityDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"name": name}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e := doc.toModel()
	return &e, nil
}

func (r *mongoEntityRepository) DeleteByName(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoEntityRepository) List(ctx context.Context, q model.ListQuery) ([]model.Entity, error) {
	if !sortableFields[q.SortBy] {
		return nil, ErrBadSortField
	}

	dir := 1
	if q.Order == model.OrderDescending {
		dir = -1
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: q.SortBy, Value: dir}}).
		SetSkip(q.Skip).
		SetLimit(q.Limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entities := make([]model.Entity, 0, q.Limit)
	for cursor.Next(ctx) {
		var doc entityDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		entities = append(entities, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *mongoEntityRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
