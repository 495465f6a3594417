package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

const carCollection = "cars"

type MongoCarRepository struct {
	coll *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *MongoCarRepository {
	return &MongoCarRepository{coll: db.Collection(carCollection)}
}

type carDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Plate        string             `bson:"plate"`
	Manufacture  string             `bson:"manufacture"`
	Model        string             `bson:"model"`
	Image        string             `bson:"image,omitempty"`
	RentPerDay   int64              `bson:"rent_per_day"`
	Capacity     int                `bson:"capacity"`
	Description  string             `bson:"description,omitempty"`
	AvailableAt  int64              `bson:"available_at"`
	Transmission string             `bson:"transmission"`
	Available    bool               `bson:"available"`
	Type         string             `bson:"type"`
	Year         string             `bson:"year"`
	Options      []string           `bson:"options,omitempty"`
	Specs        []string           `bson:"specs,omitempty"`
	CreatedBy    string             `bson:"created_by,omitempty"`
	UpdatedBy    string             `bson:"updated_by,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoCarRepository) List(ctx context.Context, filter ports.ListCarsFilter) ([]*domain.Car, error) {
	skip := int64((filter.Page - 1) * filter.Size)
	limit := int64(filter.Size)

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, searchQuery(filter.Search), opts)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer cur.Close(ctx)

	var cars []*domain.Car
	for cur.Next(ctx) {
		var doc carDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode car: %w", err)
		}
		cars = append(cars, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cars cursor: %w", err)
	}
	return cars, nil
}

func (r *MongoCarRepository) Count(ctx context.Context, filter ports.ListCarsFilter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, searchQuery(filter.Search))
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return n, nil
}

func (r *MongoCarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}

	var doc carDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoCarRepository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	doc := fromDomain(car)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert car: %w", err)
	}

	created := *car
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoCarRepository) Update(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	oid, err := primitive.ObjectIDFromHex(car.ID)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}

	doc := fromDomain(car)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCarNotFound
	}
	return car, nil
}

func (r *MongoCarRepository) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCarNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("remove car: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

// searchQuery builds a case-insensitive partial match over the fields a
// renter would search by.
func searchQuery(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: search, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"plate": re},
		bson.M{"manufacture": re},
		bson.M{"model": re},
	}}
}

func fromDomain(car *domain.Car) carDoc {
	return carDoc{
		Plate:        car.Plate,
		Manufacture:  car.Manufacture,
		Model:        car.Model,
		Image:        car.Image,
		RentPerDay:   car.RentPerDay,
		Capacity:     car.Capacity,
		Description:  car.Description,
		AvailableAt:  timeToUnix(car.AvailableAt),
		Transmission: car.Transmission,
		Available:    car.Available,
		Type:         car.Type,
		Year:         car.Year,
		Options:      car.Options,
		Specs:        car.Specs,
		CreatedBy:    car.CreatedBy,
		UpdatedBy:    car.UpdatedBy,
		CreatedAt:    car.CreatedAt.Unix(),
		UpdatedAt:    car.UpdatedAt.Unix(),
	}
}

func (d carDoc) toDomain() *domain.Car {
	return &domain.Car{
		ID:           d.ID.Hex(),
		Plate:        d.Plate,
		Manufacture:  d.Manufacture,
		Model:        d.Model,
		Image:        d.Image,
		RentPerDay:   d.RentPerDay,
		Capacity:     d.Capacity,
		Description:  d.Description,
		AvailableAt:  unixToTime(d.AvailableAt),
		Transmission: d.Transmission,
		Available:    d.Available,
		Type:         d.Type,
		Year:         d.Year,
		Options:      d.Options,
		Specs:        d.Specs,
		CreatedBy:    d.CreatedBy,
		UpdatedBy:    d.UpdatedBy,
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}
