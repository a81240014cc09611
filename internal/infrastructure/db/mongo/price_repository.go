package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/ports"
)

const collectionPrices = "prices"

type PriceRepository struct {
	col *mongo.Collection
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{col: db.Collection(collectionPrices)}
}

type priceDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Country    string             `bson:"country"`
	Category   string             `bson:"category"`
	Item       string             `bson:"item"`
	Price      float64            `bson:"price"`
	Currency   string             `bson:"currency"`
	Location   string             `bson:"location"`
	Notes      string             `bson:"notes,omitempty"`
	ReportedBy primitive.ObjectID `bson:"reported_by"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func toPriceDoc(p *domain.Price) (*priceDoc, error) {
	reporter, err := primitive.ObjectIDFromHex(p.ReportedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid reporter id %q: %w", p.ReportedBy, err)
	}
	doc := &priceDoc{
		Country:    p.Country,
		Category:   string(p.Category),
		Item:       p.Item,
		Price:      p.Price,
		Currency:   p.Currency,
		Location:   p.Location,
		Notes:      p.Notes,
		ReportedBy: reporter,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.ID != "" {
		id, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid price id %q: %w", p.ID, err)
		}
		doc.ID = id
	}
	return doc, nil
}

func (d *priceDoc) toDomain() *domain.Price {
	return &domain.Price{
		ID:         d.ID.Hex(),
		Country:    d.Country,
		Category:   domain.PriceCategory(d.Category),
		Item:       d.Item,
		Price:      d.Price,
		Currency:   d.Currency,
		Location:   d.Location,
		Notes:      d.Notes,
		ReportedBy: d.ReportedBy.Hex(),
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

// Create inserts a new price report document.
func (r *PriceRepository) Create(ctx context.Context, p *domain.Price) (*domain.Price, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toPriceDoc(p)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert price: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByID retrieves a single report. A syntactically invalid id can never
// name a record and maps straight to not-found.
func (r *PriceRepository) FindByID(ctx context.Context, id string) (*domain.Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc priceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("find price: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns a page matching the filter plus the total count ignoring
// pagination. Sort is created_at descending with _id descending as the
// deterministic tie-break.
func (r *PriceRepository) List(ctx context.Context, filter ports.ListPricesFilter) ([]*domain.Price, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Country != "" {
		query["country"] = filter.Country
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list prices: %w", err)
	}
	defer cursor.Close(ctx)

	var prices []*domain.Price
	for cursor.Next(ctx) {
		var doc priceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode price: %w", err)
		}
		prices = append(prices, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list prices: %w", err)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count prices: %w", err)
	}
	return prices, total, nil
}

// Update replaces the stored document with the given state.
func (r *PriceRepository) Update(ctx context.Context, p *domain.Price) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toPriceDoc(p)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPriceNotFound
	}
	return nil
}

// Delete removes the document permanently.
func (r *PriceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete price: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPriceNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes on the prices collection.
func (r *PriceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "country", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "reported_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
