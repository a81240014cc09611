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

const collectionCountries = "countries"

type CountryRepository struct {
	col *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{col: db.Collection(collectionCountries)}
}

type countryDoc struct {
	ID               primitive.ObjectID      `bson:"_id,omitempty"`
	Name             string                  `bson:"name"`
	Code             string                  `bson:"code"`
	Currency         string                  `bson:"currency"`
	Language         string                  `bson:"language"`
	EmergencyNumbers domain.EmergencyNumbers `bson:"emergency_numbers"`
	VisaRequirements string                  `bson:"visa_requirements"`
	Guides           []domain.GuideEntry     `bson:"guides,omitempty"`
	Transport        []domain.TransportEntry `bson:"transport,omitempty"`
	HagglingTips     []domain.HagglingTip    `bson:"haggling_tips,omitempty"`
	CreatedAt        time.Time               `bson:"created_at"`
	UpdatedAt        time.Time               `bson:"updated_at"`
}

func toCountryDoc(c *domain.Country) (*countryDoc, error) {
	doc := &countryDoc{
		Name:             c.Name,
		Code:             c.Code,
		Currency:         c.Currency,
		Language:         c.Language,
		EmergencyNumbers: c.EmergencyNumbers,
		VisaRequirements: c.VisaRequirements,
		Guides:           c.Guides,
		Transport:        c.Transport,
		HagglingTips:     c.HagglingTips,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.ID != "" {
		id, err := primitive.ObjectIDFromHex(c.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid country id %q: %w", c.ID, err)
		}
		doc.ID = id
	}
	return doc, nil
}

func (d *countryDoc) toDomain() *domain.Country {
	return &domain.Country{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Code:             d.Code,
		Currency:         d.Currency,
		Language:         d.Language,
		EmergencyNumbers: d.EmergencyNumbers,
		VisaRequirements: d.VisaRequirements,
		Guides:           d.Guides,
		Transport:        d.Transport,
		HagglingTips:     d.HagglingTips,
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}
}

// Create inserts a new country. Code collisions surface as ErrCountryExists
// via the unique index.
func (r *CountryRepository) Create(ctx context.Context, c *domain.Country) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toCountryDoc(c)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCountryExists
		}
		return nil, fmt.Errorf("insert country: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CountryRepository) FindByCode(ctx context.Context, code string) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc countryDoc
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns the summary projection of every country.
func (r *CountryRepository) List(ctx context.Context) ([]ports.CountrySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{
			"name":              1,
			"code":              1,
			"currency":          1,
			"language":          1,
			"emergency_numbers": 1,
			"visa_requirements": 1,
		}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := make([]ports.CountrySummary, 0)
	for cursor.Next(ctx) {
		var doc countryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode country: %w", err)
		}
		summaries = append(summaries, ports.CountrySummary{
			Name:             doc.Name,
			Code:             doc.Code,
			Currency:         doc.Currency,
			Language:         doc.Language,
			EmergencyNumbers: doc.EmergencyNumbers,
			VisaRequirements: doc.VisaRequirements,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return summaries, nil
}

// Update replaces the stored document, matched by code.
func (r *CountryRepository) Update(ctx context.Context, c *domain.Country) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toCountryDoc(c)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"code": c.Code}, doc)
	if err != nil {
		return fmt.Errorf("update country: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

// Delete removes the document permanently.
func (r *CountryRepository) Delete(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

// EnsureIndexes creates the unique code index.
func (r *CountryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
