// Command seed populates the database with an admin account, a demo user,
// and sample country and price data for local development.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/ports"
	"github.com/nomadnav/travel-api/internal/infrastructure/config"
	mongodb "github.com/nomadnav/travel-api/internal/infrastructure/db/mongo"
	"github.com/nomadnav/travel-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	users := mongodb.NewUserRepository(db)
	countries := mongodb.NewCountryRepository(db)
	prices := mongodb.NewPriceRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := countries.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("country indexes failed")
	}
	if err := prices.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("price indexes failed")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Warn().Msg("ADMIN_PASSWORD not set, using the default development password")
	}

	seedUser(ctx, log, users, "admin", "admin@nomadnav.com", adminPassword, domain.RoleAdmin)
	demo := seedUser(ctx, log, users, "demo", "demo@nomadnav.com", "demo123", domain.RoleUser)

	for _, c := range sampleCountries() {
		if _, err := countries.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrCountryExists) {
				log.Info().Str("code", c.Code).Msg("country already seeded")
				continue
			}
			log.Fatal().Err(err).Str("code", c.Code).Msg("seed country failed")
		}
		log.Info().Str("code", c.Code).Msg("country seeded")
	}

	_, total, err := prices.List(ctx, ports.ListPricesFilter{Limit: 1})
	if err != nil {
		log.Fatal().Err(err).Msg("count prices failed")
	}
	if total > 0 {
		log.Info().Int64("total", total).Msg("prices already present, skipping samples")
		log.Info().Msg("seeding complete")
		return
	}

	for _, p := range samplePrices(demo.ID) {
		if _, err := prices.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("item", p.Item).Msg("seed price failed")
		}
		log.Info().Str("item", p.Item).Str("country", p.Country).Msg("price seeded")
	}

	log.Info().Msg("seeding complete")
}

// seedUser creates the account if absent and returns the stored user either
// way.
func seedUser(ctx context.Context, log zerolog.Logger, users ports.UserRepository, username, email, password, role string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password failed")
	}

	now := time.Now().UTC()
	user, err := users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			existing, findErr := users.FindByEmail(ctx, email)
			if findErr != nil {
				log.Fatal().Err(findErr).Str("email", email).Msg("lookup existing user failed")
			}
			log.Info().Str("username", username).Msg("user already seeded")
			return existing
		}
		log.Fatal().Err(err).Str("username", username).Msg("seed user failed")
	}

	log.Info().Str("username", username).Str("role", role).Msg("user seeded")
	return user
}

func sampleCountries() []*domain.Country {
	now := time.Now().UTC()
	return []*domain.Country{
		{
			Name:     "Thailand",
			Code:     "TH",
			Currency: "THB",
			Language: "Thai",
			EmergencyNumbers: domain.EmergencyNumbers{
				Police:        "191",
				Ambulance:     "1669",
				Fire:          "199",
				TouristPolice: "1155",
			},
			VisaRequirements: "Visa exemption for many nationalities, up to 30 days.",
			Guides: []domain.GuideEntry{
				{Title: "Getting around Bangkok", Content: "The BTS Skytrain and MRT cover most of the city. Buy a stored-value card to skip ticket queues."},
			},
			Transport: []domain.TransportEntry{
				{Type: domain.TransportMetro, Description: "BTS Skytrain and MRT subway in Bangkok.", Tips: "Avoid rush hour between 7-9am."},
				{Type: domain.TransportTaxi, Description: "Metered taxis are cheap and plentiful.", Tips: "Insist on the meter before getting in."},
			},
			HagglingTips: []domain.HagglingTip{
				{Title: "Markets", Description: "Start at half the asking price and settle around 70%."},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:     "Egypt",
			Code:     "EG",
			Currency: "EGP",
			Language: "Arabic",
			EmergencyNumbers: domain.EmergencyNumbers{
				Police:        "122",
				Ambulance:     "123",
				Fire:          "180",
				TouristPolice: "126",
			},
			VisaRequirements: "Visa on arrival available for many nationalities, 30 days.",
			Guides: []domain.GuideEntry{
				{Title: "Visiting the pyramids", Content: "Go early to beat the heat and the crowds. Tickets are cheaper at the official booth."},
			},
			Transport: []domain.TransportEntry{
				{Type: domain.TransportMetro, Description: "Cairo Metro is the fastest way across the city.", Tips: "Women-only carriages are in the middle of the train."},
				{Type: domain.TransportRideHailing, Description: "Ride-hailing apps work well in Cairo and Alexandria.", Tips: "Cheaper and easier than negotiating taxi fares."},
			},
			HagglingTips: []domain.HagglingTip{
				{Title: "Bazaars", Description: "Haggling is expected everywhere. Walking away often halves the price."},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func samplePrices(reporterID string) []*domain.Price {
	now := time.Now().UTC()
	return []*domain.Price{
		{
			Country:    "Thailand",
			Category:   domain.CategoryFood,
			Item:       "Pad Thai (street stall)",
			Price:      60,
			Currency:   "THB",
			Location:   "Bangkok",
			Notes:      "Chinatown stalls are the best value.",
			ReportedBy: reporterID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			Country:    "Thailand",
			Category:   domain.CategoryTransport,
			Item:       "BTS single ride",
			Price:      45,
			Currency:   "THB",
			Location:   "Bangkok",
			ReportedBy: reporterID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			Country:    "Egypt",
			Category:   domain.CategoryFood,
			Item:       "Koshari bowl",
			Price:      35,
			Currency:   "EGP",
			Location:   "Cairo",
			ReportedBy: reporterID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			Country:    "Egypt",
			Category:   domain.CategoryActivities,
			Item:       "Pyramids of Giza entry",
			Price:      540,
			Currency:   "EGP",
			Location:   "Giza",
			Notes:      "Separate ticket needed to enter the Great Pyramid.",
			ReportedBy: reporterID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}
