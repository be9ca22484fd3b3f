// Command seed fills the database with demo creators, brands and requirements.
// Running it twice is safe: existing accounts are reused.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"creatorhub/database"
	"creatorhub/internal/config"
	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/router"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/shopspring/decimal"
)

const demoPassword = "password123"

type demoCreator struct {
	email     string
	name      string
	platform  string
	handle    string
	followers int64
	engage    float64
	niches    []string
}

type demoBrand struct {
	email    string
	company  string
	category string
	website  string
}

var creators = []demoCreator{
	{"maya@example.com", "Maya Chen", "instagram", "mayacooks", 482000, 4.8, []string{"food", "lifestyle"}},
	{"leo@example.com", "Leo Park", "youtube", "leobuilds", 1250000, 3.1, []string{"tech", "diy"}},
	{"sara@example.com", "Sara Idris", "tiktok", "sarafit", 300000, 7.2, []string{"fitness", "wellness"}},
	{"tom@example.com", "Tom Alvarez", "twitter", "tomtalkstech", 86000, 1.9, []string{"tech"}},
}

var brands = []demoBrand{
	{"hello@acme.example", "Acme Gadgets", "tech", "https://acme.example"},
	{"team@greenbowl.example", "Green Bowl", "food", "https://greenbowl.example"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("could not migrate database")
	}

	svcs := router.NewServices(db, cfg)
	if err := seed(context.Background(), svcs); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}
	logger.Info().Int("creators", len(creators)).Int("brands", len(brands)).Msg("seed complete")
}

func seed(ctx context.Context, svcs *router.Services) error {
	for _, c := range creators {
		userID, err := account(ctx, svcs.Auth, c.email, c.name, models.RoleCreator)
		if err != nil {
			return err
		}
		_, err = svcs.Creators.UpsertProfile(ctx, userID, dto.UpsertCreatorProfileRequest{
			DisplayName:    &c.name,
			Platform:       &c.platform,
			SocialHandle:   &c.handle,
			FollowersCount: &c.followers,
			EngagementRate: &c.engage,
			Niches:         c.niches,
			PromotionTypes: []string{"sponsored post", "review"},
		})
		if err != nil {
			return fmt.Errorf("creator profile %s: %w", c.email, err)
		}
	}

	for i, b := range brands {
		userID, err := account(ctx, svcs.Auth, b.email, b.company, models.RoleBrand)
		if err != nil {
			return err
		}
		_, err = svcs.Brands.UpsertProfile(ctx, userID, dto.UpsertBrandProfileRequest{
			CompanyName: &b.company,
			Category:    &b.category,
			Website:     &b.website,
		})
		if err != nil {
			return fmt.Errorf("brand profile %s: %w", b.email, err)
		}

		existing, total, err := svcs.Requirements.List(ctx, dto.RequirementListQuery{BrandID: userID})
		if err != nil {
			return err
		}
		if total > 0 || len(existing) > 0 {
			continue
		}
		_, err = svcs.Requirements.Create(ctx, userID, dto.CreateRequirementRequest{
			Title:        fmt.Sprintf("%s spring campaign", b.company),
			Description:  "Looking for creators to feature our new line.",
			Niches:       []string{b.category},
			MinFollowers: int64(50000 * (i + 1)),
			BudgetMin:    decimal.NewNullDecimal(decimal.NewFromInt(500)),
			BudgetMax:    decimal.NewNullDecimal(decimal.NewFromInt(2500)),
		})
		if err != nil {
			return fmt.Errorf("requirement for %s: %w", b.email, err)
		}
	}
	return nil
}

// account registers email, or signs in when it already exists, and returns the user id.
func account(ctx context.Context, auth service.AuthService, email, name string, role models.Role) (string, error) {
	resp, err := auth.Register(ctx, dto.RegisterInput{Email: email, Password: demoPassword, Role: role, Name: name})
	if apperrors.IsStatus(err, http.StatusConflict) {
		resp, err = auth.Login(ctx, email, demoPassword)
	}
	if err != nil {
		return "", fmt.Errorf("account %s: %w", email, err)
	}
	logger.Debug().Str("email", email).Str("role", role.String()).Msg("demo account ready")
	return resp.User.ID, nil
}
