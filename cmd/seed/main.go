// Command seed bootstraps an empty database with the default settings document
// and a small set of sample content. Collections that already hold documents
// are left untouched, so the command is safe to re-run.
package main

import (
	"context"
	"os"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/database"
	"github.com/wolverinesfitness/backend/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	seedOne(ctx, "settings", repository.NewMongo[content.Settings](db.Collection("settings")), []*content.Settings{content.DefaultSettings()})
	seedOne(ctx, "heroes", repository.NewMongo[content.Hero](db.Collection("heroes")), sampleHeroes())
	seedOne(ctx, "abouts", repository.NewMongo[content.About](db.Collection("abouts")), sampleAbout())
	seedOne(ctx, "trainings", repository.NewMongo[content.Training](db.Collection("trainings")), samplePrograms())
	seedOne(ctx, "pricings", repository.NewMongo[content.Pricing](db.Collection("pricings")), samplePlans())

	logger.Infof("seed complete")
}

// seedOne inserts docs only when the collection is empty.
func seedOne[T any, PT interface {
	*T
	content.Section
}](ctx context.Context, name string, store *repository.Mongo[T, PT], docs []PT) {
	existing, err := store.List(ctx, repository.ListQuery{Filter: map[string]interface{}{}, Limit: 1})
	if err != nil {
		logger.Fatalf("%s: checking collection: %v", name, err)
	}
	if len(existing) > 0 {
		logger.Infof("%s: already populated, skipping", name)
		return
	}
	for _, d := range docs {
		if err := store.Insert(ctx, d); err != nil {
			logger.Fatalf("%s: insert: %v", name, err)
		}
	}
	logger.Infof("%s: inserted %d documents", name, len(docs))
}

func sampleHeroes() []*content.Hero {
	return []*content.Hero{{
		Title:    "TRANSFORM YOUR BODY",
		Subtitle: "Unleash your potential with our world-class training programs, expert trainers, and state-of-the-art equipment.",
		Buttons: []content.Button{
			{Text: "Start Your Journey", Link: "/membership", Style: "primary"},
			{Text: "View Programs", Link: "/training", Style: "outline"},
		},
		Stats: []content.Stat{
			{Number: "500+", Label: "Active Members"},
			{Number: "15+", Label: "Expert Trainers"},
			{Number: "6", Label: "Training Programs"},
		},
		IsActive: true,
	}}
}

func sampleAbout() []*content.About {
	return []*content.About{{
		Title:    "About Our Gym",
		Subtitle: "We're more than just a gym - we're your partners in achieving your fitness goals.",
		Description: []string{
			"Founded in 2019, our studio combines modern equipment with personal coaching.",
			"Every program is built around your goals, schedule and starting level.",
		},
		Features: []content.Feature{
			{Icon: "dumbbell", Title: "Modern Equipment", Description: "Top-tier machines and free weights, maintained daily."},
			{Icon: "users", Title: "Expert Trainers", Description: "Certified coaches with years of hands-on experience."},
			{Icon: "clock", Title: "Flexible Hours", Description: "Open early and late so training fits your day."},
		},
		Overlay:  content.OverlayContent{Title: "Join Our Community", Subtitle: "500+ Members Strong"},
		IsActive: true,
	}}
}

func samplePrograms() []*content.Training {
	return []*content.Training{
		{
			Title:       "Weight Loss",
			Description: "Burn fat and build endurance with structured cardio and strength sessions.",
			Category:    "weight-loss",
			Features:    []string{"Personalized meal guidance", "Weekly progress tracking", "Group cardio sessions"},
			Difficulty:  "beginner",
			IsActive:    true,
			Order:       1,
		},
		{
			Title:       "Muscle Building",
			Description: "Progressive overload programming for serious strength and size gains.",
			Category:    "muscle-building",
			Features:    []string{"Split routines", "Form coaching", "Supplement guidance"},
			Difficulty:  "intermediate",
			IsActive:    true,
			Order:       2,
		},
		{
			Title:       "Functional Fitness",
			Description: "Move better in everyday life with mobility and full-body strength work.",
			Category:    "functional-fitness",
			Features:    []string{"Mobility drills", "Kettlebell work", "Core stability"},
			Difficulty:  "beginner",
			IsActive:    true,
			Order:       3,
		},
	}
}

func samplePlans() []*content.Pricing {
	return []*content.Pricing{
		{
			Name:        "Basic",
			Price:       29,
			Period:      "month",
			Description: "Gym access during staffed hours.",
			Features:    []string{"Full gym access", "Locker room", "Free parking"},
			ButtonText:  "Get Started",
			Color:       "#EAA620",
			TrialDays:   7,
			IsActive:    true,
			Order:       1,
		},
		{
			Name:        "Premium",
			Price:       59,
			Period:      "month",
			Description: "Everything in Basic plus classes and one monthly PT session.",
			Features:    []string{"All Basic features", "Group classes", "1 PT session / month"},
			IsPopular:   true,
			ButtonText:  "Join Now",
			Color:       "#EAA620",
			TrialDays:   7,
			IsActive:    true,
			Order:       2,
		},
		{
			Name:        "Elite",
			Price:       99,
			Period:      "month",
			Description: "Unlimited coaching, nutrition planning and 24/7 access.",
			Features:    []string{"All Premium features", "Weekly PT sessions", "Nutrition plan", "24/7 access"},
			ButtonText:  "Go Elite",
			Color:       "#EAA620",
			TrialDays:   14,
			IsActive:    true,
			Order:       3,
		},
	}
}
