package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/handler"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/database"
	"github.com/wolverinesfitness/backend/internal/media"
	"github.com/wolverinesfitness/backend/pkg/logger"
	"github.com/wolverinesfitness/backend/pkg/metrics"
	"github.com/wolverinesfitness/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Permissive CORS for the public marketing frontend; tighten per deployment.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Redis is optional: rate limiting falls back to the in-process limiter and
	// the response cache is simply skipped.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// MongoDB with retry/backoff to tolerate startup races.
	var client *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		}
		defer func() { _ = client.Disconnect(ctx) }()
		logger.Infof("Connected to MongoDB: %s", cfg.MongoDB.Database)
	} else {
		logger.Fatalf("MONGODB_URI is required")
	}
	db := client.Database(cfg.MongoDB.Database)

	var mediaStore media.Store
	if cfg.MinIO.Endpoint != "" {
		ms, err := media.NewMinIOStore(cfg.MinIO)
		if err != nil {
			logger.Fatalf("failed to initialize MinIO storage: %v", err)
		}
		mediaStore = ms
		logger.Infof("Connected to MinIO: %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	} else {
		logger.Fatalf("MINIO_ENDPOINT is required")
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["mongodb"] = client.Ping(c.Request.Context(), nil) == nil
		if !deps["mongodb"] {
			ready = false
		}
		deps["media"] = mediaStore != nil
		if !deps["media"] {
			ready = false
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil && redisClient.Ping(c.Request.Context()).Err() == nil
			if cfg.RateLimit.UseRedis && !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.RegisterDocs(r)

	api := r.Group("/api")
	if cfg.Cache.Enabled && redisClient != nil {
		api.Use(middleware.CacheResponses(redisClient, cfg.Cache.TTL))
	}

	editorial := []gin.HandlerFunc{middleware.RequireAuth(cfg.Auth.JWTSecret), middleware.EditorOrAdmin()}
	admin := []gin.HandlerFunc{middleware.RequireAuth(cfg.Auth.JWTSecret), middleware.AdminOnly()}

	handler.RegisterHero(api, repository.NewMongo[content.Hero](db.Collection("heroes")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterAbout(api, repository.NewMongo[content.About](db.Collection("abouts")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterTraining(api, repository.NewMongo[content.Training](db.Collection("trainings")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterTrainers(api, repository.NewMongo[content.Trainer](db.Collection("trainers")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterGallery(api, repository.NewMongo[content.Gallery](db.Collection("galleries")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterTestimonials(api, repository.NewMongo[content.Testimonial](db.Collection("testimonials")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterPricing(api, repository.NewMongo[content.Pricing](db.Collection("pricings")), editorial...)
	handler.RegisterContact(api, repository.NewMongo[content.Contact](db.Collection("contacts")), mediaStore, cfg.Uploads, editorial...)
	handler.RegisterSettings(api, repository.NewMongo[content.Settings](db.Collection("settings")), mediaStore, cfg.Uploads, admin...)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting content service on %s (env %s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
