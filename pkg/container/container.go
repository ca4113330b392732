package container

import (
	"context"
	"fmt"
	"time"

	"giftlist-backend/internal/config"
	"giftlist-backend/internal/infrastructure/cache"
	"giftlist-backend/internal/infrastructure/database"
	"giftlist-backend/internal/infrastructure/queue"
	"giftlist-backend/internal/infrastructure/storage"
	"giftlist-backend/pkg/jwt"
	"giftlist-backend/pkg/logger"

	"giftlist-backend/internal/domains/celebrant"
	celebrantHandler "giftlist-backend/internal/domains/celebrant/handler"
	celebrantRepo "giftlist-backend/internal/domains/celebrant/repository"
	celebrantService "giftlist-backend/internal/domains/celebrant/service"

	"giftlist-backend/internal/domains/giftlist"
	giftlistHandler "giftlist-backend/internal/domains/giftlist/handler"
	giftlistRepo "giftlist-backend/internal/domains/giftlist/repository"
	giftlistService "giftlist-backend/internal/domains/giftlist/service"

	"giftlist-backend/internal/domains/guest"
	guestHandler "giftlist-backend/internal/domains/guest/handler"
	guestRepo "giftlist-backend/internal/domains/guest/repository"
	guestService "giftlist-backend/internal/domains/guest/service"

	"giftlist-backend/internal/domains/claim"
	claimHandler "giftlist-backend/internal/domains/claim/handler"
	claimRepo "giftlist-backend/internal/domains/claim/repository"
	claimService "giftlist-backend/internal/domains/claim/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       *cache.RedisClient
	QueueClient *queue.Client
	Storage     *storage.MinIOStorage
	JWTManager  *jwt.Manager

	CelebrantRepo celebrant.Repository
	GiftListRepo  giftlist.Repository
	GuestRepo     guest.Repository
	ClaimRepo     claim.Repository

	AuthService  celebrant.Service
	ListService  giftlist.ListService
	ItemService  giftlist.ItemService
	GuestService guest.Service
	ClaimService claim.Service

	AuthHandler  *celebrantHandler.AuthHandler
	ListHandler  *giftlistHandler.ListHandler
	ItemHandler  *giftlistHandler.ItemHandler
	GuestHandler *guestHandler.GuestHandler
	ClaimHandler *claimHandler.ClaimHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(&database.DBConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		Username:       cfg.Database.User,
		Password:       cfg.Database.Password,
		DBName:         cfg.Database.Database,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       int32(cfg.Database.MaxConns),
		MinConns:       int32(cfg.Database.MinConns),
		MaxRetries:     cfg.Database.MaxRetries,
		RetryDelay:     cfg.Database.RetryDelay,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := c.DB.Migrate(cfg.Database.MigrationsDir); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c.Cache = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}

	c.JWTManager = jwt.NewManager(
		cfg.Auth.Secret,
		cfg.Guest.Secret,
		cfg.Auth.AccessTTL,
		cfg.Auth.RefreshTTL,
		cfg.Guest.TTL,
	)

	c.CelebrantRepo = celebrantRepo.NewPostgresRepository(c.DB.Pool)
	c.GiftListRepo = giftlistRepo.NewPostgresRepository(c.DB.Pool)
	c.GuestRepo = guestRepo.NewPostgresRepository(c.DB.Pool)
	c.ClaimRepo = claimRepo.NewPostgresRepository(c.DB.Pool)

	c.AuthService = celebrantService.NewAuthService(c.CelebrantRepo, c.JWTManager)
	c.ListService = giftlistService.NewListService(c.GiftListRepo, c.GuestRepo, c.Storage)
	c.ItemService = giftlistService.NewItemService(c.GiftListRepo)
	c.GuestService = guestService.NewGuestService(c.GuestRepo, c.GiftListRepo, c.JWTManager)
	c.ClaimService = claimService.NewClaimService(c.ClaimRepo, c.QueueClient)

	c.AuthHandler = celebrantHandler.NewAuthHandler(c.AuthService, cfg)
	c.ListHandler = giftlistHandler.NewListHandler(c.ListService)
	c.ItemHandler = giftlistHandler.NewItemHandler(c.ItemService, c.ClaimService)
	c.GuestHandler = guestHandler.NewGuestHandler(c.GuestService, cfg)
	c.ClaimHandler = claimHandler.NewClaimHandler(c.ClaimService)

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	return c, nil
}

// HealthCheck reports on the stateful dependencies.
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{
		"database": "UP",
		"redis":    "UP",
	}

	if err := c.DB.HealthCheck(ctx); err != nil {
		status["database"] = "DOWN"
	}
	if err := c.Cache.HealthCheck(ctx); err != nil {
		status["redis"] = "DOWN"
	}

	return status
}

// Cleanup releases connections in reverse init order.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
