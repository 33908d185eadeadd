package main

import (
	"context"
	"net/http"
	"time"

	authapp "github.com/gotrabandhus/gotrabandhus/application/auth"
	profileapp "github.com/gotrabandhus/gotrabandhus/application/profile"
	"github.com/gotrabandhus/gotrabandhus/cmd/config"
	redisclient "github.com/gotrabandhus/gotrabandhus/cmd/redis"
	_ "github.com/gotrabandhus/gotrabandhus/docs"
	redisRepo "github.com/gotrabandhus/gotrabandhus/repository/redis"
	userRepo "github.com/gotrabandhus/gotrabandhus/repository/user"
	"github.com/gotrabandhus/gotrabandhus/thirdparty/rabbitmq"
	"github.com/gotrabandhus/gotrabandhus/transport"
	"github.com/gotrabandhus/gotrabandhus/utils/logger"
	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// @title GotraBandhus API
// @version 1.0
// @description GotraBandhus genealogy network API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if cfg.Auth.JWTSecretIsDev {
		logger.Warn("JWT_SECRET is not set; using the development fallback secret. Tokens are forgeable - do not run like this in production")
	}

	// Select the user store once at startup; the application layers only see
	// the UserRepository interface.
	UserRepo := newUserRepository(cfg)

	// Initialize Redis profile cache (optional)
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}
	RedisRepo := redisRepo.NewRepository()

	// Initialize user-event publisher (optional)
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub
	}

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo, publisher)
	ProfileApp := profileapp.NewProfileApp(cfg, UserRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(AuthApp, ProfileApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

// newUserRepository picks the storage backend from configuration: "mysql",
// "mongo" or the in-memory fallback for development.
func newUserRepository(cfg *config.Config) userRepo.UserRepository {
	switch cfg.Database.Driver {
	case "mysql":
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		logger.Info("using MySQL user store", zap.String("db", cfg.Database.Name))
		return userRepo.NewUserRepository(db)

	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			logger.Fatal("err connect mongo", zap.Error(err))
		}
		if err := client.Ping(ctx, nil); err != nil {
			logger.Fatal("err ping mongo", zap.Error(err))
		}

		repo := userRepo.NewMongoUserRepository(client.Database(cfg.Mongo.Database))
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("err ensure mongo indexes", zap.Error(err))
		}

		logger.Info("using MongoDB user store", zap.String("db", cfg.Mongo.Database))
		return repo

	default:
		logger.Warn("using in-memory user store; data will not survive a restart")
		return userRepo.NewMemoryUserRepository()
	}
}
