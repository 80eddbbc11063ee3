package di

import (
	"github.com/AkshatShukla22/task-management/application/serviceimpl"
	"github.com/AkshatShukla22/task-management/domain/repositories"
	"github.com/AkshatShukla22/task-management/domain/services"
	"github.com/AkshatShukla22/task-management/infrastructure/postgres"
	redispkg "github.com/AkshatShukla22/task-management/infrastructure/redis"
	"github.com/AkshatShukla22/task-management/interfaces/api/handlers"
	"github.com/AkshatShukla22/task-management/pkg/config"
	"github.com/AkshatShukla22/task-management/pkg/logger"

	"gorm.io/gorm"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client
	StatsCache  *redispkg.StatsCache

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Redis is optional: without it stats are computed on every request.
	if c.Config.Redis.Enabled {
		redisClient, err := redispkg.NewClient(redispkg.Config{
			URL:      c.Config.Redis.URL,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			logger.Warn("Redis unavailable, stats caching disabled", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis connected", "url", c.Config.Redis.URL)
		}
	}
	c.StatsCache = redispkg.NewStatsCache(c.RedisClient)

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository, c.StatsCache)
}

// GetHandlerServices bundles the services the HTTP layer needs
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return err
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
