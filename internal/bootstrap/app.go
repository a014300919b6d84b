package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appsvc "campuspress/internal/app"
	"campuspress/internal/cache"
	"campuspress/internal/config"
	"campuspress/internal/media"
	"campuspress/internal/model"
	mysqlClient "campuspress/internal/platform/mysql"
	rabbitmqClient "campuspress/internal/platform/rabbitmq"
	redisClient "campuspress/internal/platform/redis"
	"campuspress/internal/storage/gormstore"
	"campuspress/internal/worker"
)

type App struct {
	Config        *config.Config
	MySQL         *gorm.DB
	Redis         *redis.Client
	MQConn        *amqp.Connection
	SectionWorker *worker.SectionCounterWorker

	Articles *appsvc.ArticleService
	Auth     *appsvc.AuthService
	Sections *appsvc.SectionService
	Media    *media.Store

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.Article{}, &model.User{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	sectionCounter := cache.NewSectionCounter(redisCli)
	sectionWorker := worker.NewSectionCounterWorker(mqConn, sectionCounter, cfg.RabbitMQ.ArticleEventQueue)
	if err := sectionWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start section counter worker failed: %w", err)
	}

	mediaStore, err := media.NewStore(cfg.Upload.Dir, cfg.Upload.ImageExts, cfg.Upload.VideoExts)
	if err != nil {
		return nil, err
	}

	store := gormstore.New(mysqlDB)
	publisher := rabbitmqClient.NewArticlePublisher(mqConn, cfg.RabbitMQ.ArticleEventQueue)
	listCache := cache.NewArticleListCache(redisCli, time.Duration(cfg.Redis.ListTTLSeconds)*time.Second)

	return &App{
		Config:        cfg,
		MySQL:         mysqlDB,
		Redis:         redisCli,
		MQConn:        mqConn,
		SectionWorker: sectionWorker,
		Articles:      appsvc.NewArticleService(store, publisher, listCache),
		Auth:          appsvc.NewAuthService(store),
		Sections:      appsvc.NewSectionService(sectionCounter),
		Media:         mediaStore,
		StartedAt:     time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.SectionWorker != nil {
		a.SectionWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
