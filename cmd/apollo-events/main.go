package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	auctionApp "github.com/davicafu/apollo-events/internal/auction/application"
	auctionDomain "github.com/davicafu/apollo-events/internal/auction/domain"
	auctionEvents "github.com/davicafu/apollo-events/internal/auction/infra/inbound/events"
	auctionHttp "github.com/davicafu/apollo-events/internal/auction/infra/inbound/http"
	"github.com/davicafu/apollo-events/internal/auction/infra/outbound/publisher"
	config "github.com/davicafu/apollo-events/internal/config"
	"github.com/davicafu/apollo-events/internal/infra/db/mongodb"
	"github.com/davicafu/apollo-events/internal/infra/db/postgres"
	"github.com/davicafu/apollo-events/internal/infra/db/sqlite"
	infraEvents "github.com/davicafu/apollo-events/internal/infra/events"
	sharedDomain "github.com/davicafu/apollo-events/internal/shared/domain"
	"github.com/davicafu/apollo-events/internal/shared/infra/idgen"
	"github.com/davicafu/apollo-events/internal/shared/infra/relayer"
	"github.com/davicafu/apollo-events/internal/shared/infra/utils"
	"github.com/davicafu/apollo-events/pkg/logger"

	// _ "github.com/mattn/go-sqlite3" // requires gcc
	_ "modernc.org/sqlite"
)

// ---------------- Main ----------------
func main() {
	logger.Init()          // inicializa zap
	log := logger.Logger() // obtiene logger estructurado
	defer log.Sync()       // flush buffers al salir

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// -------------- Transporte --------------
	sink, closeSink := newPublisher(ctx, cfg, log)
	defer closeSink()

	// ---------------- Router ----------------
	router := auctionApp.NewEventRouter(
		publisher.NewLoggingPublisher(sink, log),
		idgen.NewUUIDGenerator(),
		log,
	)

	// ---------------- Events ---------------
	if cfg.ConsumeKafka {
		log.Info("🎧 Consumiendo eventos de dominio desde Kafka", zap.String("topic", cfg.KafkaEventsTopic))

		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.KafkaBrokers,
			Topic:    cfg.KafkaEventsTopic,
			GroupID:  cfg.KafkaGroupID,
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		})
		defer reader.Close()

		consumer := auctionEvents.NewAuctionConsumer(router, 5*time.Second, log)
		infraEvents.NewConsumerAdapter(reader, consumer, cfg.Workers, log).Start(ctx)
	}

	// ------------ Outbox Worker ------------
	if repo, closeRepo := newOutboxRepository(ctx, cfg, log); repo != nil {
		defer closeRepo()
		worker := relayer.NewOutboxWorker(repo, router, cfg.OutboxPeriod, cfg.OutboxLimit, log)
		go worker.Start(ctx)
	}

	// ------------- Simulación --------------
	if cfg.SimulateLotWon > 0 {
		if err := auctionApp.SimulateLotWon(ctx, router, cfg.SimulateLotWon); err != nil {
			log.Error("Fallo al publicar los eventos simulados", zap.Error(err))
		} else {
			log.Info("✅ Eventos 'UserLotWon' simulados y publicados", zap.Int("count", cfg.SimulateLotWon))
		}
	}

	// ---------------- HTTP ----------------
	eventHandler := auctionHttp.NewEventHandler(router)
	engine := gin.Default()
	auctionHttp.RegisterEventRoutes(engine, eventHandler)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "transport": cfg.Transport})
	})

	go func() {
		log.Info("🚀 Server running",
			zap.String("url", "http://localhost:"+cfg.HTTPPort),
		)
		if err := engine.Run(":" + cfg.HTTPPort); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Apagando apollo-events")
}

// newPublisher elige el sink según TRANSPORT. Si Redis no responde se cae al bus en memoria.
func newPublisher(ctx context.Context, cfg *config.Config, log *zap.Logger) (auctionDomain.Publisher, func()) {
	switch cfg.Transport {
	case config.TransportKafka:
		log.Info("🚀 Usando Kafka como transporte", zap.String("topic", cfg.KafkaPublishTopic))
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaPublishTopic,
			Balancer: &kafka.Hash{},
		}
		return publisher.NewKafkaPublisher(writer), func() { writer.Close() }

	case config.TransportRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		err := utils.Retry(ctx, 3, time.Second, func() error {
			return rdb.Ping(ctx).Err()
		})
		if err == nil {
			log.Info("✅ Redis conectado", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
			return publisher.NewRedisPublisher(rdb), func() { rdb.Close() }
		}
		log.Warn("⚠️ Redis no disponible, usando bus en memoria", zap.Error(err))
		rdb.Close()

	case config.TransportMemory:

	default:
		log.Warn("⚠️ TRANSPORT desconocido, usando bus en memoria", zap.String("transport", cfg.Transport))
	}

	log.Info("⚡️Usando bus de eventos en memoria (canales de Go)")
	bus := infraEvents.NewInMemoryEventBus()
	deliveries := bus.Subscribe(100)
	go func() {
		for d := range deliveries {
			log.Info("📨 Mensaje en memoria", zap.String("channel", d.Channel), zap.ByteString("payload", d.Payload))
		}
	}()
	return bus, bus.Close
}

// newOutboxRepository abre el almacenamiento del outbox según OUTBOX_DRIVER.
// Devuelve nil si el relayer está desactivado o no se pudo abrir.
func newOutboxRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (sharedDomain.OutboxRepository, func()) {
	switch cfg.OutboxDriver {
	case config.OutboxSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			log.Fatal("failed to open SQLite", zap.Error(err))
		}
		if err := sqlite.InitOutboxSQLite(ctx, db); err != nil {
			log.Fatal("failed to initialize SQLite", zap.Error(err))
		}
		return sqlite.NewOutboxRepoSQLite(db), func() { db.Close() }

	case config.OutboxPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to open Postgres", zap.Error(err))
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatal("failed to ping Postgres", zap.Error(err))
		}
		if err := postgres.InitOutboxPostgres(ctx, db); err != nil {
			log.Fatal("failed to initialize Postgres", zap.Error(err))
		}
		return postgres.NewOutboxRepoPostgres(db), func() { db.Close() }

	case config.OutboxMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("failed to connect MongoDB", zap.Error(err))
		}
		repo, err := mongodb.NewOutboxRepoMongoDB(ctx, client, cfg.MongoDB)
		if err != nil {
			log.Fatal("failed to initialize MongoDB", zap.Error(err))
		}
		return repo, func() { client.Disconnect(context.Background()) }

	default:
		log.Info("Outbox relayer desactivado", zap.String("driver", cfg.OutboxDriver))
		return nil, func() {}
	}
}
