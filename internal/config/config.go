package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Transportes soportados para publicar los mensajes.
const (
	TransportRedis  = "redis"
	TransportKafka  = "kafka"
	TransportMemory = "memory"
)

// Drivers soportados para la tabla outbox. "none" desactiva el relayer.
const (
	OutboxSQLite   = "sqlite"
	OutboxPostgres = "postgres"
	OutboxMongo    = "mongo"
	OutboxNone     = "none"
)

type Config struct {
	Transport string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers      []string
	KafkaPublishTopic string
	KafkaEventsTopic  string
	KafkaGroupID      string
	ConsumeKafka      bool

	OutboxDriver string
	SQLitePath   string
	DatabaseURL  string
	MongoURI     string
	MongoDB      string
	OutboxPeriod time.Duration
	OutboxLimit  int

	Workers        int
	HTTPPort       string
	SimulateLotWon int
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	getInt := func(key string, fallback int) int {
		if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
			return n
		}
		return fallback
	}
	getBool := func(key string, fallback bool) bool {
		if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
			return b
		}
		return fallback
	}
	getDuration := func(key string, fallback time.Duration) time.Duration {
		if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
			return d
		}
		return fallback
	}

	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	workers := getInt("WORKERS", 8)
	if workers < 1 {
		workers = 1
	}

	return &Config{
		Transport: strings.ToLower(getEnv("TRANSPORT", TransportRedis)),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		KafkaBrokers:      kafkaBrokers,
		KafkaPublishTopic: getEnv("KAFKA_PUBLISH_TOPIC", "apollo-messages"),
		KafkaEventsTopic:  getEnv("KAFKA_EVENTS_TOPIC", "auction-events"),
		KafkaGroupID:      getEnv("KAFKA_GROUP_ID", "apollo-events"),
		ConsumeKafka:      getBool("CONSUME_KAFKA", false),

		OutboxDriver: strings.ToLower(getEnv("OUTBOX_DRIVER", OutboxNone)),
		SQLitePath:   getEnv("SQLITE_PATH", "./apollo_outbox.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "apollo"),
		OutboxPeriod: getDuration("OUTBOX_PERIOD", 1*time.Second),
		OutboxLimit:  getInt("OUTBOX_LIMIT", 10),

		Workers:        workers,
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		SimulateLotWon: getInt("SIMULATE_LOT_WON", 0),
	}
}

// Validate rechaza valores desconocidos de TRANSPORT y OUTBOX_DRIVER.
// Una errata no debe acabar publicando en el bus en memoria sin avisar.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportRedis, TransportKafka, TransportMemory:
	default:
		return fmt.Errorf("unknown TRANSPORT %q (want redis, kafka or memory)", c.Transport)
	}

	switch c.OutboxDriver {
	case OutboxSQLite, OutboxPostgres, OutboxMongo, OutboxNone:
	default:
		return fmt.Errorf("unknown OUTBOX_DRIVER %q (want sqlite, postgres, mongo or none)", c.OutboxDriver)
	}
	return nil
}
