package app

import (
	"os"
	"time"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	catalogCacheTTL = 5 * time.Minute
	connectRetries  = 5
)

// BuildApp wires infrastructure from the environment and registers every
// module's routes. Redis and Kafka are optional: with neither configured
// the storefront still runs, serving the bundled catalog.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Catalog source: remote when configured, bundled list otherwise.
	var provider catalog.Provider
	if url := os.Getenv("CATALOG_URL"); url != "" {
		provider = catalog.NewHTTPProvider(url)
		logger.Info("using remote catalog", zap.String("url", url))
	} else {
		provider = catalog.NewStaticProvider()
		logger.Info("using bundled catalog")
	}

	// 2. Optional Redis: catalog cache + checkout idempotency.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		var err error
		rdb, err = connectRedisWithRetry(addr, connectRetries, logger)
		if err != nil {
			return err
		}
		provider = catalog.NewCacheProvider(provider, rdb, catalogCacheTTL, logger)
	}

	// 3. Optional Kafka: order.placed events.
	var publisher order.Publisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		topic := os.Getenv("KAFKA_ORDERS_TOPIC")
		if topic == "" {
			topic = "storefront.orders"
		}
		writer, err := connectKafkaWithRetry(broker, topic, connectRetries, logger)
		if err != nil {
			return err
		}
		publisher = producer.NewOrderPublisher(writer, logger)
	}

	// 4. Register modules & routes.
	registerModules(router, Deps{
		CatalogProvider: provider,
		Redis:           rdb,
		Publisher:       publisher,
		Logger:          logger,
	})

	return nil
}
