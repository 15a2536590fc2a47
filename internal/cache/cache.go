package cache

import (
	"context"
	"crypto/tls"
	"sync"

	"taskhive/internal/config"
	"taskhive/internal/util/logger"

	"github.com/valkey-io/valkey-go"
)

var (
	once         sync.Once
	valkeyClient valkey.Client
)

func GetCache() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()

		options := valkey.ClientOption{
			InitAddress: []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:    env.ValkeyPassword,
			Username:    env.ValkeyUsername,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			panic(err)
		}

		valkeyClient = client
	})

	return valkeyClient
}

// TestCacheConnection verifies Valkey is reachable at startup. A broken
// cache only degrades rate limiting, so this logs instead of exiting.
func TestCacheConnection() {
	client := GetCache()

	err := client.Do(context.Background(), client.B().Ping().Build()).Error()
	if err != nil {
		logger.GetLogger().Error("Valkey connection test failed", "error", err)
		return
	}

	logger.GetLogger().Info("Valkey connection test successful")
}
