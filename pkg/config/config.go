package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	Redis RedisConfig
	Store StoreConfig
	OTP   OTPConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AGRIMART_APP_ENV" required:"true"`
	Port         string `envconfig:"AGRIMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"AGRIMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AGRIMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"AGRIMART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AGRIMART_REDIS_ADDR"`
	Password     string        `envconfig:"AGRIMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"AGRIMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AGRIMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AGRIMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AGRIMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AGRIMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AGRIMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// StoreConfig names the keys the cart, order, address, and profile stores
// persist under. Defaults match the keys the mobile app wrote to device storage.
type StoreConfig struct {
	CartKey      string `envconfig:"AGRIMART_STORE_CART_KEY" default:"cart_items"`
	OrdersKey    string `envconfig:"AGRIMART_STORE_ORDERS_KEY" default:"orders"`
	AddressesKey string `envconfig:"AGRIMART_STORE_ADDRESSES_KEY" default:"addresses"`
	ProfileKey   string `envconfig:"AGRIMART_STORE_PROFILE_KEY" default:"profile"`
}

// OTPConfig carries the fixed demo login code. There is no real OTP delivery.
type OTPConfig struct {
	Code string `envconfig:"AGRIMART_OTP_CODE" default:"1234"`
}
