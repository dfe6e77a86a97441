package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	EmailJS      EmailJSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if _, err := cfg.Checkout.DeliveryFeeAmount(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ZAIQA_APP_ENV" required:"true"`
	Port         string `envconfig:"ZAIQA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ZAIQA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ZAIQA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ZAIQA_DB_DSN"`
	Driver string `envconfig:"ZAIQA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ZAIQA_DB_HOST"`
	LegacyPort     int    `envconfig:"ZAIQA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ZAIQA_DB_USER"`
	LegacyPassword string `envconfig:"ZAIQA_DB_PASSWORD"`
	LegacyName     string `envconfig:"ZAIQA_DB_NAME"`
	LegacySSLMode  string `envconfig:"ZAIQA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ZAIQA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ZAIQA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ZAIQA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ZAIQA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ZAIQA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ZAIQA_REDIS_ADDR"`
	Password     string        `envconfig:"ZAIQA_REDIS_PASSWORD"`
	DB           int           `envconfig:"ZAIQA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ZAIQA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ZAIQA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ZAIQA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ZAIQA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ZAIQA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	// TTL applies to the per-session cart slot; a stale cart simply expires.
	TTL time.Duration `envconfig:"ZAIQA_CART_TTL" default:"168h"`
}

type CheckoutConfig struct {
	DeliveryFee    string        `envconfig:"ZAIQA_CHECKOUT_DELIVERY_FEE" default:"150"`
	AddressMinLen  int           `envconfig:"ZAIQA_CHECKOUT_ADDRESS_MIN_LEN" default:"15"`
	SubmitLockTTL  time.Duration `envconfig:"ZAIQA_CHECKOUT_SUBMIT_LOCK_TTL" default:"30s"`
	NotifyTimeout  time.Duration `envconfig:"ZAIQA_CHECKOUT_NOTIFY_TIMEOUT" default:"10s"`
	NotifyAttempts int           `envconfig:"ZAIQA_CHECKOUT_NOTIFY_ATTEMPTS" default:"3"`
}

// DeliveryFeeAmount parses the configured flat delivery fee.
func (c CheckoutConfig) DeliveryFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(strings.TrimSpace(c.DeliveryFee))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid delivery fee %q: %w", c.DeliveryFee, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("delivery fee must be non-negative, got %s", fee)
	}
	return fee, nil
}

type EmailJSConfig struct {
	BaseURL    string `envconfig:"ZAIQA_EMAILJS_BASE_URL" default:"https://api.emailjs.com"`
	ServiceID  string `envconfig:"ZAIQA_EMAILJS_SERVICE_ID" required:"true"`
	TemplateID string `envconfig:"ZAIQA_EMAILJS_TEMPLATE_ID" required:"true"`
	PublicKey  string `envconfig:"ZAIQA_EMAILJS_PUBLIC_KEY" required:"true"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ZAIQA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
