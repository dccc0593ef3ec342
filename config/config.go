package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCurrency           = "usd"
	defaultAllowedCountry     = "US"
	defaultStorageKey         = "cart"
	defaultCatalogPath        = "data/catalog.json"
	defaultCartBucketURL      = "mem://"
	defaultSendInterval       = 600 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Stripe configuration for hosted checkout and webhooks
	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	// Email configuration for transactional mail
	Email *EmailConfig `json:"email" yaml:"email"`

	// Shop configuration: shipping tiers and order numbering
	Shop *ShopConfig `json:"shop" yaml:"shop"`

	// Catalog configuration for the static product data export
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Cart configuration for the persisted cart mirror
	Cart *CartConfig `json:"cart" yaml:"cart"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StripeConfig defines payment provider configuration
type StripeConfig struct {
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	Currency      string `json:"currency" yaml:"currency"`

	// Redirect targets for the hosted checkout page
	SuccessURL string `json:"successUrl" yaml:"successUrl"`
	CancelURL  string `json:"cancelUrl" yaml:"cancelUrl"`

	// Single country allowed for shipping address collection
	AllowedCountry string `json:"allowedCountry" yaml:"allowedCountry"`

	// Delivery estimate window in business days, shown on the hosted page
	DeliveryMinDays int64 `json:"deliveryMinDays" yaml:"deliveryMinDays"`
	DeliveryMaxDays int64 `json:"deliveryMaxDays" yaml:"deliveryMaxDays"`
}

// EmailConfig defines transactional email configuration
type EmailConfig struct {
	APIKey      string `json:"apiKey" yaml:"apiKey"`
	FromAddress string `json:"fromAddress" yaml:"fromAddress"`

	// OwnerAddress receives the operator notification and contact inquiries
	OwnerAddress string `json:"ownerAddress" yaml:"ownerAddress"`

	// SendInterval spaces consecutive sends to respect the provider rate limit
	SendInterval time.Duration `json:"sendInterval" yaml:"sendInterval"`
}

// ShopConfig defines shipping tiers and order numbering
type ShopConfig struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`
	ClothingShippingRate  float64 `json:"clothingShippingRate" yaml:"clothingShippingRate"`
	DivotToolShippingRate float64 `json:"divotToolShippingRate" yaml:"divotToolShippingRate"`
	OrderNumberPrefix     string  `json:"orderNumberPrefix" yaml:"orderNumberPrefix"`
}

// CatalogConfig defines where the static product data export lives
type CatalogConfig struct {
	Path string `json:"path" yaml:"path"`
}

// CartConfig defines the blob bucket backing the persisted cart mirror
type CartConfig struct {
	// BucketURL is a gocloud blob URL, e.g. "file:///var/lib/storefront" or "mem://"
	BucketURL  string `json:"bucketUrl" yaml:"bucketUrl"`
	StorageKey string `json:"storageKey" yaml:"storageKey"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STRIPE_WEBHOOKSECRET -> stripe.webhookSecret (not stripe.webhooksecret)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = defaultCurrency
	}
	if cfg.Stripe.AllowedCountry == "" {
		cfg.Stripe.AllowedCountry = defaultAllowedCountry
	}
	if cfg.Stripe.DeliveryMinDays == 0 {
		cfg.Stripe.DeliveryMinDays = 5
	}
	if cfg.Stripe.DeliveryMaxDays == 0 {
		cfg.Stripe.DeliveryMaxDays = 10
	}

	if cfg.Email == nil {
		cfg.Email = &EmailConfig{}
	}
	if cfg.Email.SendInterval == 0 {
		cfg.Email.SendInterval = defaultSendInterval
	}

	if cfg.Shop == nil {
		cfg.Shop = &ShopConfig{}
	}
	if cfg.Shop.FreeShippingThreshold == 0 {
		cfg.Shop.FreeShippingThreshold = 100
	}
	if cfg.Shop.ClothingShippingRate == 0 {
		cfg.Shop.ClothingShippingRate = 9.99
	}
	if cfg.Shop.DivotToolShippingRate == 0 {
		cfg.Shop.DivotToolShippingRate = 4.99
	}
	if cfg.Shop.OrderNumberPrefix == "" {
		cfg.Shop.OrderNumberPrefix = "DVT"
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = defaultCatalogPath
	}

	if cfg.Cart == nil {
		cfg.Cart = &CartConfig{}
	}
	if cfg.Cart.BucketURL == "" {
		cfg.Cart.BucketURL = defaultCartBucketURL
	}
	if cfg.Cart.StorageKey == "" {
		cfg.Cart.StorageKey = defaultStorageKey
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
