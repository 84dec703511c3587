package config

import (
	stderrors "errors"
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
	defaultDateLayout         = "2006-01-02"
	defaultLowStockLimit      = 10
	defaultListLimit          = 100
	defaultMetricsPath        = "/metrics"
)

const defaultMaxUploadSize int64 = 5 << 20

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

	// Migration controls schema migrations run at startup
	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs the live query change feed
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Storage configuration for uploaded images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Marketplace *MarketplaceConfig `json:"marketplace" yaml:"marketplace"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// MigrationConfig defines how goose migrations are applied
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost    int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL     time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL    time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	ResetTokenTTL time.Duration `json:"resetTokenTTL" yaml:"resetTokenTTL"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience of the OIDC token on push requests.
	// Empty means the URL the request arrived on.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount, when set, must match the token's email claim.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// RedisConfig defines the Redis connection used for change notifications.
// An empty Addr selects the in-process feed.
type RedisConfig struct {
	Addr          string `json:"addr" yaml:"addr"`
	Password      string `json:"password" yaml:"password"`
	DB            int    `json:"db" yaml:"db"`
	ChannelPrefix string `json:"channelPrefix" yaml:"channelPrefix"`
}

// StorageConfig defines the blob bucket that receives uploaded images
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. file:///var/autohub, mem://, gs://bucket
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// MarketplaceConfig holds domain defaults
type MarketplaceConfig struct {
	// DateLayout is the Go time layout used for order and appointment dates
	DateLayout           string `json:"dateLayout" yaml:"dateLayout"`
	DefaultLowStockLimit int    `json:"defaultLowStockLimit" yaml:"defaultLowStockLimit"`
	ListLimit            int    `json:"listLimit" yaml:"listLimit"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv reads <currEnv>.yaml from the first directory that has it
// (the working directory, then configPath relative to it) and overlays
// environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// POSTGRES_SSLMODE must land on postgres.sslMode, the key the YAML uses
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath []string) (string, error) {
	dirs := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			dirs = append(dirs, filepath.Join(pwd, path))
		}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	applyMarketplaceDefaults(cfg)

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// validate reports every problem at once rather than the first.
func (c *Config) validate() error {
	var problems []error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		problems = append(problems, errors.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	if c.SecretKey.Access == "" || c.SecretKey.Refresh == "" {
		problems = append(problems, errors.New("secretKey.access and secretKey.refresh are required"))
	} else if c.SecretKey.Access == c.SecretKey.Refresh {
		problems = append(problems, errors.New("secretKey.access and secretKey.refresh must differ"))
	}
	if c.Marketplace != nil {
		sample := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if parsed, err := time.Parse(c.Marketplace.DateLayout, sample.Format(c.Marketplace.DateLayout)); err != nil || !parsed.Equal(sample) {
			problems = append(problems, errors.Errorf("marketplace.dateLayout %q cannot round-trip a date", c.Marketplace.DateLayout))
		}
	}
	if c.Storage != nil && c.Storage.BucketURL == "" {
		problems = append(problems, errors.New("storage.bucketUrl is required when storage is configured"))
	}

	return stderrors.Join(problems...)
}

func applyMarketplaceDefaults(cfg *Config) {
	if cfg.Marketplace == nil {
		cfg.Marketplace = &MarketplaceConfig{}
	}
	if cfg.Marketplace.DateLayout == "" {
		cfg.Marketplace.DateLayout = defaultDateLayout
	}
	if cfg.Marketplace.DefaultLowStockLimit <= 0 {
		cfg.Marketplace.DefaultLowStockLimit = defaultLowStockLimit
	}
	if cfg.Marketplace.ListLimit <= 0 {
		cfg.Marketplace.ListLimit = defaultListLimit
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.Storage != nil && cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
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

// buildReplicasFromEnv stops at the first index without both HOST and PORT.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
