package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = 5 << 20
	defaultAuditBufferSize    = 256
	defaultAuditWriteTimeout  = 5 * time.Second
	defaultWorkerPort         = 8085
)

// Storage drivers.
const (
	StorageDriverFirestore = "firestore"
	StorageDriverPostgres  = "postgres"
)

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		CORSAllowOrigins   []string `json:"corsAllowOrigins" yaml:"corsAllowOrigins"` // empty allows any origin
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// SecretKey signs tokens issued by the local identity provider.
	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Firebase project used for Firestore, Auth and Storage
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	Blob *BlobConfig `json:"blob" yaml:"blob"`

	Audit *AuditConfig `json:"audit" yaml:"audit"`

	// QRCode configuration for shop listing QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for session events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker is the session event consumer started by cmd/sessionworker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IdentityConfig selects the identity provider backing signup/login.
type IdentityConfig struct {
	// Provider is "firebase" or "local"
	Provider   string `json:"provider" yaml:"provider"`
	BcryptCost int    `json:"bcryptCost" yaml:"bcryptCost"`
}

// StorageConfig selects the document store backing the catalog and audit log.
type StorageConfig struct {
	// Driver is "firestore" or "postgres"
	Driver string `json:"driver" yaml:"driver"`
}

// FirebaseConfig defines the Firebase project settings
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// APIKey is the web API key used for email/password sign-in
	APIKey       string `json:"apiKey" yaml:"apiKey"`
	CheckRevoked bool   `json:"checkRevoked" yaml:"checkRevoked"`

	Emulator *FirebaseEmulatorConfig `json:"emulator" yaml:"emulator"`
}

// FirebaseEmulatorConfig points the SDKs at the local emulator suite.
type FirebaseEmulatorConfig struct {
	AuthHost      string `json:"authHost" yaml:"authHost"`
	FirestoreHost string `json:"firestoreHost" yaml:"firestoreHost"`
	StorageHost   string `json:"storageHost" yaml:"storageHost"`
}

// PostgresConfig defines the relational storage driver settings
type PostgresConfig struct {
	DSN                string        `json:"dsn" yaml:"dsn"`
	Replicas           []string      `json:"replicas" yaml:"replicas"`
	MaxOpenConns       int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns       int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"` // 0 uses 200ms
}

// BlobConfig defines where product images are stored
type BlobConfig struct {
	// BucketURL is a gocloud URL: gs://bucket, file:///path or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// PublicURLTemplate builds download URLs, "{path}" is replaced with the escaped object path
	PublicURLTemplate string `json:"publicUrlTemplate" yaml:"publicUrlTemplate"`
	MaxUploadSize     int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// AuditConfig tunes the write-behind audit sink
type AuditConfig struct {
	BufferSize   int           `json:"bufferSize" yaml:"bufferSize"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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

	// PushAudience is the audience set on the push subscription's OIDC token.
	// When empty the worker derives it from the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file.
	// Example: FIREBASE_PROJECTID -> firebase.projectId
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is fine; the yaml file and process env still apply.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = IdentityProviderFirebase
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverFirestore
	}
	if cfg.Blob == nil {
		cfg.Blob = &BlobConfig{}
	}
	if cfg.Blob.MaxUploadSize <= 0 {
		cfg.Blob.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Audit == nil {
		cfg.Audit = &AuditConfig{}
	}
	if cfg.Audit.BufferSize <= 0 {
		cfg.Audit.BufferSize = defaultAuditBufferSize
	}
	if cfg.Audit.WriteTimeout <= 0 {
		cfg.Audit.WriteTimeout = defaultAuditWriteTimeout
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}

// Validate checks that the selected drivers have the settings they need.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverFirestore:
		if c.Firebase == nil || c.Firebase.ProjectID == "" {
			return errors.New("firebase.projectId is required for the firestore storage driver")
		}
	case StorageDriverPostgres:
		if c.Postgres == nil || c.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required for the postgres storage driver")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	switch c.Identity.Provider {
	case IdentityProviderFirebase:
		if c.Firebase == nil || c.Firebase.ProjectID == "" {
			return errors.New("firebase.projectId is required for the firebase identity provider")
		}
		if c.Firebase.APIKey == "" {
			return errors.New("firebase.apiKey is required for the firebase identity provider")
		}
	case IdentityProviderLocal:
		if c.SecretKey.Access == "" || c.SecretKey.Refresh == "" {
			return errors.New("secretKey.access and secretKey.refresh are required for the local identity provider")
		}
	default:
		return errors.Errorf("unknown identity provider: %s", c.Identity.Provider)
	}

	if c.Blob.BucketURL == "" {
		return errors.New("blob.bucketUrl is required")
	}

	return nil
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
