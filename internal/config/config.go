package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// third-party APIs, background delivery and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps JSON request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the origins allowed to call the API. Empty allows any origin.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
		// Pprof mounts the profiling endpoints under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"bus2ride" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectAttempts is how many times startup pings the database before giving up
		ConnectAttempts uint `env:"DATABASE_CONNECT_ATTEMPTS" env-default:"10" yaml:"connectAttempts"`
		// ConnectDelay is the pause between startup pings
		ConnectDelay time.Duration `env:"DATABASE_CONNECT_DELAY" env-default:"2s" yaml:"connectDelay"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used for admin bearer tokens
	JWT struct {
		// PublicKey verifies admin tokens (PEM)
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens in the jwt command (PEM)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// Issuer is stamped on issued tokens and required on verified ones
		Issuer string `env:"JWT_ISSUER" env-default:"bus2ride" yaml:"issuer"`
	} `yaml:"jwt"`

	// Upstreams configures the third-party APIs the site proxies
	Upstreams struct {
		// Timeout bounds every single upstream request
		Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// MapboxToken enables Mapbox geocoding and directions instead of Photon and OSRM
		MapboxToken string `env:"MAPBOX_TOKEN" yaml:"mapboxToken"`
		// MapboxURL is the Mapbox API base URL
		MapboxURL string `env:"MAPBOX_URL" env-default:"https://api.mapbox.com" yaml:"mapboxUrl"`
		// PhotonURL is the Photon geocoder base URL
		PhotonURL string `env:"PHOTON_URL" env-default:"https://photon.komoot.io" yaml:"photonUrl"`
		// OSRMURL is the OSRM routing base URL
		OSRMURL string `env:"OSRM_URL" env-default:"https://router.project-osrm.org" yaml:"osrmUrl"`
		// OpenMeteoGeocodingURL resolves city names
		OpenMeteoGeocodingURL string `env:"OPEN_METEO_GEOCODING_URL" env-default:"https://geocoding-api.open-meteo.com" yaml:"openMeteoGeocodingUrl"` //nolint: lll
		// OpenMeteoForecastURL serves forecasts outside the US
		OpenMeteoForecastURL string `env:"OPEN_METEO_FORECAST_URL" env-default:"https://api.open-meteo.com" yaml:"openMeteoForecastUrl"` //nolint: lll
		// NWSURL is the US national weather service API
		NWSURL string `env:"NWS_URL" env-default:"https://api.weather.gov" yaml:"nwsUrl"`
		// NWSUserAgent identifies the site to the weather service, which rejects anonymous clients
		NWSUserAgent string `env:"NWS_USER_AGENT" env-default:"bus2ride (ops@bus2ride.com)" yaml:"nwsUserAgent"`
		// IPAPIURL resolves visitor IPs to a city
		IPAPIURL string `env:"IPAPI_URL" env-default:"https://ipapi.co" yaml:"ipapiUrl"`
		// SpotifyAPIURL is the Spotify Web API base URL
		SpotifyAPIURL string `env:"SPOTIFY_API_URL" env-default:"https://api.spotify.com" yaml:"spotifyApiUrl"`
		// SpotifyTokenURL issues client-credentials tokens
		SpotifyTokenURL string `env:"SPOTIFY_TOKEN_URL" env-default:"https://accounts.spotify.com/api/token" yaml:"spotifyTokenUrl"` //nolint: lll
		// SpotifyClientID is the Spotify app client id
		SpotifyClientID string `env:"SPOTIFY_CLIENT_ID" yaml:"spotifyClientId"`
		// SpotifyClientSecret is the Spotify app client secret
		SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" yaml:"spotifyClientSecret"`
	} `yaml:"upstreams"`

	// Polls configures poll listing and result aggregation
	Polls struct {
		// BatchSize is how many polls one bulk-results call covers
		BatchSize int `env:"POLLS_BATCH_SIZE" env-default:"25" yaml:"batchSize"`
		// Concurrency bounds parallel bulk-results calls while aggregating
		Concurrency int `env:"POLLS_CONCURRENCY" env-default:"4" yaml:"concurrency"`
		// ByTagLimit is the default number of polls returned for a tag
		ByTagLimit int `env:"POLLS_BY_TAG_LIMIT" env-default:"25" yaml:"byTagLimit"`
	} `yaml:"polls"`

	// Leads configures delivery of quote and contact submissions
	Leads struct {
		// WebhookURL receives leads as JSON; delivery is disabled when empty
		WebhookURL string `env:"LEADS_WEBHOOK_URL" yaml:"webhookUrl"`
		// WebhookToken is sent as a bearer token to the webhook
		WebhookToken string `env:"LEADS_WEBHOOK_TOKEN" yaml:"webhookToken"`
		// MaxAttempts is how many times a delivery job runs before it is discarded
		MaxAttempts int `env:"LEADS_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
	} `yaml:"leads"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers bounds concurrently running jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
