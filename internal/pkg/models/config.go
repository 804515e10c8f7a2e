package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Tracking TrackingConfig
	Routing  RoutingConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TrackingConfig contains tracking service specific configuration
type TrackingConfig struct {
	MinUpdateIntervalMS  int     `json:"min_update_interval_ms"` // Minimum interval between accepted updates per driver
	ArrivedRadiusM       float64 `json:"arrived_radius_m"`       // Geofence radius for arrival events
	ApproachingRadiusM   float64 `json:"approaching_radius_m"`   // Geofence radius for approaching events
	HistoryRetentionDays int     `json:"history_retention_days"` // Location history retention window
	RetentionSweepHours  int     `json:"retention_sweep_hours"`  // Interval between retention sweeps
	NearbyRadiusKm       float64 `json:"nearby_radius_km"`       // Default radius for nearby driver lookups
}

// RoutingConfig contains the external routing service configuration
type RoutingConfig struct {
	ServiceURL     string  `json:"service_url"`     // Base URL of the routing service; empty disables lookups
	TimeoutSeconds int     `json:"timeout_seconds"` // HTTP timeout for routing lookups
	RoadFactor     float64 `json:"road_factor"`     // Multiplier applied to straight-line distance on fallback
	AvgSpeedKmh    float64 `json:"avg_speed_kmh"`   // Assumed speed for fallback duration estimates
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
