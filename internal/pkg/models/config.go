package models

// Config is the application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	Logger      LoggerConfig
	Payment     PaymentConfig
	Reservation ReservationConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PaymentConfig holds the payment gateway adapter endpoints
type PaymentConfig struct {
	StripeURL      string
	BraintreeURL   string
	TimeoutSeconds int
}

// ReservationConfig holds the availability service client configuration
type ReservationConfig struct {
	URL            string
	TimeoutSeconds int
	MaxAttempts    int
}
