package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Caller identity. AUTH_MODE selects how API callers are identified:
	// "none", "jwt" or "firebase".
	AuthMode                string `mapstructure:"AUTH_MODE"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Availability evaluation: "boolean" (flat availableToday flag) or
	// "weekly" (weekly working hours plus blocked dates).
	AvailabilityPolicy string `mapstructure:"AVAILABILITY_POLICY"`

	// Matching tunables. Defaults are the values the product launched with.
	MatchMaxDistanceKm       float64 `mapstructure:"MATCH_MAX_DISTANCE_KM"`
	MatchReviewBonusStep     float64 `mapstructure:"MATCH_REVIEW_BONUS_STEP"`
	MatchReviewBonusCap      float64 `mapstructure:"MATCH_REVIEW_BONUS_CAP"`
	MatchDistancePenaltyStep float64 `mapstructure:"MATCH_DISTANCE_PENALTY_STEP"`
	MatchDistancePenaltyCap  float64 `mapstructure:"MATCH_DISTANCE_PENALTY_CAP"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "homeconnect")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("AUTH_MODE", "none")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("AVAILABILITY_POLICY", "boolean")
	viper.SetDefault("MATCH_MAX_DISTANCE_KM", 7.0)
	viper.SetDefault("MATCH_REVIEW_BONUS_STEP", 0.05)
	viper.SetDefault("MATCH_REVIEW_BONUS_CAP", 1.0)
	viper.SetDefault("MATCH_DISTANCE_PENALTY_STEP", 0.1)
	viper.SetDefault("MATCH_DISTANCE_PENALTY_CAP", 2.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
