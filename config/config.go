// config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Policy        PolicyConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// PolicyConfiguration stores the travel policy rule overrides
type PolicyConfiguration struct {
	RulesFile string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("log.dir", "logging")

	// Rate limiting
	viper.SetDefault("server.rateLimitRequests", 100)
	viper.SetDefault("server.rateLimitWindow", "1m")

	// Identity. SSO is off for local development; the X-Traveler-ID
	// header stands in for the gateway token.
	viper.SetDefault("auth.enabled", false)

	// Preference ranking
	viper.SetDefault("preferences.topVendors", 3)
	viper.SetDefault("preferences.profileCacheTTL", "15m")

	// Travel policy rule table. These mirror the published corporate
	// policy; the approval thresholds are inclusive-below (a package
	// costing exactly the threshold stays in the lower tier).
	viper.SetDefault("policy.flight.maxDomestic", 600.0)
	viper.SetDefault("policy.flight.maxInternational", 1800.0)
	viper.SetDefault("policy.flight.allowedCabins", []string{"economy"})
	viper.SetDefault("policy.hotel.tier1Cap", 250.0)
	viper.SetDefault("policy.hotel.tier2Cap", 200.0)
	viper.SetDefault("policy.hotel.tier3Cap", 150.0)
	viper.SetDefault("policy.hotel.tier1Cities", []string{
		"new york", "san francisco", "boston", "washington",
	})
	viper.SetDefault("policy.hotel.tier2Cities", []string{
		"chicago", "los angeles", "seattle", "miami",
		"denver", "atlanta", "dallas", "austin",
	})
	viper.SetDefault("policy.car.maxDailyRate", 75.0)
	viper.SetDefault("policy.car.allowedClasses", []string{"compact", "mid-size"})
	viper.SetDefault("policy.approval.autoLimit", 1500.0)
	viper.SetDefault("policy.approval.managerLimit", 2500.0)

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 retrieves a float64 value from the configuration
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetStringSlice retrieves a string slice value from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
