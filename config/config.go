package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	Environment   string
	MongoDBConfig MongoDBConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("MONGODB_DB_NAME"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "3000"
	}

	if conf.Environment == "" {
		conf.Environment = "development"
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "inventory"
	}

	return &conf
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
