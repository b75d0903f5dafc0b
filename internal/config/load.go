package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file using the provided base
// name, falling back to environment variables and defaults when the file is
// absent.
func LoadConfig(configName string) (*Config, error) {
	return loadConfig(fmt.Sprintf("%s.env", configName), "env")
}

// LoadConfigWithName loads configuration using the specified file name,
// auto-detecting the file type from its extension.
func LoadConfigWithName(configName string) (*Config, error) {
	return loadConfig(configName, "")
}

// loadConfig layers configuration sources: defaults first, then the config
// file if one is found, then environment variables, then validates the
// result. Load-time notices go to stderr; stdout belongs to the report in
// batch mode.
func loadConfig(configName, configType string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintf(os.Stderr, "INFO: no config file %q found, relying on environment variables and defaults\n", configName)
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "INFO: config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Kafka: KafkaConfig{
			Brokers:           v.GetString("KAFKA_BROKERS"),
			RejectedTopic:     v.GetString("KAFKA_REJECTED_TOPIC"),
			NumPartitions:     v.GetInt("KAFKA_NUM_PARTITIONS"),
			ReplicationFactor: v.GetInt("KAFKA_REPLICATION_FACTOR"),
			WriteTimeout:      v.GetDuration("KAFKA_WRITE_TIMEOUT"),
		},
		WorkerPool: WorkerPoolConfig{
			Size: v.GetInt("WORKER_POOL_SIZE"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with values both binaries can start
// with out of the box.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "payments-engine")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 120*time.Second)

	// Dead-lettering of rejected records is opt-in: an empty topic keeps the
	// diagnostic channel on logs only.
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_REJECTED_TOPIC", "")
	v.SetDefault("KAFKA_NUM_PARTITIONS", 1)
	v.SetDefault("KAFKA_REPLICATION_FACTOR", 1)
	v.SetDefault("KAFKA_WRITE_TIMEOUT", time.Second)

	v.SetDefault("WORKER_POOL_SIZE", 10)
}
