package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Data struct {
		Provider   string `mapstructure:"provider"` // "local" or "s3"
		Dir        string `mapstructure:"dir"`
		MoviesFile string `mapstructure:"movies_file"`
		CastFile   string `mapstructure:"cast_file"`
		GenreFile  string `mapstructure:"genre_file"`
	} `mapstructure:"data"`
	S3 struct {
		KeyID    string `mapstructure:"key_id"`
		AppKey   string `mapstructure:"app_key"`
		Endpoint string `mapstructure:"endpoint"`
		Region   string `mapstructure:"region"`
		Bucket   string `mapstructure:"bucket"`
	} `mapstructure:"s3"`
	Server struct {
		Addr        string `mapstructure:"addr"`
		MetricsPort string `mapstructure:"metrics_port"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"server"`
}

func Load() *Config {
	viper.SetEnvPrefix("IMDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("data.provider")
	viper.BindEnv("data.dir")
	viper.BindEnv("data.movies_file")
	viper.BindEnv("data.cast_file")
	viper.BindEnv("data.genre_file")

	viper.BindEnv("s3.key_id")
	viper.BindEnv("s3.app_key")
	viper.BindEnv("s3.endpoint")
	viper.BindEnv("s3.region")
	viper.BindEnv("s3.bucket")

	viper.BindEnv("server.addr")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.log_level")

	// Defaults
	viper.SetDefault("data.provider", "local")
	viper.SetDefault("data.dir", ".")
	viper.SetDefault("data.movies_file", "imdb_clean.csv")
	viper.SetDefault("data.cast_file", "imdb_cast_exploded.csv")
	viper.SetDefault("data.genre_file", "imdb_genre_exploded.csv")

	viper.SetDefault("server.addr", ":8081")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.log_level", "error")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if cfg.Data.Provider == "s3" && cfg.S3.KeyID == "" {
		log.Fatal("Critical: S3 KeyID is missing (IMDB_S3_KEY_ID)")
	}

	return &cfg
}
