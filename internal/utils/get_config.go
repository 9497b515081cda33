package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port   string `yaml:"PORT"`
	AppEnv string `yaml:"APP_ENV"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads config.yaml when present and falls back to .env /
// process environment for any key left empty.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			log.Printf("No config.yaml or .env found, relying on environment: %s\n", err)
		}
	}

	fillFromEnv(&config.Port, "PORT")
	fillFromEnv(&config.AppEnv, "APP_ENV")
	fillFromEnv(&config.DBUser, "DB_USER")
	fillFromEnv(&config.DBName, "DB_NAME")
	fillFromEnv(&config.DBPassword, "DB_PASSWORD")
	fillFromEnv(&config.DBPort, "DB_PORT")
	fillFromEnv(&config.DBHost, "DB_HOST")
	fillFromEnv(&config.GeminiAPIKey, "GEMINI_API_KEY")
	fillFromEnv(&config.GeminiModel, "GEMINI_MODEL")
	fillFromEnv(&config.AWSS3Bucket, "AWS_S3_BUCKET")
	fillFromEnv(&config.AWSS3Region, "AWS_S3_REGION")
	fillFromEnv(&config.AWSAccessKey, "AWS_ACCESS_KEY")
	fillFromEnv(&config.AWSSecretKey, "AWS_SECRET_KEY")

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.GeminiModel == "" {
		config.GeminiModel = "gemini-2.5-flash"
	}
}

func fillFromEnv(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		return config.Port
	case "APP_ENV":
		return config.AppEnv
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
