package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server configuration
	Port string `yaml:"PORT"`

	// AWS S3 configuration
	AWSS3Bucket      string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region      string `yaml:"AWS_S3_REGION"`
	AWSAccessKey     string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey     string `yaml:"AWS_SECRET_KEY"`
	SignedURLTTLSecs string `yaml:"SIGNED_URL_TTL_SECONDS"`

	// OpenAI configuration
	OpenAIAPIKey      string `yaml:"OPENAI_API_KEY"`
	OpenAIModel       string `yaml:"OPENAI_MODEL"`
	OpenAIVisionModel string `yaml:"OPENAI_VISION_MODEL"`

	// Extraction pipeline configuration
	ExtractionMode      string `yaml:"EXTRACTION_MODE"` // "vision" or "textract"
	SweepMaxPendingDays string `yaml:"SWEEP_MAX_PENDING_DAYS"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("OPENAI_API_KEY", config.OpenAIAPIKey)
}

func GetConfig(key string) string {
	switch key {
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
	case "PORT":
		return config.Port
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "SIGNED_URL_TTL_SECONDS":
		return config.SignedURLTTLSecs
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_MODEL":
		return config.OpenAIModel
	case "OPENAI_VISION_MODEL":
		return config.OpenAIVisionModel
	case "EXTRACTION_MODE":
		return config.ExtractionMode
	case "SWEEP_MAX_PENDING_DAYS":
		return config.SweepMaxPendingDays
	default:
		return ""
	}
}
