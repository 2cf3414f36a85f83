package utils

import (
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server
	AppPort  string `yaml:"APP_PORT"`
	Timezone string `yaml:"TIMEZONE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	StockAlertEmail  string `yaml:"STOCK_ALERT_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Quality analysis
	AnalysisProvider string `yaml:"ANALYSIS_PROVIDER"`
	AIModelURL       string `yaml:"AI_MODEL_URL"`

	// Assistant
	AssistantReplyDelayMS string `yaml:"ASSISTANT_REPLY_DELAY_MS"`
}

var defaults = map[string]string{
	"APP_PORT":                 "8080",
	"TIMEZONE":                 "UTC",
	"ANALYSIS_PROVIDER":        "simulated",
	"ASSISTANT_REPLY_DELAY_MS": "500",
}

var config Config

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

// LoadConfigFile reads path, then applies a .env file if one exists.
// Variables already present in the environment win over both.
func LoadConfigFile(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	_ = godotenv.Load()

	for key, field := range config.fields() {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"DB_USER":                  &c.DBUser,
		"DB_NAME":                  &c.DBName,
		"DB_PASSWORD":              &c.DBPassword,
		"DB_PORT":                  &c.DBPort,
		"DB_HOST":                  &c.DBHost,
		"APP_PORT":                 &c.AppPort,
		"TIMEZONE":                 &c.Timezone,
		"JWT_SECRET":               &c.JWTSecret,
		"SMTP_HOST":                &c.SMTPHost,
		"SMTP_PORT":                &c.SMTPPort,
		"SMTP_SENDER_NAME":         &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":          &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":       &c.SMTPAuthPassword,
		"STOCK_ALERT_EMAIL":        &c.StockAlertEmail,
		"AWS_S3_BUCKET":            &c.AWSS3Bucket,
		"AWS_S3_REGION":            &c.AWSS3Region,
		"AWS_ACCESS_KEY":           &c.AWSAccessKey,
		"AWS_SECRET_KEY":           &c.AWSSecretKey,
		"ANALYSIS_PROVIDER":        &c.AnalysisProvider,
		"AI_MODEL_URL":             &c.AIModelURL,
		"ASSISTANT_REPLY_DELAY_MS": &c.AssistantReplyDelayMS,
	}
}

func GetConfig(key string) string {
	field, ok := config.fields()[key]
	if ok && *field != "" {
		return *field
	}
	return defaults[key]
}

// Location returns the configured TIMEZONE, falling back to UTC.
func Location() *time.Location {
	loc, err := time.LoadLocation(GetConfig("TIMEZONE"))
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC\n", GetConfig("TIMEZONE"))
		return time.UTC
	}
	return loc
}
