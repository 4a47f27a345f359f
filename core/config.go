package core

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string

	Server struct {
		Port            int
		ShutdownTimeout time.Duration
		AllowedOrigins  []string
	}

	Database struct {
		Host         string
		User         string
		Password     string
		Name         string
		Port         int
		MaxOpenConns int
	}

	Compare struct {
		URL     string
		Timeout time.Duration
	}

	UploadDir string

	FromEmail      string
	SendgridApiKey string
	RollbarToken   string
}

// NewConfig loads the app configuration: typed defaults first, then an
// optional .env file, then plain environment variable overrides.
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("DEBUG", true)
	v.SetDefault("ENV", "DEV")
	v.SetDefault("APP_NAME", "OneSimulation")
	v.SetDefault("BUILD", "dev")

	v.SetDefault("PORT", 5000)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "onesimulation")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)

	v.SetDefault("COMPARE_URL", "http://localhost:8000/compare")
	v.SetDefault("COMPARE_TIMEOUT", 30*time.Second)

	v.SetDefault("UPLOAD_DIR", "uploads")

	v.SetDefault("FROM_EMAIL", "noreply@localhost")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("ROLLBAR_TOKEN", "")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			log.Fatalf("config.godotenv: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(.env): %v", err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:          v.GetBool("DEBUG"),
		Env:            v.GetString("ENV"),
		AppName:        v.GetString("APP_NAME"),
		Build:          v.GetString("BUILD"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		FromEmail:      v.GetString("FROM_EMAIL"),
		SendgridApiKey: v.GetString("SENDGRID_API_KEY"),
		RollbarToken:   v.GetString("ROLLBAR_TOKEN"),
	}
	conf.TestMode = conf.Env == "TEST"

	conf.Server.Port = v.GetInt("PORT")
	conf.Server.ShutdownTimeout = v.GetDuration("SHUTDOWN_TIMEOUT")
	conf.Server.AllowedOrigins = v.GetStringSlice("ALLOWED_ORIGINS")

	conf.Database.Host = v.GetString("DB_HOST")
	conf.Database.User = v.GetString("DB_USER")
	conf.Database.Password = v.GetString("DB_PASSWORD")
	conf.Database.Name = v.GetString("DB_NAME")
	conf.Database.Port = v.GetInt("DB_PORT")
	conf.Database.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")

	conf.Compare.URL = v.GetString("COMPARE_URL")
	conf.Compare.Timeout = v.GetDuration("COMPARE_TIMEOUT")

	return conf
}

func (conf *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", conf.Server.Port)
}

func (conf *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: conf.AppName, Address: conf.FromEmail}
}
