package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"OchiqMuloqot/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `yaml:"env" env:"APP_ENV" env-default:"local"`
	Telegram struct {
		ApiKey   string  `yaml:"api_key" env:"TELEGRAM_TOKEN" env-default:"" validate:"required"`
		BotName  string  `yaml:"bot_name" env-default:"OchiqMuloqotBot"`
		AdminIds []int64 `yaml:"admin_ids" env:"ADMIN_IDS"`
	} `yaml:"telegram"`
	Dialog struct {
		SessionTTL    time.Duration   `yaml:"session_ttl" env-default:"30m" validate:"gt=0"`
		SweepInterval time.Duration   `yaml:"sweep_interval" env-default:"1m" validate:"gt=0"`
		DigestCron    string          `yaml:"digest_cron" env-default:"0 6 * * *"`
		Districts     []entity.Choice `yaml:"districts" validate:"omitempty,dive"`
	} `yaml:"dialog"`
	CSV struct {
		Path string `yaml:"path" env:"CSV_PATH" env-default:"registrations.csv" validate:"required"`
	} `yaml:"csv"`
	Sheets struct {
		Enabled         bool   `yaml:"enabled" env-default:"false"`
		CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_SHEETS_JSON" env-default:"credentials.json"`
		CredentialsJSON string `yaml:"credentials_json" env:"GOOGLE_SHEETS_JSON_CONTENT" env-default:""`
		SpreadsheetID   string `yaml:"spreadsheet_id" env:"GOOGLE_SHEETS_ID" env-default:"" validate:"required_if=Enabled true"`
		Range           string `yaml:"range" env-default:"A1"`
	} `yaml:"sheets"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:"admin"`
		Password string `yaml:"password" env-default:"pass"`
		Database string `yaml:"database" env-default:"" validate:"required_if=Enabled true"`
	} `yaml:"mongo"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9100"`
		ApiKey string `yaml:"key" env:"API_KEY" env-default:""`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
		if err = validator.New().Struct(instance); err != nil {
			instance = nil
			log.Fatal(fmt.Errorf("config: %w", err))
		}
	})
	return instance
}
