package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Storage           Storage           `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Redis             Redis             `mapstructure:",squash"`
	Quota             Quota             `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Share             Share             `mapstructure:",squash"`
	Imaging           Imaging           `mapstructure:",squash"`
	PaymentStatusSync PaymentStatusSync `mapstructure:",squash"`
	StorageQuotaWatch StorageQuotaWatch `mapstructure:",squash"`
	Seed              Seed              `mapstructure:",squash"`
	Cors              Cors              `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// NodeID identifica a instância no gerador snowflake (0-1023)
	NodeID int64 `mapstructure:"node_id"`
}

// Storage define qual backend chave-valor guarda os slots das coleções
type Storage struct {
	Driver   string `mapstructure:"storage_driver"`
	BoltPath string `mapstructure:"storage_bolt_path"`
	Bucket   string `mapstructure:"storage_bucket"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL      string `mapstructure:"redis_url"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	Prefix   string `mapstructure:"redis_prefix"`
}

// Quota é o teto conservador de armazenamento, abaixo do máximo teórico do backend
type Quota struct {
	LimitBytes int64 `mapstructure:"quota_limit_bytes"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
	// AllowSignUp mantém o cadastro aberto depois da primeira conta
	AllowSignUp bool `mapstructure:"auth_allow_sign_up"`
}

type Share struct {
	PublicOrigin string `mapstructure:"share_public_origin"`
}

type Imaging struct {
	MaxWidth int `mapstructure:"imaging_max_width"`
	Quality  int `mapstructure:"imaging_quality"`
}

type PaymentStatusSync struct {
	CronSchedule string `mapstructure:"payment_status_sync_cron"`
	Enabled      bool   `mapstructure:"payment_status_sync_enabled"`
}

type StorageQuotaWatch struct {
	CronSchedule string `mapstructure:"storage_quota_watch_cron"`
	Enabled      bool   `mapstructure:"storage_quota_watch_enabled"`
}

type Seed struct {
	DemoData bool `mapstructure:"seed_demo_data"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("STORAGE_DRIVER", "bolt") // memory | bolt | postgres | redis
	viper.SetDefault("STORAGE_BOLT_PATH", "data/mua-studio.db")
	viper.SetDefault("STORAGE_BUCKET", "slots")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mua_studio?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_PREFIX", "mua-studio:")

	// 4 MiB: o armazenamento do navegador tem teto prático de 5 MiB por origem
	viper.SetDefault("QUOTA_LIMIT_BYTES", 4*1024*1024)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ALLOW_SIGN_UP", false)

	viper.SetDefault("SHARE_PUBLIC_ORIGIN", "http://localhost:3000")

	viper.SetDefault("IMAGING_MAX_WIDTH", 1280)
	viper.SetDefault("IMAGING_QUALITY", 75)

	viper.SetDefault("PAYMENT_STATUS_SYNC_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("PAYMENT_STATUS_SYNC_ENABLED", true)

	viper.SetDefault("STORAGE_QUOTA_WATCH_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("STORAGE_QUOTA_WATCH_ENABLED", true)

	viper.SetDefault("SEED_DEMO_DATA", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("NODE_ID", 1)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Auth.Secret == "" {
		config.Auth.Secret = config.SecretKey
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
