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

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Storage            Storage            `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Ads                Ads                `mapstructure:",squash"`
	Prompt             Prompt             `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	ChangeTrackingSync ChangeTrackingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Storage struct {
	Driver              string `mapstructure:"storage_driver"`
	SnapshotDir         string `mapstructure:"snapshot_dir"`
	ChangelogDir        string `mapstructure:"changelog_dir"`
	RecentWindowPeriods int    `mapstructure:"changelog_recent_window_periods"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Ads aponta para o serviço que entrega os registros brutos de campanhas
type Ads struct {
	BaseURL     string        `mapstructure:"ads_base_url"`
	AccessToken string        `mapstructure:"ads_access_token"`
	Timeout     time.Duration `mapstructure:"ads_timeout"`
}

type Prompt struct {
	ModulesDir string `mapstructure:"prompt_modules_dir"`
	PagesFile  string `mapstructure:"prompt_pages_file"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ChangeTrackingSync struct {
	CronSchedule        string   `mapstructure:"change_tracking_sync_cron"`
	RequestDelaySeconds int      `mapstructure:"change_tracking_sync_request_delay_seconds"`
	Enabled             bool     `mapstructure:"change_tracking_sync_enabled"`
	TrackedScopes       []string `mapstructure:"change_tracking_sync_scopes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("STORAGE_DRIVER", StorageDriverFile)
	viper.SetDefault("SNAPSHOT_DIR", "snapshots")
	viper.SetDefault("CHANGELOG_DIR", "changelogs")
	viper.SetDefault("CHANGELOG_RECENT_WINDOW_PERIODS", 3)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tracking?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADS_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ADS_ACCESS_TOKEN", "")
	viper.SetDefault("ADS_TIMEOUT", "30s")

	viper.SetDefault("PROMPT_MODULES_DIR", "prompts")
	viper.SetDefault("PROMPT_PAGES_FILE", "")

	viper.SetDefault("AUTH_SECRET", "") // vazio desabilita a autenticação

	// Defaults para a captura agendada de snapshots
	viper.SetDefault("CHANGE_TRACKING_SYNC_CRON", "0 2 * * 1")        // Segundas-feiras às 2h da manhã
	viper.SetDefault("CHANGE_TRACKING_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("CHANGE_TRACKING_SYNC_ENABLED", false)           // Desabilitado por padrão
	viper.SetDefault("CHANGE_TRACKING_SYNC_SCOPES", "")               // "conta:campanha:nome da conta:nome da campanha,conta"

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if config.Storage.RecentWindowPeriods <= 0 {
		config.Storage.RecentWindowPeriods = 3
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
