package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Vault       Vault       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	InsightSync InsightSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL             string `mapstructure:"meta_base_url"`
	URL                 string `mapstructure:"-"`
	Version             string `mapstructure:"meta_version"`
	PageSize            int    `mapstructure:"meta_page_size"`
	RequestsPerSecond   int    `mapstructure:"meta_requests_per_second"`
	TimeoutSeconds      int    `mapstructure:"meta_timeout_seconds"`
	MaxPagesPerResource int    `mapstructure:"meta_max_pages_per_resource"`
}

// Vault guarda o segredo mestre usado para derivar a chave de encriptação
// das credenciais das contas. Nunca logar este valor
type Vault struct {
	MasterSecret string `mapstructure:"vault_master_secret"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type InsightSync struct {
	CronSchedule          string `mapstructure:"insight_sync_cron"`
	LookbackDays          int    `mapstructure:"insight_sync_lookback_days"`
	MaxConcurrentAccounts int    `mapstructure:"insight_sync_max_concurrent_accounts"`
	AccountTimeoutSeconds int    `mapstructure:"insight_sync_account_timeout_seconds"`
	StageWorkers          int    `mapstructure:"insight_sync_stage_workers"`
	Enabled               bool   `mapstructure:"insight_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/traffic_warehouse")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_PAGE_SIZE", 100)            // Limite de registros por página
	viper.SetDefault("META_REQUESTS_PER_SECOND", 2)    // Rate limit por credencial
	viper.SetDefault("META_TIMEOUT_SECONDS", 30)       // Timeout de cada requisição HTTP
	viper.SetDefault("META_MAX_PAGES_PER_RESOURCE", 0) // 0 = sem limite de páginas

	viper.SetDefault("VAULT_MASTER_SECRET", "") // Obrigatório em produção

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização de insights
	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *")            // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)             // 7 dias para buscar dados
	viper.SetDefault("INSIGHT_SYNC_MAX_CONCURRENT_ACCOUNTS", 3)   // 3 contas em paralelo
	viper.SetDefault("INSIGHT_SYNC_ACCOUNT_TIMEOUT_SECONDS", 900) // 15 minutos por conta
	viper.SetDefault("INSIGHT_SYNC_STAGE_WORKERS", 4)             // Fan-out dentro dos estágios 3 e 4
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
