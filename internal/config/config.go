package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	GA4          GA4          `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
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

// GA4 reúne as credenciais da conta de serviço e o endpoint da Data API
type GA4 struct {
	PropertyID     string        `mapstructure:"ga4_property_id"`
	ClientEmail    string        `mapstructure:"ga4_client_email"`
	PrivateKey     string        `mapstructure:"ga4_private_key"`
	APIURL         string        `mapstructure:"ga4_api_url"`
	TokenURL       string        `mapstructure:"ga4_token_url"`
	RequestTimeout time.Duration `mapstructure:"ga4_request_timeout"`
}

type Dashboard struct {
	APIURL        string        `mapstructure:"dashboard_api_url"`
	LookbackDays  int           `mapstructure:"dashboard_lookback_days"`
	WidgetTimeout time.Duration `mapstructure:"dashboard_widget_timeout"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
	APIURL    string `mapstructure:"render_api_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type SnapshotSync struct {
	CronSchedule  string `mapstructure:"snapshot_sync_cron"`
	RetentionDays int    `mapstructure:"snapshot_retention_days"`
	Enabled       bool   `mapstructure:"snapshot_sync_enabled"`
}

// Nomes dos secret files do Render que podem completar as credenciais do GA4
const (
	SecretGA4PropertyID  = "ga4_property_id"
	SecretGA4ClientEmail = "ga4_client_email"
	SecretGA4PrivateKey  = "ga4_private_key"
)

// IsConfigured indica se há credenciais suficientes para chamar o GA4.
// Sem elas o servidor responde sempre com dados de exemplo.
func (g GA4) IsConfigured() bool {
	return g.PropertyID != "" && g.ClientEmail != "" && g.PrivateKey != ""
}

// NormalizedPrivateKey converte "\n" literais (comum em variáveis de ambiente) em quebras de linha
func (g GA4) NormalizedPrivateKey() string {
	return strings.ReplaceAll(g.PrivateKey, `\n`, "\n")
}

func (d Database) IsConfigured() bool {
	return d.URL != ""
}

func (s Server) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 3001)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "") // vazio desabilita o histórico de snapshots
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GA4_PROPERTY_ID", "")
	viper.SetDefault("GA4_CLIENT_EMAIL", "")
	viper.SetDefault("GA4_PRIVATE_KEY", "")
	viper.SetDefault("GA4_API_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GA4_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GA4_REQUEST_TIMEOUT", "5s")

	viper.SetDefault("DASHBOARD_API_URL", "") // vazio: a página usa o serviço de relatórios do próprio processo
	viper.SetDefault("DASHBOARD_LOOKBACK_DAYS", 60)
	viper.SetDefault("DASHBOARD_WIDGET_TIMEOUT", "5s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_API_URL", "https://api.render.com/v1")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_RETENTION_DAYS", 400)    // ~13 meses de histórico
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)    // Habilitar histórico diário

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	// Secret files do Render completam as credenciais ausentes
	if config.Render.ServiceID != "" && !config.GA4.IsConfigured() {
		renderClient := NewRenderClient(config)
		secrets, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Warn("config: could not list Render secrets, GA4 may run in sample data mode")
		} else {
			config.ApplySecrets(secrets)
		}
	}

	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ApplySecrets preenche apenas as credenciais do GA4 que ainda estão vazias
func (c *Config) ApplySecrets(secrets map[string]string) {
	fill := func(target *string, name string) {
		if value, ok := secrets[name]; ok && *target == "" {
			*target = strings.TrimSpace(value)
		}
	}

	fill(&c.GA4.PropertyID, SecretGA4PropertyID)
	fill(&c.GA4.ClientEmail, SecretGA4ClientEmail)
	fill(&c.GA4.PrivateKey, SecretGA4PrivateKey)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
