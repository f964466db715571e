package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Seed            Seed            `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	DashboardReport DashboardReport `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Seed struct {
	File    string `mapstructure:"seed_file"`
	Default bool   `mapstructure:"seed_default"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DashboardReport struct {
	CronSchedule string `mapstructure:"dashboard_report_cron"`
	Enabled      bool   `mapstructure:"dashboard_report_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FORMAT", "text")

	// Sem arquivo, os oito registros de demonstração são carregados
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("SEED_DEFAULT", true)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DASHBOARD_REPORT_CRON", "0 * * * *") // A cada hora cheia
	v.SetDefault("DASHBOARD_REPORT_ENABLED", false)
}

// Flags registra as flags de linha de comando que sobrepõem o ambiente
func Flags(fs *pflag.FlagSet) {
	fs.String("host", "", "endereço de escuta do servidor")
	fs.String("port", "", "porta do servidor")
	fs.String("seed-file", "", "arquivo JSON com os registros iniciais")
}

func NewConfig(fs *pflag.FlagSet) (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	return Load(viper.New(), fs)
}

// Load monta a configuração a partir dos padrões, do ambiente e das flags
// já parseadas em fs (pode ser nil).
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	config := &Config{}

	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	if fs != nil {
		bindFlag(v, fs, "HOST", "host")
		bindFlag(v, fs, "PORT", "port")
		bindFlag(v, fs, "SEED_FILE", "seed-file")
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// bindFlag só liga a flag quando ela foi informada, senão o valor vazio
// da flag esconderia o ambiente e os padrões.
func bindFlag(v *viper.Viper, fs *pflag.FlagSet, key, name string) {
	flag := fs.Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	if err := v.BindPFlag(key, flag); err != nil {
		logrus.WithError(err).Warnf("Não foi possível ligar a flag --%s", name)
	}
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas o ambiente")
}
