package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Export        Export        `mapstructure:",squash"`
	GoalStore     GoalStore     `mapstructure:",squash"`
	ExportWatcher ExportWatcher `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Export configura o diretório monitorado de arquivos de exportação de vendas
type Export struct {
	Dir string `mapstructure:"export_dir"`
}

// GoalStore configura o arquivo durável de metas por representante/período
type GoalStore struct {
	Path string `mapstructure:"goal_store_path"`
}

// ExportWatcher configura o agendador que verifica a idade do arquivo de
// exportação mais recente
type ExportWatcher struct {
	CronSchedule string `mapstructure:"export_watcher_cron"`
	Enabled      bool   `mapstructure:"export_watcher_enabled"`
	MaxAgeHours  int    `mapstructure:"export_watcher_max_age_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 9000)

	// Caminho fixo usado pela rede de lojas; sobrescrito via EXPORT_DIR
	viper.SetDefault("EXPORT_DIR", `C:\META REPRESENTANTES\Exporta`)
	viper.SetDefault("GOAL_STORE_PATH", "metas.json")

	// Defaults para o monitoramento de frescor do arquivo de exportação
	viper.SetDefault("EXPORT_WATCHER_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("EXPORT_WATCHER_ENABLED", false)    // Habilitar verificação de frescor
	viper.SetDefault("EXPORT_WATCHER_MAX_AGE_HOURS", 36) // Idade máxima antes de alertar

	viper.SetDefault("LOG_LEVEL", "debug")
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
