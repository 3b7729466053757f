package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/representative-ranking-api/infrastructure/exportfile"
	"github.com/vfg2006/representative-ranking-api/infrastructure/repository"
	"github.com/vfg2006/representative-ranking-api/internal/api"
	"github.com/vfg2006/representative-ranking-api/internal/config"
	"github.com/vfg2006/representative-ranking-api/internal/scheduler"
	"github.com/vfg2006/representative-ranking-api/internal/usecases/goaling"
	"github.com/vfg2006/representative-ranking-api/internal/usecases/ranking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O registro durável de metas é carregado uma única vez na inicialização e
	// reescrito a cada gravação
	goalRepo, err := repository.NewGoalRepository(cfg.GoalStore.Path)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o arquivo de metas")
	}
	logrus.WithField("path", cfg.GoalStore.Path).Info("Arquivo de metas carregado com sucesso")

	locator := exportfile.NewLocator()
	parser := exportfile.NewParser()

	rankingService := ranking.NewService(cfg, locator, parser, goalRepo)
	goalService := goaling.NewService(goalRepo)

	// Inicializa o monitor de frescor do diretório de exportação
	exportWatcher := scheduler.NewExportWatcherService(locator, cfg)
	if err := exportWatcher.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de arquivos de exportação")
	}

	server, err := api.New(cfg, rankingService, goalService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
