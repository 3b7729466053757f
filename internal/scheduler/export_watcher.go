// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/representative-ranking-api/infrastructure/exportfile"
	"github.com/vfg2006/representative-ranking-api/internal/config"
)

type ExportWatcherConfig struct {
	CronSchedule string
	Enabled      bool
	MaxAge       time.Duration
}

// ExportStatus descreve o resultado de uma verificação de frescor do
// arquivo de exportação mais recente
type ExportStatus struct {
	File    string
	ModTime time.Time
	Age     time.Duration
	Stale   bool
}

// ExportWatcherService verifica periodicamente se o diretório de exportação
// recebeu um arquivo recente. Um arquivo velho demais normalmente significa
// que a rotina de exportação do ERP parou de rodar.
type ExportWatcherService struct {
	scheduler *gocron.Scheduler
	locator   exportfile.Locator
	exportDir string
	config    ExportWatcherConfig

	mu          sync.Mutex
	lastCheckAt time.Time
	lastStatus  *ExportStatus
}

func NewExportWatcherService(locator exportfile.Locator, cfg *config.Config) *ExportWatcherService {
	watcherConfig := ExportWatcherConfig{
		CronSchedule: cfg.ExportWatcher.CronSchedule, // Default: 8h da manhã todos os dias
		Enabled:      cfg.ExportWatcher.Enabled,      // Default: desabilitado
		MaxAge:       time.Duration(cfg.ExportWatcher.MaxAgeHours) * time.Hour,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watcherConfig.CronSchedule,
		"max_age":       watcherConfig.MaxAge,
	}).Info("Configuração do monitor de arquivos de exportação carregada")

	return &ExportWatcherService{
		scheduler: scheduler,
		locator:   locator,
		exportDir: cfg.Export.Dir,
		config:    watcherConfig,
	}
}

func (s *ExportWatcherService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de arquivos de exportação desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor de arquivos de exportação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		status, err := s.CheckExportFreshness()
		if err != nil {
			logrus.WithError(err).Error("Erro ao verificar o diretório de exportação")
			return
		}

		if status.Stale {
			logrus.WithFields(logrus.Fields{
				"file":    status.File,
				"age":     status.Age,
				"max_age": s.config.MaxAge,
			}).Warn("Arquivo de exportação mais recente está desatualizado")
		} else {
			logrus.WithFields(logrus.Fields{
				"file": status.File,
				"age":  status.Age,
			}).Info("Arquivo de exportação mais recente dentro do prazo esperado")
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *ExportWatcherService) Stop() {
	s.scheduler.Stop()
	logrus.Info("Monitor de arquivos de exportação parado")
}

// CheckExportFreshness localiza o arquivo mais recente e calcula sua idade
func (s *ExportWatcherService) CheckExportFreshness() (*ExportStatus, error) {
	file, err := s.locator.LatestFile(s.exportDir)
	if err != nil {
		return nil, err
	}

	age := time.Since(file.ModTime)
	status := &ExportStatus{
		File:    file.Name,
		ModTime: file.ModTime,
		Age:     age,
		Stale:   age > s.config.MaxAge,
	}

	s.mu.Lock()
	s.lastCheckAt = time.Now()
	s.lastStatus = status
	s.mu.Unlock()

	return status, nil
}

// LastStatus retorna o resultado da última verificação, ou nil se nenhuma ocorreu
func (s *ExportWatcherService) LastStatus() (*ExportStatus, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStatus, s.lastCheckAt
}
