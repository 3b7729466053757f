// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/representative-ranking-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// goalRecord é a forma persistida de uma meta no registro durável
type goalRecord struct {
	TargetRevenue decimal.Decimal `json:"target_revenue"`
	TargetOrders  *int64          `json:"target_orders"`
}

type GoalRepository interface {
	// Get retorna a meta do representante no período, ou nil quando não há meta.
	// A busca normaliza o representante (minúsculas, sem espaços nas bordas).
	Get(representative, period string) (*domain.Goal, error)

	// ListByPeriod retorna as metas do período, indexadas pelo representante normalizado
	ListByPeriod(period string) (map[string]*domain.Goal, error)

	// Upsert grava a meta e reescreve o registro durável por completo antes de
	// retornar. Escritas concorrentes para a mesma chave seguem last-write-wins.
	Upsert(goal *domain.Goal) error
}

type goalRepository struct {
	path string

	// Serializa o ciclo ler-modificar-reescrever do arquivo de metas
	mu    sync.Mutex
	goals map[string]*domain.Goal // Indexado pela chave normalizada "representante|período"
}

// NewGoalRepository carrega o registro durável de metas do caminho informado.
// Um arquivo inexistente equivale a um conjunto vazio de metas.
func NewGoalRepository(path string) (GoalRepository, error) {
	repo := &goalRepository{
		path:  path,
		goals: make(map[string]*domain.Goal),
	}

	if err := repo.load(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *goalRepository) Get(representative, period string) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.NormalizeRepresentative(representative) + "|" + period
	goal, ok := r.goals[key]
	if !ok {
		return nil, nil
	}

	copied := *goal
	return &copied, nil
}

func (r *goalRepository) ListByPeriod(period string) (map[string]*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals := make(map[string]*domain.Goal)
	for _, goal := range r.goals {
		if goal.Period != period {
			continue
		}
		copied := *goal
		goals[domain.NormalizeRepresentative(goal.Representative)] = &copied
	}

	return goals, nil
}

func (r *goalRepository) Upsert(goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := goal.NormalizedKey()
	previous, existed := r.goals[key]

	copied := *goal
	r.goals[key] = &copied

	// O registro durável é reescrito por inteiro a cada gravação, garantindo que
	// um reinício reflita a última escrita confirmada. Uma gravação que falhou
	// não pode ficar visível nas leituras, então o valor anterior é restaurado.
	if err := r.persist(); err != nil {
		if existed {
			r.goals[key] = previous
		} else {
			delete(r.goals, key)
		}
		return err
	}

	return nil
}

func (r *goalRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "erro ao abrir o arquivo de metas")
	}

	records := make(map[string]goalRecord)
	if err := json.Unmarshal(raw, &records); err != nil {
		return errors.Wrap(err, "erro ao interpretar o arquivo de metas")
	}

	for key, record := range records {
		goal, err := goalFromRecord(key, record)
		if err != nil {
			return err
		}
		r.goals[goal.NormalizedKey()] = goal
	}

	return nil
}

// persist serializa todas as metas e substitui o arquivo de forma atômica
// (gravação em arquivo temporário seguida de rename)
func (r *goalRepository) persist() error {
	records := make(map[string]goalRecord, len(r.goals))
	for _, goal := range r.goals {
		records[goal.Key()] = goalRecord{
			TargetRevenue: goal.TargetRevenue,
			TargetOrders:  goal.TargetOrders,
		}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar as metas")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".metas-*.json")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário de metas")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao gravar o arquivo de metas")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao fechar o arquivo de metas")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao substituir o arquivo de metas")
	}

	return nil
}

// goalFromRecord reconstrói uma meta a partir da chave composta "representante|período"
func goalFromRecord(key string, record goalRecord) (*domain.Goal, error) {
	sep := -1
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '|' {
			sep = i
			break
		}
	}
	if sep <= 0 || sep == len(key)-1 {
		return nil, errors.Errorf("chave de meta inválida no arquivo: %q", key)
	}

	return &domain.Goal{
		Representative: key[:sep],
		Period:         key[sep+1:],
		TargetRevenue:  record.TargetRevenue,
		TargetOrders:   record.TargetOrders,
	}, nil
}
