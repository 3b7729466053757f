// Package goaling contém o caso de uso de manutenção de metas mensais por
// representante: validação das entradas e gravação no repositório durável.
package goaling

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/representative-ranking-api/infrastructure/repository"
	"github.com/vfg2006/representative-ranking-api/internal/domain"
	"github.com/vfg2006/representative-ranking-api/pkg/utils"
)

type GoalService interface {
	// ListGoals retorna as metas cadastradas para o período, ordenadas pelo
	// representante normalizado
	ListGoals(period string) ([]*domain.Goal, error)

	// UpsertGoal valida e grava a meta do representante no período.
	// Última escrita vence em caso de gravações repetidas para a mesma chave.
	UpsertGoal(representative, period string, targetRevenue *decimal.Decimal, targetOrders *int64) (*domain.Goal, error)
}

type Service struct {
	goalRepo repository.GoalRepository
}

func NewService(goalRepo repository.GoalRepository) GoalService {
	return &Service{goalRepo: goalRepo}
}

func (s *Service) ListGoals(period string) ([]*domain.Goal, error) {
	if !utils.ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	byRepresentative, err := s.goalRepo.ListByPeriod(period)
	if err != nil {
		return nil, NewGoalError(ErrGoalPersistence, "", err.Error())
	}

	keys := make([]string, 0, len(byRepresentative))
	for key := range byRepresentative {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	goals := make([]*domain.Goal, 0, len(keys))
	for _, key := range keys {
		goals = append(goals, byRepresentative[key])
	}

	return goals, nil
}

func (s *Service) UpsertGoal(representative, period string, targetRevenue *decimal.Decimal, targetOrders *int64) (*domain.Goal, error) {
	representative = strings.TrimSpace(representative)
	if representative == "" {
		return nil, NewGoalError(ErrInvalidGoal, representative, "representante é obrigatório")
	}

	if !utils.ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	// Valor ausente ou não numérico chega aqui como nil (falha de decodificação
	// é tratada na borda HTTP); negativo é rejeitado em qualquer caso
	if targetRevenue == nil {
		return nil, NewGoalError(ErrInvalidGoal, representative, "valor de meta é obrigatório")
	}
	if targetRevenue.IsNegative() {
		return nil, NewGoalError(ErrInvalidGoal, representative, "valor de meta não pode ser negativo")
	}
	if targetOrders != nil && *targetOrders < 0 {
		return nil, NewGoalError(ErrInvalidGoal, representative, "quantidade de pedidos da meta não pode ser negativa")
	}

	goal := &domain.Goal{
		Representative: representative,
		Period:         period,
		TargetRevenue:  *targetRevenue,
		TargetOrders:   targetOrders,
	}

	if err := s.goalRepo.Upsert(goal); err != nil {
		return nil, NewGoalError(ErrGoalPersistence, representative, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"representative": goal.Representative,
		"period":         goal.Period,
	}).Info("Meta gravada com sucesso")

	return goal, nil
}
