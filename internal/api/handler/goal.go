package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/representative-ranking-api/internal/usecases/goaling"
	"github.com/vfg2006/representative-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/representative-ranking-api/pkg/log"
)

// upsertGoalRequest é o corpo aceito pela manutenção de metas. O valor da meta
// decodifica tanto números JSON quanto strings numéricas.
type upsertGoalRequest struct {
	Representative string           `json:"representative"`
	Period         string           `json:"period"` // Formato yyyy-mm
	TargetRevenue  *decimal.Decimal `json:"target_revenue"`
	TargetOrders   *int64           `json:"target_orders"`
}

// ListGoals retorna as metas cadastradas para o período
func ListGoals(service goaling.GoalService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, ok := periodFromQuery(w, r)
		if !ok {
			return
		}

		goals, err := service.ListGoals(period)
		if err != nil {
			writeGoalError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"period": period,
			"goals":  len(goals),
		}).Info("metas: metas do período recuperadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(goals); err != nil {
			logger.WithError(err).Error("metas: erro ao codificar resposta")
		}
	})
}

// UpsertGoal cadastra ou atualiza a meta de um representante em um período
func UpsertGoal(service goaling.GoalService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request upsertGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			// Um valor de meta não numérico falha aqui na decodificação
			apiErrors.WriteError(w, apiErrors.ErrInvalidGoal, "Corpo da requisição inválido", err.Error())
			return
		}

		goal, err := service.UpsertGoal(
			request.Representative,
			request.Period,
			request.TargetRevenue,
			request.TargetOrders,
		)
		if err != nil {
			writeGoalError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"representative": goal.Representative,
			"period":         goal.Period,
		}).Info("metas: meta gravada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(goal); err != nil {
			logger.WithError(err).Error("metas: erro ao codificar resposta")
		}
	})
}

func writeGoalError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Warn("metas: falha na operação de metas")

	switch {
	case errors.Is(err, goaling.ErrInvalidGoal):
		apiErrors.WriteError(w, apiErrors.ErrInvalidGoal, err.Error(), nil)
	case errors.Is(err, goaling.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use o formato yyyy-mm", nil)
	case errors.Is(err, goaling.ErrGoalPersistence):
		apiErrors.WriteError(w, apiErrors.ErrGoalPersistence, "Erro ao gravar o arquivo de metas", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a operação de metas", nil)
	}
}
