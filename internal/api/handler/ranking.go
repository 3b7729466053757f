package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/representative-ranking-api/infrastructure/exportfile"
	"github.com/vfg2006/representative-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/representative-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/representative-ranking-api/pkg/log"
	"github.com/vfg2006/representative-ranking-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetRepresentativeRanking retorna o ranking de representantes do período,
// combinado com as metas cadastradas
func GetRepresentativeRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, ok := periodFromQuery(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"period": period,
		}).Info("ranking: calculando ranking de representantes")

		response, err := service.ComputeRanking(period)
		if err != nil {
			writeRankingError(w, logger, period, err)
			return
		}

		logger.WithFields(log.Fields{
			"period":       period,
			"source_file":  response.SourceFile,
			"entries":      len(response.Ranking),
			"skipped_rows": response.SkippedRows,
		}).Info("ranking: ranking calculado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("ranking: erro ao codificar resposta")
		}
	})
}

func writeRankingError(w http.ResponseWriter, logger log.Logger, period string, err error) {
	logger.WithError(err).WithFields(log.Fields{
		"period": period,
	}).Warn("ranking: falha ao calcular ranking")

	switch {
	case errors.Is(err, exportfile.ErrNoEligibleFile):
		apiErrors.WriteError(w, apiErrors.ErrNoEligibleFile, "Nenhum arquivo de exportação encontrado no diretório monitorado", nil)
	case errors.Is(err, exportfile.ErrUnreadableFile):
		apiErrors.WriteError(w, apiErrors.ErrUnreadableFile, "O arquivo de exportação mais recente não pôde ser lido", err.Error())
	case errors.Is(err, ranking.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrNoData, "O arquivo de exportação não contém registros de venda utilizáveis", nil)
	case errors.Is(err, ranking.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use mês e ano válidos", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o ranking", nil)
	}
}

// periodFromQuery valida os parâmetros month/year e monta o período yyyy-mm
func periodFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	if month == "" || year == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
		return "", false
	}

	// Validar mês (entre 01 e 12)
	if len(month) != 2 || month < "01" || month > "12" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use formato de dois dígitos (01-12)", nil)
		return "", false
	}

	// Validar ano (4 dígitos)
	if len(year) != 4 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
		return "", false
	}

	period, err := utils.PeriodFromMonthYear(month, year)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)
		return "", false
	}

	return period, true
}
