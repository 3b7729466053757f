package ranking

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/representative-ranking-api/infrastructure/exportfile"
	"github.com/vfg2006/representative-ranking-api/infrastructure/repository"
	"github.com/vfg2006/representative-ranking-api/internal/config"
	"github.com/vfg2006/representative-ranking-api/internal/domain"
	"github.com/vfg2006/representative-ranking-api/pkg/utils"
)

var oneHundred = decimal.NewFromInt(100)

// RankingService calcula o ranking de representantes do período, já combinado
// com as metas cadastradas
type RankingService interface {
	ComputeRanking(period string) (*domain.RankingResponse, error)
}

type Service struct {
	exportDir string
	locator   exportfile.Locator
	parser    exportfile.Parser
	goalRepo  repository.GoalRepository
}

func NewService(
	cfg *config.Config,
	locator exportfile.Locator,
	parser exportfile.Parser,
	goalRepo repository.GoalRepository,
) RankingService {
	return &Service{
		exportDir: cfg.Export.Dir,
		locator:   locator,
		parser:    parser,
		goalRepo:  goalRepo,
	}
}

// ComputeRanking relê o sistema de arquivos a cada chamada: o valor do sistema
// está no frescor do dado, então não há cache do arquivo de exportação.
func (s *Service) ComputeRanking(period string) (*domain.RankingResponse, error) {
	if !utils.ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	file, err := s.locator.LatestFile(s.exportDir)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(file.Path)
	if err != nil {
		return nil, err
	}

	if parsed.SkippedRows > 0 {
		logrus.WithFields(logrus.Fields{
			"source_file":  file.Name,
			"skipped_rows": parsed.SkippedRows,
		}).Warn("Linhas com valor de venda não numérico foram descartadas")
	}

	totals := Aggregate(parsed.Records, period)
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	goals, err := s.goalRepo.ListByPeriod(period)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RankedEntry, 0, len(totals))
	for _, total := range totals {
		entries = append(entries, joinWithGoal(total, goals))
	}

	return &domain.RankingResponse{
		Ranking:          entries,
		Summary:          buildSummary(totals),
		Period:           period,
		SourceFile:       file.Name,
		SourceModifiedAt: file.ModTime,
		SkippedRows:      parsed.SkippedRows,
	}, nil
}

// buildSummary consolida os totais do período exibidos no topo do dashboard.
// O ticket médio só é calculado quando o arquivo traz a quantidade de pedidos.
func buildSummary(totals []domain.RepresentativeTotal) domain.RankingSummary {
	summary := domain.RankingSummary{Representatives: len(totals)}

	for _, total := range totals {
		summary.TotalRevenue = summary.TotalRevenue.Add(total.TotalRevenue)
		summary.TotalOrders += total.TotalOrders
	}

	if summary.TotalOrders > 0 {
		ticket := summary.TotalRevenue.Div(decimal.NewFromInt(summary.TotalOrders)).Round(2)
		summary.AverageTicket = &ticket
	}

	return summary
}

// joinWithGoal combina um total agregado com a meta do mesmo representante no
// período, quando existir. O percentual de atingimento só é calculado para
// metas com valor positivo.
func joinWithGoal(total domain.RepresentativeTotal, goals map[string]*domain.Goal) domain.RankedEntry {
	entry := domain.RankedEntry{
		RepresentativeTotal: total,
		GoalPending:         true,
	}

	goal, ok := goals[domain.NormalizeRepresentative(total.Representative)]
	if !ok {
		return entry
	}

	entry.GoalPending = false
	entry.TargetRevenue = &goal.TargetRevenue
	entry.TargetOrders = goal.TargetOrders

	if goal.TargetRevenue.IsPositive() {
		percent := total.TotalRevenue.Div(goal.TargetRevenue).Mul(oneHundred).Round(2)
		entry.CompletionPercent = &percent
	}

	return entry
}
