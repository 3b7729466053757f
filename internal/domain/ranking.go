package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepresentativeTotal representa os totais agregados de um representante em um período.
// É sempre recalculado a partir do arquivo de exportação, nunca persistido.
type RepresentativeTotal struct {
	Representative string          `json:"representative"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalOrders    int64           `json:"total_orders"`
	Position       int             `json:"position"` // Posição no ranking (1 = primeiro lugar)
}

// RankedEntry é a junção de um RepresentativeTotal com a meta do mesmo período
type RankedEntry struct {
	RepresentativeTotal

	TargetRevenue     *decimal.Decimal `json:"target_revenue,omitempty"`
	TargetOrders      *int64           `json:"target_orders,omitempty"`
	CompletionPercent *decimal.Decimal `json:"completion_percent,omitempty"` // Receita total / meta * 100
	GoalPending       bool             `json:"goal_pending"`                 // true quando não há meta cadastrada
}

// RankingSummary consolida os totais do ranking do período
type RankingSummary struct {
	Representatives int              `json:"representatives"`
	TotalRevenue    decimal.Decimal  `json:"total_revenue"`
	TotalOrders     int64            `json:"total_orders"`
	AverageTicket   *decimal.Decimal `json:"average_ticket,omitempty"` // Receita total / pedidos; omitido sem pedidos
}

// RankingResponse é a resposta completa do ranking consumida pelo dashboard
type RankingResponse struct {
	Ranking          []RankedEntry  `json:"ranking"`
	Summary          RankingSummary `json:"summary"`
	Period           string         `json:"period"` // Formato yyyy-mm
	SourceFile       string         `json:"source_file"`
	SourceModifiedAt time.Time      `json:"source_modified_at"`
	SkippedRows      int            `json:"skipped_rows"`
}
