package domain

import "github.com/shopspring/decimal"

// Goal representa a meta mensal de um representante, identificada pelo par
// (representante, período). Cadastrada pela interface de manutenção e
// persistida indefinidamente, independente dos arquivos de exportação.
type Goal struct {
	Representative string          `json:"representative"`
	Period         string          `json:"period"` // Formato yyyy-mm
	TargetRevenue  decimal.Decimal `json:"target_revenue"`
	TargetOrders   *int64          `json:"target_orders"`
}

// Key retorna a chave composta usada no registro durável de metas
func (g *Goal) Key() string {
	return g.Representative + "|" + g.Period
}

// NormalizedKey retorna a chave composta com o representante normalizado,
// usada para busca e para a junção com o ranking
func (g *Goal) NormalizedKey() string {
	return NormalizeRepresentative(g.Representative) + "|" + g.Period
}
