// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Valores monetários são serializados como números no JSON (e não como strings)
	decimal.MarshalJSONWithoutQuotes = true
}

// SalesRecord representa uma linha do arquivo de exportação de vendas
type SalesRecord struct {
	Representative string          `json:"representative"`
	Revenue        decimal.Decimal `json:"revenue"`
	Orders         int64           `json:"orders"`
	Period         string          `json:"period,omitempty"` // Formato yyyy-mm quando o arquivo possui coluna de data
}

// NormalizeRepresentative normaliza o identificador de um representante para
// agrupamento e comparação: remove espaços nas bordas e converte para minúsculas.
// Não há normalização de acentos ("João" e "Joao" são representantes distintos).
func NormalizeRepresentative(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
