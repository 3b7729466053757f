package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseBrazilianDecimal interpreta uma célula numérica do arquivo de exportação.
// Os exports usam o formato brasileiro ("1.234,56"); quando há vírgula, os
// pontos são tratados como separadores de milhar. Sem vírgula, o valor é
// interpretado como está ("1234.56" ou "1234").
func ParseBrazilianDecimal(value string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(value)
	normalized = strings.TrimPrefix(normalized, "R$")
	normalized = strings.TrimSpace(normalized)

	if strings.Contains(normalized, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}

	return decimal.NewFromString(normalized)
}

// ParseOrderCount interpreta a célula de quantidade de pedidos. Valores vazios
// ou não numéricos resultam em zero, já que a coluna é opcional.
func ParseOrderCount(value string) int64 {
	parsed, err := ParseBrazilianDecimal(value)
	if err != nil {
		return 0
	}
	return parsed.IntPart()
}
