package utils

import (
	"fmt"
	"time"
)

// PeriodLayout é o formato de período mensal usado em toda a aplicação (yyyy-mm)
const PeriodLayout = "2006-01"

// ValidPeriod verifica se a string está no formato de período yyyy-mm
func ValidPeriod(period string) bool {
	_, err := time.Parse(PeriodLayout, period)
	return err == nil
}

// PeriodFromMonthYear monta um período yyyy-mm a partir de mês e ano separados
func PeriodFromMonthYear(month, year string) (string, error) {
	period := fmt.Sprintf("%s-%s", year, month)
	if !ValidPeriod(period) {
		return "", fmt.Errorf("período inválido: mês %q, ano %q", month, year)
	}
	return period, nil
}

// PeriodFromDate extrai o período yyyy-mm de uma célula de data do arquivo de
// exportação. Os exports chegam com layouts variados, então vários são tentados.
func PeriodFromDate(value string) (string, bool) {
	layouts := []string{
		"02/01/2006", // padrão brasileiro
		"2006-01-02",
		"02-01-2006",
		"01/2006",
		"2006-01",
	}

	for _, layout := range layouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date.Format(PeriodLayout), true
		}
	}

	return "", false
}
