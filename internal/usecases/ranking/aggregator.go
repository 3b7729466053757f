package ranking

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/representative-ranking-api/internal/domain"
)

// Aggregate agrupa os registros de venda por representante e produz os totais
// ordenados: receita decrescente, com empates resolvidos pelo identificador
// normalizado em ordem crescente. As posições são atribuídas de 1 a N sem
// lacunas. O resultado é determinístico para o mesmo conjunto de registros.
//
// Registros com período divergente do filtro são descartados; registros sem
// período passam sempre, pois o arquivo de exportação é tratado como o
// retrato do mês solicitado.
func Aggregate(records []domain.SalesRecord, period string) []domain.RepresentativeTotal {
	type bucket struct {
		name    string // Primeira grafia encontrada, usada na exibição
		revenue decimal.Decimal
		orders  int64
	}

	buckets := make(map[string]*bucket)
	keys := make([]string, 0, len(records))

	for _, record := range records {
		if period != "" && record.Period != "" && record.Period != period {
			continue
		}

		key := domain.NormalizeRepresentative(record.Representative)
		if key == "" {
			continue
		}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{name: record.Representative}
			buckets[key] = b
			keys = append(keys, key)
		}

		b.revenue = b.revenue.Add(record.Revenue)
		b.orders += record.Orders
	}

	sort.Slice(keys, func(i, j int) bool {
		left, right := buckets[keys[i]], buckets[keys[j]]
		if cmp := left.revenue.Cmp(right.revenue); cmp != 0 {
			return cmp > 0
		}
		return keys[i] < keys[j]
	})

	totals := make([]domain.RepresentativeTotal, 0, len(keys))
	for i, key := range keys {
		b := buckets[key]
		totals = append(totals, domain.RepresentativeTotal{
			Representative: b.name,
			TotalRevenue:   b.revenue,
			TotalOrders:    b.orders,
			Position:       i + 1,
		})
	}

	return totals
}
