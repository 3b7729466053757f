package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/representative-ranking-api/internal/domain"
)

func record(representative string, revenue float64, orders int64) domain.SalesRecord {
	return domain.SalesRecord{
		Representative: representative,
		Revenue:        decimal.NewFromFloat(revenue),
		Orders:         orders,
	}
}

func TestAggregate_AgrupaSemDistincaoDeMaiusculas(t *testing.T) {
	// "Ana" e "ana" são o mesmo representante; o empate de receita com Bruno
	// é resolvido pelo identificador normalizado em ordem crescente
	records := []domain.SalesRecord{
		record("Ana", 1000, 10),
		record("Bruno", 1500, 8),
		record("ana", 500, 2),
	}

	totals := Aggregate(records, "2024-05")

	require.Len(t, totals, 2)

	assert.Equal(t, 1, totals[0].Position)
	assert.Equal(t, "Ana", totals[0].Representative) // Primeira grafia encontrada
	assert.True(t, totals[0].TotalRevenue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, int64(12), totals[0].TotalOrders)

	assert.Equal(t, 2, totals[1].Position)
	assert.Equal(t, "Bruno", totals[1].Representative)
	assert.True(t, totals[1].TotalRevenue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, int64(8), totals[1].TotalOrders)
}

func TestAggregate_EspacosNasBordasNaoSeparamRepresentantes(t *testing.T) {
	records := []domain.SalesRecord{
		record("João", 100, 1),
		record("joão ", 200, 2),
		record(" JOÃO", 300, 3),
	}

	totals := Aggregate(records, "")

	require.Len(t, totals, 1)
	assert.True(t, totals[0].TotalRevenue.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, int64(6), totals[0].TotalOrders)
}

func TestAggregate_OrdenacaoDeterministica(t *testing.T) {
	records := []domain.SalesRecord{
		record("Carla", 900, 3),
		record("Bruno", 1200, 5),
		record("Ana", 900, 2),
		record("Daniel", 2000, 7),
	}

	first := Aggregate(records, "")

	// Receita decrescente; Ana antes de Carla no empate de 900
	require.Len(t, first, 4)
	assert.Equal(t, "Daniel", first[0].Representative)
	assert.Equal(t, "Bruno", first[1].Representative)
	assert.Equal(t, "Ana", first[2].Representative)
	assert.Equal(t, "Carla", first[3].Representative)

	// Reexecutar sobre o mesmo conjunto produz exatamente a mesma saída
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Aggregate(records, ""))
	}
}

func TestAggregate_PosicoesSaoSequenciaCompleta(t *testing.T) {
	records := []domain.SalesRecord{
		record("Ana", 100, 1),
		record("Bruno", 200, 1),
		record("Carla", 300, 1),
		record("Daniel", 400, 1),
		record("Elisa", 500, 1),
	}

	totals := Aggregate(records, "")

	// Posições exatamente de 1 a N, sem lacunas nem repetições
	require.Len(t, totals, 5)
	for i, total := range totals {
		assert.Equal(t, i+1, total.Position)
	}
}

func TestAggregate_FiltroDePeriodo(t *testing.T) {
	records := []domain.SalesRecord{
		{Representative: "Ana", Revenue: decimal.NewFromInt(100), Period: "2024-05"},
		{Representative: "Bruno", Revenue: decimal.NewFromInt(200), Period: "2024-04"},
		{Representative: "Carla", Revenue: decimal.NewFromInt(300)}, // Sem período: sempre incluído
	}

	totals := Aggregate(records, "2024-05")

	require.Len(t, totals, 2)
	assert.Equal(t, "Carla", totals[0].Representative)
	assert.Equal(t, "Ana", totals[1].Representative)
}

func TestAggregate_EntradaVazia(t *testing.T) {
	assert.Empty(t, Aggregate(nil, "2024-05"))
	assert.Empty(t, Aggregate([]domain.SalesRecord{}, ""))
}
