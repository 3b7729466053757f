package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/representative-ranking-api/internal/domain"
)

func newTestRepository(t *testing.T) (GoalRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "metas.json")
	repo, err := NewGoalRepository(path)
	require.NoError(t, err)

	return repo, path
}

func TestGoalRepository_ArquivoInexistenteComecaVazio(t *testing.T) {
	repo, _ := newTestRepository(t)

	goals, err := repo.ListByPeriod("2024-05")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalRepository_GravaERecuperaAposReinicio(t *testing.T) {
	repo, path := newTestRepository(t)

	orders := int64(12)
	err := repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.RequireFromString("1500.50"),
		TargetOrders:   &orders,
	})
	require.NoError(t, err)

	// Novo repositório no mesmo caminho simula o reinício do processo
	restarted, err := NewGoalRepository(path)
	require.NoError(t, err)

	goal, err := restarted.Get("Ana", "2024-05")
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, "Ana", goal.Representative)
	assert.Equal(t, "2024-05", goal.Period)
	assert.True(t, goal.TargetRevenue.Equal(decimal.RequireFromString("1500.50")))
	require.NotNil(t, goal.TargetOrders)
	assert.Equal(t, int64(12), *goal.TargetOrders)
}

func TestGoalRepository_ChaveDoArquivoPreservaGrafiaOriginal(t *testing.T) {
	repo, path := newTestRepository(t)

	err := repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Ana|2024-05"`)
}

func TestGoalRepository_UltimaEscritaVence(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(1000),
	}))
	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "ANA ",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(2500),
	}))

	goal, err := repo.Get("ana", "2024-05")
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.True(t, goal.TargetRevenue.Equal(decimal.NewFromInt(2500)))

	goals, err := repo.ListByPeriod("2024-05")
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestGoalRepository_FalhaDePersistenciaNaoDeixaMetaVisivel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metas.json")
	repo, err := NewGoalRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(1000),
	}))

	// Sem o diretório a reescrita do arquivo de metas falha
	require.NoError(t, os.RemoveAll(dir))

	err = repo.Upsert(&domain.Goal{
		Representative: "Bruno",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(500),
	})
	require.Error(t, err)

	// A meta não confirmada não aparece nas leituras
	goal, err := repo.Get("Bruno", "2024-05")
	require.NoError(t, err)
	assert.Nil(t, goal)

	goals, err := repo.ListByPeriod("2024-05")
	require.NoError(t, err)
	assert.Len(t, goals, 1)
	assert.NotContains(t, goals, "bruno")

	// A última escrita confirmada continua visível
	goal, err = repo.Get("Ana", "2024-05")
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.True(t, goal.TargetRevenue.Equal(decimal.NewFromInt(1000)))
}

func TestGoalRepository_FalhaDePersistenciaMantemValorAnterior(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metas.json")
	repo, err := NewGoalRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(1000),
	}))

	require.NoError(t, os.RemoveAll(dir))

	err = repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(2500),
	})
	require.Error(t, err)

	goal, err := repo.Get("Ana", "2024-05")
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.True(t, goal.TargetRevenue.Equal(decimal.NewFromInt(1000)))
}

func TestGoalRepository_GetNormalizaRepresentante(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "João Silva",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(800),
	}))

	goal, err := repo.Get("  JOÃO SILVA  ", "2024-05")
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, "João Silva", goal.Representative)
}

func TestGoalRepository_GetAusenteRetornaNil(t *testing.T) {
	repo, _ := newTestRepository(t)

	goal, err := repo.Get("Ana", "2024-05")
	require.NoError(t, err)
	assert.Nil(t, goal)
}

func TestGoalRepository_ListByPeriodFiltraPorPeriodo(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "Ana",
		Period:         "2024-05",
		TargetRevenue:  decimal.NewFromInt(1000),
	}))
	require.NoError(t, repo.Upsert(&domain.Goal{
		Representative: "Bruno",
		Period:         "2024-06",
		TargetRevenue:  decimal.NewFromInt(2000),
	}))

	goals, err := repo.ListByPeriod("2024-05")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Contains(t, goals, "ana")
	assert.Equal(t, "Ana", goals["ana"].Representative)
}
