package ranking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/representative-ranking-api/infrastructure/exportfile"
	exportmocks "github.com/vfg2006/representative-ranking-api/infrastructure/exportfile/mocks"
	"github.com/vfg2006/representative-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/representative-ranking-api/internal/config"
	"github.com/vfg2006/representative-ranking-api/internal/domain"
)

const exportDir = `C:\META REPRESENTANTES\Exporta`

func newTestService(t *testing.T) (*Service, *exportmocks.MockLocator, *exportmocks.MockParser, *mocks.MockGoalRepository) {
	ctrl := gomock.NewController(t)

	mockLocator := exportmocks.NewMockLocator(ctrl)
	mockParser := exportmocks.NewMockParser(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)

	cfg := &config.Config{
		Export: config.Export{Dir: exportDir},
	}

	service := NewService(cfg, mockLocator, mockParser, mockGoalRepo).(*Service)
	return service, mockLocator, mockParser, mockGoalRepo
}

func TestService_ComputeRanking_CombinaTotaisComMetas(t *testing.T) {
	service, mockLocator, mockParser, mockGoalRepo := newTestService(t)

	modTime := time.Date(2024, 5, 20, 7, 30, 0, 0, time.Local)
	file := &exportfile.ExportFile{
		Path:    exportDir + `\vendas_maio.xlsx`,
		Name:    "vendas_maio.xlsx",
		ModTime: modTime,
	}

	mockLocator.EXPECT().
		LatestFile(exportDir).
		Return(file, nil)

	mockParser.EXPECT().
		Parse(file.Path).
		Return(&exportfile.ParseResult{
			Records: []domain.SalesRecord{
				record("Ana", 1000, 10),
				record("Bruno", 1500, 8),
				record("ana", 500, 2),
			},
			SkippedRows: 1,
		}, nil)

	// Meta cadastrada com grafia minúscula deve casar com "Ana" do arquivo
	mockGoalRepo.EXPECT().
		ListByPeriod("2024-05").
		Return(map[string]*domain.Goal{
			"ana": {
				Representative: "ana",
				Period:         "2024-05",
				TargetRevenue:  decimal.NewFromInt(2000),
			},
		}, nil)

	response, err := service.ComputeRanking("2024-05")

	require.NoError(t, err)
	require.Len(t, response.Ranking, 2)

	// Ana e Bruno empatam em 1500; o identificador menor fica em primeiro
	first := response.Ranking[0]
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, "Ana", first.Representative)
	assert.True(t, first.TotalRevenue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, int64(12), first.TotalOrders)
	assert.False(t, first.GoalPending)
	require.NotNil(t, first.CompletionPercent)
	assert.True(t, first.CompletionPercent.Equal(decimal.NewFromInt(75)))

	second := response.Ranking[1]
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, "Bruno", second.Representative)
	assert.True(t, second.GoalPending)
	assert.Nil(t, second.CompletionPercent)
	assert.Nil(t, second.TargetRevenue)

	// Resumo do período: 3000 de receita em 20 pedidos → ticket médio de 150
	assert.Equal(t, 2, response.Summary.Representatives)
	assert.True(t, response.Summary.TotalRevenue.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, int64(20), response.Summary.TotalOrders)
	require.NotNil(t, response.Summary.AverageTicket)
	assert.True(t, response.Summary.AverageTicket.Equal(decimal.NewFromInt(150)))

	// Metadados da origem
	assert.Equal(t, "vendas_maio.xlsx", response.SourceFile)
	assert.Equal(t, modTime, response.SourceModifiedAt)
	assert.Equal(t, 1, response.SkippedRows)
	assert.Equal(t, "2024-05", response.Period)
}

func TestService_ComputeRanking_MetaComValorZeroNaoTemPercentual(t *testing.T) {
	service, mockLocator, mockParser, mockGoalRepo := newTestService(t)

	file := &exportfile.ExportFile{Path: "vendas.csv", Name: "vendas.csv", ModTime: time.Now()}
	mockLocator.EXPECT().LatestFile(exportDir).Return(file, nil)
	mockParser.EXPECT().Parse(file.Path).Return(&exportfile.ParseResult{
		Records: []domain.SalesRecord{record("Ana", 1000, 10)},
	}, nil)
	mockGoalRepo.EXPECT().ListByPeriod("2024-05").Return(map[string]*domain.Goal{
		"ana": {Representative: "Ana", Period: "2024-05", TargetRevenue: decimal.Zero},
	}, nil)

	response, err := service.ComputeRanking("2024-05")

	require.NoError(t, err)
	require.Len(t, response.Ranking, 1)
	assert.False(t, response.Ranking[0].GoalPending)
	assert.Nil(t, response.Ranking[0].CompletionPercent)
}

func TestService_ComputeRanking_ResumoSemPedidosNaoTemTicketMedio(t *testing.T) {
	service, mockLocator, mockParser, mockGoalRepo := newTestService(t)

	// Arquivo sem a coluna opcional de pedidos: todos os registros chegam com zero
	file := &exportfile.ExportFile{Path: "vendas.csv", Name: "vendas.csv", ModTime: time.Now()}
	mockLocator.EXPECT().LatestFile(exportDir).Return(file, nil)
	mockParser.EXPECT().Parse(file.Path).Return(&exportfile.ParseResult{
		Records: []domain.SalesRecord{
			record("Ana", 1000, 0),
			record("Bruno", 500, 0),
		},
	}, nil)
	mockGoalRepo.EXPECT().ListByPeriod("2024-05").Return(map[string]*domain.Goal{}, nil)

	response, err := service.ComputeRanking("2024-05")

	require.NoError(t, err)
	assert.Equal(t, 2, response.Summary.Representatives)
	assert.True(t, response.Summary.TotalRevenue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, int64(0), response.Summary.TotalOrders)
	assert.Nil(t, response.Summary.AverageTicket)
}

func TestService_ComputeRanking_PeriodoInvalido(t *testing.T) {
	service, _, _, _ := newTestService(t)

	response, err := service.ComputeRanking("05/2024")

	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Nil(t, response)
}

func TestService_ComputeRanking_SemArquivoElegivel(t *testing.T) {
	service, mockLocator, _, _ := newTestService(t)

	mockLocator.EXPECT().
		LatestFile(exportDir).
		Return(nil, exportfile.NewFileError(exportfile.ErrNoEligibleFile, exportDir, ""))

	response, err := service.ComputeRanking("2024-05")

	assert.ErrorIs(t, err, exportfile.ErrNoEligibleFile)
	assert.Nil(t, response)
}

func TestService_ComputeRanking_ArquivoIlegivel(t *testing.T) {
	service, mockLocator, mockParser, _ := newTestService(t)

	file := &exportfile.ExportFile{Path: "vendas.xls", Name: "vendas.xls", ModTime: time.Now()}
	mockLocator.EXPECT().LatestFile(exportDir).Return(file, nil)
	mockParser.EXPECT().
		Parse(file.Path).
		Return(nil, exportfile.NewFileError(exportfile.ErrUnreadableFile, file.Path, "planilha corrompida"))

	response, err := service.ComputeRanking("2024-05")

	assert.ErrorIs(t, err, exportfile.ErrUnreadableFile)
	assert.Nil(t, response)
}

func TestService_ComputeRanking_ArquivoSemRegistrosUtilizaveis(t *testing.T) {
	service, mockLocator, mockParser, _ := newTestService(t)

	// Arquivo apenas com cabeçalho: o parser lê com sucesso mas não produz registros
	file := &exportfile.ExportFile{Path: "vendas.csv", Name: "vendas.csv", ModTime: time.Now()}
	mockLocator.EXPECT().LatestFile(exportDir).Return(file, nil)
	mockParser.EXPECT().Parse(file.Path).Return(&exportfile.ParseResult{}, nil)

	response, err := service.ComputeRanking("2024-05")

	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, response)
}

func TestService_ComputeRanking_TodosOsRegistrosForaDoPeriodo(t *testing.T) {
	service, mockLocator, mockParser, _ := newTestService(t)

	file := &exportfile.ExportFile{Path: "vendas.csv", Name: "vendas.csv", ModTime: time.Now()}
	mockLocator.EXPECT().LatestFile(exportDir).Return(file, nil)
	mockParser.EXPECT().Parse(file.Path).Return(&exportfile.ParseResult{
		Records: []domain.SalesRecord{
			{Representative: "Ana", Revenue: decimal.NewFromInt(100), Period: "2024-04"},
		},
	}, nil)

	response, err := service.ComputeRanking("2024-05")

	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, response)
}
