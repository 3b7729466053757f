package exportfile

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/vfg2006/representative-ranking-api/internal/domain"
	"github.com/vfg2006/representative-ranking-api/pkg/utils"
)

// Apelidos reconhecidos para os cabeçalhos das colunas, comparados após
// normalização (minúsculas, sem espaços nas bordas). Os exports variam entre
// sistemas da rede, então cada coluna aceita mais de um nome.
var (
	representativeAliases = []string{"representante", "vendedor", "rep"}
	revenueAliases        = []string{"valor", "total", "venda"}
	orderAliases          = []string{"pedidos", "qtd_pedidos"}
	dateAliases           = []string{"data", "periodo", "data_pedido"}
)

// ParseResult é o resultado da leitura de um arquivo de exportação
type ParseResult struct {
	Records     []domain.SalesRecord
	SkippedRows int // Linhas descartadas por valor de venda não numérico
}

// Parser converte um arquivo de exportação em registros de venda normalizados
type Parser interface {
	Parse(path string) (*ParseResult, error)
}

type tableParser struct{}

// NewParser cria um novo leitor de arquivos de exportação
func NewParser() Parser {
	return &tableParser{}
}

// Parse infere o formato pela extensão e extrai os registros de venda.
// Um arquivo presente mas ilegível (por exemplo, capturado no meio de uma
// gravação) resulta em ErrUnreadableFile, nunca em descarte silencioso.
func (p *tableParser) Parse(path string) (*ParseResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return p.parseCSV(path)
	case ".xlsx", ".xls":
		return p.parseSpreadsheet(path)
	default:
		return nil, NewFileError(ErrUnreadableFile, path, "extensão não suportada")
	}
}

func (p *tableParser) parseCSV(path string) (*ParseResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileError(ErrUnreadableFile, path, "não foi possível abrir o arquivo")
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, NewFileError(ErrUnreadableFile, path, "codificação de caracteres não reconhecida")
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, NewFileError(ErrUnreadableFile, path, "conteúdo CSV malformado")
	}

	return buildRecords(rows, path)
}

func (p *tableParser) parseSpreadsheet(path string) (*ParseResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		// Planilhas .xls legadas e arquivos capturados no meio de uma gravação
		// caem aqui; o chamador decide como apresentar o problema
		return nil, NewFileError(ErrUnreadableFile, path, "não foi possível abrir a planilha")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, NewFileError(ErrUnreadableFile, path, "não foi possível ler a primeira aba")
	}

	return buildRecords(rows, path)
}

// decodeText converte o conteúdo bruto para UTF-8. Os exports da rede chegam
// em UTF-8 (com ou sem BOM), UTF-16 ou Windows-1252.
func decodeText(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) || bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) {
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// sniffDelimiter escolhe entre ponto e vírgula e vírgula com base na primeira
// linha. Exports brasileiros costumam usar ponto e vírgula.
func sniffDelimiter(text string) rune {
	firstLine := text
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		firstLine = text[:idx]
	}

	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}
	return ','
}

// columnMap guarda as posições das colunas reconhecidas no cabeçalho
type columnMap struct {
	representative int
	revenue        int
	orders         int
	date           int
}

func buildRecords(rows [][]string, path string) (*ParseResult, error) {
	headerIdx, columns := findHeader(rows)
	if columns == nil {
		return nil, NewFileError(ErrUnreadableFile, path, "colunas obrigatórias de representante e valor não encontradas")
	}

	result := &ParseResult{Records: make([]domain.SalesRecord, 0, len(rows))}

	for _, row := range rows[headerIdx+1:] {
		representative := cellAt(row, columns.representative)
		if strings.TrimSpace(representative) == "" {
			// Linhas de totalizadores e células mescladas chegam sem representante
			continue
		}

		revenue, err := utils.ParseBrazilianDecimal(cellAt(row, columns.revenue))
		if err != nil || revenue.IsNegative() {
			result.SkippedRows++
			continue
		}

		record := domain.SalesRecord{
			Representative: strings.TrimSpace(representative),
			Revenue:        revenue,
		}

		if columns.orders >= 0 {
			record.Orders = utils.ParseOrderCount(cellAt(row, columns.orders))
		}

		if columns.date >= 0 {
			if period, ok := utils.PeriodFromDate(strings.TrimSpace(cellAt(row, columns.date))); ok {
				record.Period = period
			}
		}

		result.Records = append(result.Records, record)
	}

	return result, nil
}

// findHeader localiza a primeira linha não vazia e mapeia as posições das
// colunas reconhecidas. Retorna nil quando as colunas obrigatórias
// (representante e valor) não são encontradas.
func findHeader(rows [][]string) (int, *columnMap) {
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}

		columns := &columnMap{representative: -1, revenue: -1, orders: -1, date: -1}
		for j, header := range row {
			normalized := strings.ToLower(strings.TrimSpace(header))
			switch {
			case columns.representative < 0 && matchesAlias(normalized, representativeAliases):
				columns.representative = j
			case columns.revenue < 0 && matchesAlias(normalized, revenueAliases):
				columns.revenue = j
			case columns.orders < 0 && matchesAlias(normalized, orderAliases):
				columns.orders = j
			case columns.date < 0 && matchesAlias(normalized, dateAliases):
				columns.date = j
			}
		}

		if columns.representative < 0 || columns.revenue < 0 {
			return i, nil
		}
		return i, columns
	}

	return 0, nil
}

func matchesAlias(normalized string, aliases []string) bool {
	for _, alias := range aliases {
		if normalized == alias {
			return true
		}
	}
	return false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
