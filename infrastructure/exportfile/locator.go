// Package exportfile contém o acesso aos arquivos de exportação de vendas:
// localização do arquivo mais recente no diretório monitorado e a leitura
// dos formatos tabulares suportados (.xlsx, .xls e .csv).
package exportfile

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Extensões de arquivo aceitas, comparadas sem distinção de maiúsculas
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// ExportFile representa um arquivo de exportação encontrado no diretório
type ExportFile struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Locator localiza o arquivo de exportação mais recente em um diretório
type Locator interface {
	LatestFile(dir string) (*ExportFile, error)
}

type fileLocator struct{}

// NewLocator cria um novo localizador de arquivos de exportação
func NewLocator() Locator {
	return &fileLocator{}
}

// LatestFile varre o diretório a cada chamada e retorna o arquivo suportado
// com a modificação mais recente. Empates de horário são resolvidos pelo menor
// nome de arquivo em ordem lexicográfica, para manter o resultado determinístico.
func (l *fileLocator) LatestFile(dir string) (*ExportFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, NewFileError(ErrNoEligibleFile, dir, "diretório inacessível")
	}

	var latest *ExportFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supportedExtensions[ext] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		candidate := &ExportFile{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		if latest == nil || newerThan(candidate, latest) {
			latest = candidate
		}
	}

	if latest == nil {
		return nil, NewFileError(ErrNoEligibleFile, dir, "nenhum arquivo com extensão suportada")
	}

	return latest, nil
}

func newerThan(candidate, current *ExportFile) bool {
	if candidate.ModTime.Equal(current.ModTime) {
		return candidate.Name < current.Name
	}
	return candidate.ModTime.After(current.ModTime)
}
