package exportfile

import (
	"errors"
	"fmt"
)

// Erros específicos para o acesso aos arquivos de exportação
var (
	// ErrNoEligibleFile indica que o diretório não existe ou não contém nenhum
	// arquivo com extensão suportada
	ErrNoEligibleFile = errors.New("nenhum arquivo de exportação elegível encontrado")

	// ErrUnreadableFile indica que o arquivo existe mas não pôde ser aberto ou
	// não possui as colunas obrigatórias de representante e valor
	ErrUnreadableFile = errors.New("arquivo de exportação ilegível")
)

// FileError é um erro com contexto adicional sobre o arquivo envolvido
type FileError struct {
	Err     error  // Erro base
	Path    string // Caminho do arquivo ou diretório envolvido
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *FileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Err.Error(), e.Details, e.Path)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Path)
}

// Unwrap retorna o erro subjacente
func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError cria um novo FileError
func NewFileError(err error, path string, details string) *FileError {
	return &FileError{
		Err:     err,
		Path:    path,
		Details: details,
	}
}
