package ranking

import (
	"errors"
)

// Erros específicos para o contexto de ranking
var (
	// ErrNoData indica que o arquivo de exportação foi encontrado e lido, mas
	// não produziu nenhum registro de venda utilizável (por exemplo, arquivo
	// apenas com cabeçalho ou todas as linhas do período filtradas)
	ErrNoData = errors.New("nenhum registro de venda utilizável no arquivo de exportação")

	// ErrInvalidPeriod indica que o período informado não está no formato yyyy-mm
	ErrInvalidPeriod = errors.New("período inválido, use o formato yyyy-mm")
)
