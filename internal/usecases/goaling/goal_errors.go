package goaling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de metas
var (
	// ErrInvalidGoal indica dados de meta inválidos: representante em branco,
	// valor de meta ausente, não numérico ou negativo
	ErrInvalidGoal = errors.New("meta inválida")

	// ErrInvalidPeriod indica que o período informado não está no formato yyyy-mm
	ErrInvalidPeriod = errors.New("período inválido, use o formato yyyy-mm")

	// ErrGoalPersistence indica falha ao gravar o registro durável de metas
	ErrGoalPersistence = errors.New("erro ao persistir o arquivo de metas")
)

// GoalError é um erro com contexto adicional para metas
type GoalError struct {
	Err            error  // Erro base
	Representative string // Representante envolvido (quando aplicável)
	Details        string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GoalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError cria um novo GoalError
func NewGoalError(err error, representative string, details string) *GoalError {
	return &GoalError{
		Err:            err,
		Representative: representative,
		Details:        details,
	}
}
