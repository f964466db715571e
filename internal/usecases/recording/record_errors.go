package recording

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de registros de venda
var (
	// Erros de validação
	ErrProductRequired   = errors.New("product is required")
	ErrInvalidDate       = errors.New("invalid date")
	ErrNegativeSales     = errors.New("sales must not be negative")
	ErrNegativeInventory = errors.New("inventory must not be negative")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownRegion     = errors.New("unknown region")

	// Erros de identificação
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateID    = errors.New("duplicate record id")
	ErrInvalidID      = errors.New("invalid record id")

	ErrGenerateRevision = errors.New("error generating revision")
)

// RecordError é um erro com contexto adicional para registros
type RecordError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	RecordID int    // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError cria um novo RecordError
func NewRecordError(err error, code string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRecordErrorWithID cria um novo RecordError com o ID do registro
func NewRecordErrorWithID(err error, code string, recordID int, details string) *RecordError {
	return &RecordError{
		Err:      err,
		Code:     code,
		RecordID: recordID,
		Details:  details,
	}
}
