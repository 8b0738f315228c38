package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifica erros de domínio para a camada HTTP escolher o status.
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	KindDependentRecords  ErrorKind = "DEPENDENT_RECORDS"
	KindConflict          ErrorKind = "CONFLICT"
	KindUnauthorized      ErrorKind = "UNAUTHORIZED"
	KindForbidden         ErrorKind = "FORBIDDEN"
	KindStorage           ErrorKind = "STORAGE"
)

// Error é um erro de domínio com tipo. Os sentinelas abaixo são *Error e
// comparados por identidade com errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Erros de domínio (sem dependências externas).
var (
	ErrInvalidInput             = newError(KindValidation, "entrada inválida")
	ErrMissingField             = newError(KindValidation, "campo obrigatório ausente")
	ErrInvalidQuantity          = newError(KindValidation, "quantidade deve ser maior que zero")
	ErrInvalidMovementType      = newError(KindValidation, "tipo de movimentação inválido")
	ErrLotModelMismatch         = newError(KindValidation, "o lote informado não pertence ao modelo de EPI")
	ErrCertificateModelMismatch = newError(KindValidation, "o CA informado não pertence ao modelo de EPI")

	ErrNotFound            = newError(KindNotFound, "recurso não encontrado")
	ErrLotNotFound         = newError(KindNotFound, "Lote de estoque não encontrado")
	ErrShipmentNotFound    = newError(KindNotFound, "Remessa não encontrada")
	ErrPPEModelNotFound    = newError(KindNotFound, "Modelo de EPI não encontrado")
	ErrEmployeeNotFound    = newError(KindNotFound, "Funcionário não encontrado")
	ErrRoleNotFound        = newError(KindNotFound, "Cargo não encontrado")
	ErrCategoryNotFound    = newError(KindNotFound, "Categoria não encontrada")
	ErrBrandNotFound       = newError(KindNotFound, "Marca não encontrada")
	ErrSupplierNotFound    = newError(KindNotFound, "Fornecedor não encontrado")
	ErrCertificateNotFound = newError(KindNotFound, "CA não encontrado")
	ErrMovementNotFound    = newError(KindNotFound, "Movimentação não encontrada")
	ErrUserNotFound        = newError(KindNotFound, "usuário não encontrado")

	ErrInsufficientStock = newError(KindInsufficientStock, "Quantidade insuficiente em estoque")
	ErrDependentRecords  = newError(KindDependentRecords, "existem registros vinculados a este recurso")

	ErrDuplicate          = newError(KindConflict, "recurso duplicado")
	ErrEmailAlreadyExists = newError(KindConflict, "o email já está cadastrado")

	ErrUnauthorized = newError(KindUnauthorized, "não autorizado")
	ErrForbidden    = newError(KindForbidden, "acesso negado")

	ErrStorage = newError(KindStorage, "erro de armazenamento")
)

// KindOf classifica err. Qualquer erro que não seja de domínio é tratado como falha de armazenamento.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// MissingField indica qual campo obrigatório faltou; continua sendo ErrMissingField para errors.Is.
func MissingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

// Invalid anexa um detalhe a ErrInvalidInput.
func Invalid(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, detail)
}
