package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/pkg/validator"
)

// statusFor é o único ponto que traduz ErrorKind em status HTTP.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindInsufficientStock:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindDependentRecords, domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

// respondError escreve o erro no corpo padrão. Falhas de armazenamento são logadas e a
// mensagem ao cliente é genérica.
func respondError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	if kind == domain.KindStorage {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("route", c.Route().Path).
			Msg("falha ao atender requisição")
		return c.Status(status).JSON(dto.ErrorResponse{Code: string(domain.KindStorage), Message: "erro interno, tente novamente"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: string(kind), Message: err.Error()})
}

// bind lê o corpo JSON em dst e valida as tags. Em caso de falha a resposta 400 já foi
// escrita e ok é false.
func bind(c *fiber.Ctx, dst interface{}) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if verrs := validator.ValidateStruct(dst); len(verrs) > 0 {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    string(domain.KindValidation),
			Message: "Campos obrigatórios ausentes ou inválidos",
			Details: verrs,
		})
	}
	return true, nil
}

var errBadID = domain.Invalid("id inválido")

// paramID lê um parâmetro de rota inteiro e positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// queryInt lê um inteiro opcional da query string; def quando ausente.
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.Invalid(name + " deve ser um inteiro não negativo")
	}
	return n, nil
}
