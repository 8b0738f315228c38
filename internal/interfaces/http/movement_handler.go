package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
)

// MovementHandler registra e consulta movimentações de estoque.
type MovementHandler struct {
	record *inventory.RecordMovementUseCase
	query  *inventory.MovementQueryUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(record *inventory.RecordMovementUseCase, query *inventory.MovementQueryUseCase) *MovementHandler {
	return &MovementHandler{record: record, query: query}
}

// Create godoc
// @Summary      Registrar movimentação de estoque
// @Description  Entrega baixa o saldo do lote e do modelo; Devolucao e Entrada somam; Troca não altera saldo.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "tipo_movimentacao, data, hora, quantidade, id_funcionario, id_modelo_epi, id_estoque_lote"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	id, err := h.record.RecordMovementFromRequest(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Movimentação registrada com sucesso", ID: id})
}

// List godoc
// @Summary      Listar movimentações (mais recentes primeiro)
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MovementResponse
// @Router       /api/movimentacoes [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.query.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter movimentação
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id da movimentação"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	m, err := h.query.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// ListByType godoc
// @Summary      Listar movimentações por tipo
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        tipo  path  string  true  "Entrega, Troca, Devolucao ou Entrada"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/tipo/{tipo} [get]
func (h *MovementHandler) ListByType(c *fiber.Ctx) error {
	list, err := h.query.ListByType(c.UserContext(), c.Params("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByEmployee godoc
// @Summary      Listar movimentações de um funcionário
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_funcionario"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/funcionario/{id} [get]
func (h *MovementHandler) ListByEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.query.ListByEmployee(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByModel godoc
// @Summary      Listar movimentações de um modelo de EPI
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_modelo_epi"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/epi/{id} [get]
func (h *MovementHandler) ListByModel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.query.ListByModel(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
