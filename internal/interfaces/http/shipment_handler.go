package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
)

// ShipmentHandler remessas recebidas de fornecedores.
type ShipmentHandler struct {
	uc *inventory.ShipmentUseCase
}

func NewShipmentHandler(uc *inventory.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar remessa
// @Description  Cria a remessa, o lote com saldo igual à quantidade e soma a quantidade ao modelo, numa única transação.
// @Tags         remessas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "dados da remessa"
// @Success      201   {object}  dto.CreateShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remessas [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	created, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateShipmentResponse{
		Message: "Remessa e estoque criados com sucesso",
		Data:    *created,
	})
}

// List godoc
// @Summary      Listar remessas
// @Description  Com inicio e fim (AAAA-MM-DD) filtra pela data de entrega.
// @Tags         remessas
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  false  "data inicial"
// @Param        fim     query  string  false  "data final"
// @Success      200  {array}   dto.ShipmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/remessas [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	from, to := c.Query("inicio"), c.Query("fim")
	var (
		list []dto.ShipmentResponse
		err  error
	)
	if from != "" || to != "" {
		list, err = h.uc.ListByPeriod(c.UserContext(), from, to)
	} else {
		list, err = h.uc.List(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter remessa
// @Tags         remessas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_remessa"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remessas/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	s, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// ListBySupplier godoc
// @Summary      Listar remessas de um fornecedor
// @Tags         remessas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_fornecedor"
// @Success      200  {array}   dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remessas/fornecedor/{id} [get]
func (h *ShipmentHandler) ListBySupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListBySupplier(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByModel godoc
// @Summary      Listar remessas de um modelo de EPI
// @Tags         remessas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_modelo_epi"
// @Success      200  {array}   dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remessas/modelo-epi/{id} [get]
func (h *ShipmentHandler) ListByModel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListByModel(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Atualizar remessa
// @Description  Quantidade e modelo não podem ser alterados.
// @Tags         remessas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "id_remessa"
// @Param        body  body  dto.UpdateShipmentRequest  true  "dados da remessa"
// @Success      200   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remessas/{id} [put]
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateShipmentRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	s, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Delete godoc
// @Summary      Excluir remessa
// @Description  Bloqueado (409) quando o lote já tem movimentações.
// @Tags         remessas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_remessa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/remessas/{id} [delete]
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Remessa excluída com sucesso"})
}
