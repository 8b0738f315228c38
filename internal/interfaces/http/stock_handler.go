package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/application/report"
)

// StockHandler saldo por lote, alertas, reposição e exportação.
type StockHandler struct {
	lots          *inventory.LotStockUseCase
	replenishment *inventory.ReplenishmentUseCase
	export        *report.StockExportUseCase
}

func NewStockHandler(lots *inventory.LotStockUseCase, replenishment *inventory.ReplenishmentUseCase, export *report.StockExportUseCase) *StockHandler {
	return &StockHandler{lots: lots, replenishment: replenishment, export: export}
}

// List godoc
// @Summary      Listar saldo de todos os lotes
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LotStockResponse
// @Router       /api/estoques [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.lots.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter lote
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_estoque_lote"
// @Success      200  {object}  dto.LotStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoques/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	l, err := h.lots.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(l)
}

// ListByShipment godoc
// @Summary      Lotes de uma remessa
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_remessa"
// @Success      200  {array}   dto.LotStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoques/remessa/{id} [get]
func (h *StockHandler) ListByShipment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.lots.ListByShipment(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByModel godoc
// @Summary      Lotes de um modelo de EPI
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_modelo_epi"
// @Success      200  {array}   dto.LotStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoques/modelo-epi/{id} [get]
func (h *StockHandler) ListByModel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.lots.ListByModel(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListLowStock godoc
// @Summary      Lotes com estoque baixo
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "saldo máximo considerado baixo (padrão configurado)"
// @Success      200  {array}   dto.LotStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoques/baixo-estoque [get]
func (h *StockHandler) ListLowStock(c *fiber.Ctx) error {
	threshold, err := queryInt(c, "limite", 0)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.lots.ListLowStock(c.UserContext(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListExpiring godoc
// @Summary      Lotes próximos do vencimento
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "janela em dias (padrão configurado)"
// @Success      200  {array}   dto.LotStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoques/proximos-vencimento [get]
func (h *StockHandler) ListExpiring(c *fiber.Ctx) error {
	days, err := queryInt(c, "dias", 0)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.lots.ListExpiring(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Adjust godoc
// @Summary      Ajustar saldo do lote (inventário)
// @Description  Define o novo saldo; o agregado do modelo acompanha a diferença.
// @Tags         estoques
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "id_estoque_lote"
// @Param        body  body  dto.UpdateLotStockRequest  true  "quantidade_estoque"
// @Success      200   {object}  dto.LotStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estoques/{id} [put]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLotStockRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	l, err := h.lots.Adjust(c.UserContext(), id, *in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(l)
}

// Replenishment godoc
// @Summary      Lista de reposição
// @Description  Modelos exigidos por cargos cujo saldo não cobre um item por funcionário.
// @Tags         estoques
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestion
// @Router       /api/estoques/reposicao [get]
func (h *StockHandler) Replenishment(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Export godoc
// @Summary      Exportar saldo por lote (xlsx)
// @Tags         estoques
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estoques/exportar [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.export.Export(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}
