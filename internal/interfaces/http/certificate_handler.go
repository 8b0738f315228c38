package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/usecase"
)

// CertificateHandler certificados de aprovação (CA).
type CertificateHandler struct {
	uc *usecase.CertificateUseCase
}

func NewCertificateHandler(uc *usecase.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar CA
// @Tags         ca
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CertificateRequest  true  "numero_ca, validade_ca, id_modelo_epi"
// @Success      201   {object}  dto.CertificateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ca [post]
func (h *CertificateHandler) Create(c *fiber.Ctx) error {
	var in dto.CertificateRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	ca, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ca)
}

// List godoc
// @Summary      Listar CAs
// @Description  numero busca um CA específico; ativos=true lista só os vigentes.
// @Tags         ca
// @Security     Bearer
// @Produce      json
// @Param        numero  query  string  false  "número do CA"
// @Param        ativos  query  bool    false  "somente ativos e vigentes"
// @Success      200  {array}   dto.CertificateResponse
// @Router       /api/ca [get]
func (h *CertificateHandler) List(c *fiber.Ctx) error {
	if number := c.Query("numero"); number != "" {
		ca, err := h.uc.GetByNumber(c.UserContext(), number)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON([]dto.CertificateResponse{*ca})
	}
	var (
		list []dto.CertificateResponse
		err  error
	)
	if c.QueryBool("ativos") {
		list, err = h.uc.ListActive(c.UserContext())
	} else {
		list, err = h.uc.List(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListExpiring godoc
// @Summary      CAs próximos do vencimento
// @Tags         ca
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "janela em dias (padrão configurado)"
// @Success      200  {array}   dto.CertificateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ca/proximos-vencimento [get]
func (h *CertificateHandler) ListExpiring(c *fiber.Ctx) error {
	days, err := queryInt(c, "dias", 0)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListExpiring(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByModel godoc
// @Summary      CAs de um modelo de EPI
// @Tags         ca
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_modelo_epi"
// @Success      200  {array}   dto.CertificateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ca/modelo-epi/{id} [get]
func (h *CertificateHandler) ListByModel(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obter CA
// @Tags         ca
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_ca"
// @Success      200  {object}  dto.CertificateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ca/{id} [get]
func (h *CertificateHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	ca, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ca)
}

// Update godoc
// @Summary      Atualizar CA
// @Tags         ca
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "id_ca"
// @Param        body  body  dto.CertificateRequest  true  "dados do CA"
// @Success      200   {object}  dto.CertificateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ca/{id} [put]
func (h *CertificateHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CertificateRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	ca, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ca)
}

// Delete godoc
// @Summary      Excluir CA
// @Tags         ca
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_ca"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ca/{id} [delete]
func (h *CertificateHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "CA excluído com sucesso"})
}
