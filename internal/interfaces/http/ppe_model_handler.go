package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/usecase"
)

// PPEModelHandler modelos de EPI.
type PPEModelHandler struct {
	uc       *usecase.PPEModelUseCase
	uploader Uploader
}

func NewPPEModelHandler(uc *usecase.PPEModelUseCase, uploader Uploader) *PPEModelHandler {
	return &PPEModelHandler{uc: uc, uploader: uploader}
}

// Create godoc
// @Summary      Cadastrar modelo de EPI
// @Description  O modelo nasce com quantidade 0; o saldo só muda por remessas, movimentações e ajustes.
// @Tags         modelos-epi
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PPEModelRequest  true  "dados do modelo"
// @Success      201   {object}  dto.PPEModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modelos-epi [post]
func (h *PPEModelHandler) Create(c *fiber.Ctx) error {
	var in dto.PPEModelRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	m, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// List godoc
// @Summary      Listar modelos de EPI
// @Tags         modelos-epi
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PPEModelResponse
// @Router       /api/modelos-epi [get]
func (h *PPEModelHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter modelo de EPI
// @Tags         modelos-epi
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_modelo_epi"
// @Success      200  {object}  dto.PPEModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/modelos-epi/{id} [get]
func (h *PPEModelHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	m, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// ListByCategory godoc
// @Summary      Modelos de uma categoria
// @Tags         modelos-epi
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_categoria"
// @Success      200  {array}   dto.PPEModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/modelos-epi/categoria/{id} [get]
func (h *PPEModelHandler) ListByCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListByCategory(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByRole godoc
// @Summary      Modelos exigidos para um cargo
// @Tags         modelos-epi
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_cargo"
// @Success      200  {array}   dto.PPEModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/modelos-epi/cargo/{id} [get]
func (h *PPEModelHandler) ListByRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListByRole(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Atualizar modelo de EPI
// @Tags         modelos-epi
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id_modelo_epi"
// @Param        body  body  dto.PPEModelRequest  true  "dados do modelo"
// @Success      200   {object}  dto.PPEModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modelos-epi/{id} [put]
func (h *PPEModelHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PPEModelRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	m, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// Delete godoc
// @Summary      Excluir modelo de EPI
// @Tags         modelos-epi
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_modelo_epi"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/modelos-epi/{id} [delete]
func (h *PPEModelHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Modelo de EPI excluído com sucesso"})
}

// UploadPhoto godoc
// @Summary      Enviar foto do modelo de EPI
// @Tags         modelos-epi
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "id_modelo_epi"
// @Param        foto  formData  file  true  "imagem jpg, png ou webp"
// @Success      200   {object}  dto.PPEModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modelos-epi/{id}/foto [put]
func (h *PPEModelHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := h.uc.GetByID(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	path, err := h.uploader.SavePhoto(c, "modelos-epi")
	if err != nil {
		return respondError(c, err)
	}
	m, err := h.uc.UpdatePhoto(c.UserContext(), id, path)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}
