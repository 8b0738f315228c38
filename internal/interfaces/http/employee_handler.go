package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/report"
	"github.com/jhoicas/controle-epi-api/internal/application/usecase"
)

// EmployeeHandler cadastro de funcionários, foto e ficha de EPI.
type EmployeeHandler struct {
	uc       *usecase.EmployeeUseCase
	sheet    *report.DeliverySheetUseCase
	uploader Uploader
}

func NewEmployeeHandler(uc *usecase.EmployeeUseCase, sheet *report.DeliverySheetUseCase, uploader Uploader) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, sheet: sheet, uploader: uploader}
}

// Create godoc
// @Summary      Cadastrar funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "dados do funcionário"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	e, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// List godoc
// @Summary      Listar funcionários
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        matricula  query  string  false  "busca pela matrícula"
// @Success      200  {array}   dto.EmployeeResponse
// @Router       /api/funcionarios [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	if reg := c.Query("matricula"); reg != "" {
		e, err := h.uc.GetByRegistration(c.UserContext(), reg)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON([]dto.EmployeeResponse{*e})
	}
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_funcionario"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	e, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// ListByRole godoc
// @Summary      Funcionários de um cargo
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_cargo"
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/cargo/{id} [get]
func (h *EmployeeHandler) ListByRole(c *fiber.Ctx) error {
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
// @Summary      Atualizar funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id_funcionario"
// @Param        body  body  dto.EmployeeRequest  true  "dados do funcionário"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EmployeeRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	e, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// Delete godoc
// @Summary      Excluir funcionário
// @Description  Bloqueado (409) quando há movimentações do funcionário.
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_funcionario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Funcionário excluído com sucesso"})
}

// UploadPhoto godoc
// @Summary      Enviar foto do funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "id_funcionario"
// @Param        foto  formData  file  true  "imagem jpg, png ou webp"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id}/foto [put]
func (h *EmployeeHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := h.uc.GetByID(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	path, err := h.uploader.SavePhoto(c, "funcionarios")
	if err != nil {
		return respondError(c, err)
	}
	e, err := h.uc.UpdatePhoto(c.UserContext(), id, path)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// DeliverySheet godoc
// @Summary      Ficha de EPI do funcionário (PDF)
// @Tags         funcionarios
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "id_funcionario"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id}/ficha-epi [get]
func (h *EmployeeHandler) DeliverySheet(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	data, filename, err := h.sheet.Generate(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
