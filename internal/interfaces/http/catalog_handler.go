package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/usecase"
)

// catalogService é o CRUD comum a cargos, categorias, marcas e fornecedores.
type catalogService[Req, Resp any] interface {
	Create(ctx context.Context, in Req) (*Resp, error)
	GetByID(ctx context.Context, id int64) (*Resp, error)
	Update(ctx context.Context, id int64, in Req) (*Resp, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Resp, error)
}

// CatalogHandler handlers de CRUD para um cadastro simples.
type CatalogHandler[Req, Resp any] struct {
	svc     catalogService[Req, Resp]
	deleted string
}

func newCatalogHandler[Req, Resp any](svc catalogService[Req, Resp], deleted string) *CatalogHandler[Req, Resp] {
	return &CatalogHandler[Req, Resp]{svc: svc, deleted: deleted}
}

func (h *CatalogHandler[Req, Resp]) Create(c *fiber.Ctx) error {
	var in Req
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler[Req, Resp]) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *CatalogHandler[Req, Resp]) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler[Req, Resp]) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in Req
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler[Req, Resp]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: h.deleted})
}

// mount registra as rotas; escrita passa por write (RequireRole).
func (h *CatalogHandler[Req, Resp]) mount(g fiber.Router, write fiber.Handler) {
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", write, h.Create)
	g.Put("/:id", write, h.Update)
	g.Delete("/:id", write, h.Delete)
}

// RoleHandler vínculo cargo ↔ modelos de EPI exigidos.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// ListRequiredModels godoc
// @Summary      Modelos de EPI exigidos para o cargo
// @Tags         cargos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "id_cargo"
// @Success      200  {array}   dto.PPEModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargos/{id}/epis [get]
func (h *RoleHandler) ListRequiredModels(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListRequiredModels(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// AddRequiredModel godoc
// @Summary      Exigir modelo de EPI para o cargo
// @Tags         cargos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "id_cargo"
// @Param        body  body  dto.RoleModelRequest  true  "id_modelo_epi"
// @Success      201   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cargos/{id}/epis [post]
func (h *RoleHandler) AddRequiredModel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RoleModelRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	if err := h.uc.AddRequiredModel(c.UserContext(), id, in.ModelID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "EPI vinculado ao cargo"})
}

// RemoveRequiredModel godoc
// @Summary      Remover exigência de modelo de EPI do cargo
// @Tags         cargos
// @Security     Bearer
// @Produce      json
// @Param        id        path  int  true  "id_cargo"
// @Param        modeloId  path  int  true  "id_modelo_epi"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargos/{id}/epis/{modeloId} [delete]
func (h *RoleHandler) RemoveRequiredModel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	modelID, err := paramID(c, "modeloId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.RemoveRequiredModel(c.UserContext(), id, modelID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Vínculo removido"})
}
