package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/auth"
	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/application/report"
	"github.com/jhoicas/controle-epi-api/internal/application/usecase"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	RecordMove    *inventory.RecordMovementUseCase
	MovementQuery *inventory.MovementQueryUseCase
	ShipmentUC    *inventory.ShipmentUseCase
	LotStockUC    *inventory.LotStockUseCase
	Replenishment *inventory.ReplenishmentUseCase
	StockExport   *report.StockExportUseCase
	DeliverySheet *report.DeliverySheetUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	RoleUC        *usecase.RoleUseCase
	CategoryUC    *usecase.CategoryUseCase
	BrandUC       *usecase.BrandUseCase
	SupplierUC    *usecase.SupplierUseCase
	PPEModelUC    *usecase.PPEModelUseCase
	CertificateUC *usecase.CertificateUseCase
	Uploader      Uploader
	JWTSecret     string
	// StockSocket atende /ws/estoque; nil desliga a rota.
	StockSocket func(*websocket.Conn)
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)
	write := RequireRole(entity.RoleAdmin, entity.RoleAlmoxarife)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authRequired, adminOnly, authHandler.Register)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Rotas protegidas (Bearer Token); leitura para qualquer perfil autenticado
	protected := api.Group("/", authRequired)

	movements := protected.Group("/movimentacoes")
	movementHandler := NewMovementHandler(deps.RecordMove, deps.MovementQuery)
	movements.Get("/", movementHandler.List)
	movements.Get("/tipo/:tipo", movementHandler.ListByType)
	movements.Get("/funcionario/:id", movementHandler.ListByEmployee)
	movements.Get("/epi/:id", movementHandler.ListByModel)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", write, movementHandler.Create)

	shipments := protected.Group("/remessas")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/fornecedor/:id", shipmentHandler.ListBySupplier)
	shipments.Get("/modelo-epi/:id", shipmentHandler.ListByModel)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Post("/", write, shipmentHandler.Create)
	shipments.Put("/:id", write, shipmentHandler.Update)
	shipments.Delete("/:id", write, shipmentHandler.Delete)

	// Rotas estáticas antes de /:id
	stock := protected.Group("/estoques")
	stockHandler := NewStockHandler(deps.LotStockUC, deps.Replenishment, deps.StockExport)
	stock.Get("/", stockHandler.List)
	stock.Get("/baixo-estoque", stockHandler.ListLowStock)
	stock.Get("/proximos-vencimento", stockHandler.ListExpiring)
	stock.Get("/reposicao", stockHandler.Replenishment)
	stock.Get("/exportar", stockHandler.Export)
	stock.Get("/remessa/:id", stockHandler.ListByShipment)
	stock.Get("/modelo-epi/:id", stockHandler.ListByModel)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", write, stockHandler.Adjust)

	employees := protected.Group("/funcionarios")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.DeliverySheet, deps.Uploader)
	employees.Get("/", employeeHandler.List)
	employees.Get("/cargo/:id", employeeHandler.ListByRole)
	employees.Get("/:id/ficha-epi", employeeHandler.DeliverySheet)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", write, employeeHandler.Create)
	employees.Put("/:id/foto", write, employeeHandler.UploadPhoto)
	employees.Put("/:id", write, employeeHandler.Update)
	employees.Delete("/:id", write, employeeHandler.Delete)

	roles := protected.Group("/cargos")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/:id/epis", roleHandler.ListRequiredModels)
	roles.Post("/:id/epis", write, roleHandler.AddRequiredModel)
	roles.Delete("/:id/epis/:modeloId", write, roleHandler.RemoveRequiredModel)
	newCatalogHandler[dto.RoleRequest, dto.RoleResponse](deps.RoleUC, "Cargo excluído com sucesso").mount(roles, write)

	newCatalogHandler[dto.CategoryRequest, dto.CategoryResponse](deps.CategoryUC, "Categoria excluída com sucesso").
		mount(protected.Group("/categorias"), write)
	newCatalogHandler[dto.BrandRequest, dto.BrandResponse](deps.BrandUC, "Marca excluída com sucesso").
		mount(protected.Group("/marcas"), write)
	newCatalogHandler[dto.SupplierRequest, dto.SupplierResponse](deps.SupplierUC, "Fornecedor excluído com sucesso").
		mount(protected.Group("/fornecedores"), write)

	models := protected.Group("/modelos-epi")
	modelHandler := NewPPEModelHandler(deps.PPEModelUC, deps.Uploader)
	models.Get("/", modelHandler.List)
	models.Get("/categoria/:id", modelHandler.ListByCategory)
	models.Get("/cargo/:id", modelHandler.ListByRole)
	models.Get("/:id", modelHandler.GetByID)
	models.Post("/", write, modelHandler.Create)
	models.Put("/:id/foto", write, modelHandler.UploadPhoto)
	models.Put("/:id", write, modelHandler.Update)
	models.Delete("/:id", write, modelHandler.Delete)

	certificates := protected.Group("/ca")
	certificateHandler := NewCertificateHandler(deps.CertificateUC)
	certificates.Get("/", certificateHandler.List)
	certificates.Get("/proximos-vencimento", certificateHandler.ListExpiring)
	certificates.Get("/modelo-epi/:id", certificateHandler.ListByModel)
	certificates.Get("/:id", certificateHandler.GetByID)
	certificates.Post("/", write, certificateHandler.Create)
	certificates.Put("/:id", write, certificateHandler.Update)
	certificates.Delete("/:id", write, certificateHandler.Delete)

	if deps.StockSocket != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws/estoque", websocket.New(deps.StockSocket))
	}
}
