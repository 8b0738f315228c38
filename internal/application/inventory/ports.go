package inventory

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// TxRepos repositórios atados à mesma transação.
type TxRepos struct {
	Movements    repository.MovementRepository
	Lots         repository.LotStockRepository
	Models       repository.PPEModelRepository
	Shipments    repository.ShipmentRepository
	Employees    repository.EmployeeRepository
	Suppliers    repository.SupplierRepository
	Certificates repository.CertificateRepository
}

// TxRunner executa fn dentro de uma transação de banco, passando repositórios atados a ela.
// Commit se fn retornar nil; rollback em qualquer erro.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// TraceabilityHook é chamado, dentro da transação, para movimentações de modelos rastreáveis.
type TraceabilityHook interface {
	OnTraceableMovement(ctx context.Context, repos TxRepos, mov *entity.Movement) error
}

// NoopTraceability não registra nada; o rastreio por unidade ainda não existe.
type NoopTraceability struct{}

func (NoopTraceability) OnTraceableMovement(context.Context, TxRepos, *entity.Movement) error {
	return nil
}

// Tipos de evento publicados após o commit.
const (
	EventMovement        = "movement"
	EventShipmentCreated = "shipment_created"
	EventShipmentDeleted = "shipment_deleted"
	EventLotAdjusted     = "lot_adjusted"
)

// StockEvent descreve uma alteração de saldo já confirmada.
type StockEvent struct {
	Kind          string              `json:"evento"`
	MovementType  entity.MovementType `json:"tipo_movimentacao,omitempty"`
	ModelID       int64               `json:"id_modelo_epi"`
	LotStockID    int64               `json:"id_estoque_lote,omitempty"`
	ShipmentID    int64               `json:"id_remessa,omitempty"`
	Quantity      int                 `json:"quantidade"`
	Delta         int                 `json:"variacao"`
	LotQuantity   int                 `json:"quantidade_lote"`
	ModelQuantity int                 `json:"quantidade_modelo"`
}

// StockNotifier recebe eventos de estoque depois do commit. Não deve bloquear.
type StockNotifier interface {
	StockChanged(evt StockEvent)
}

// Notifiers distribui o evento para vários destinos.
type Notifiers []StockNotifier

func (n Notifiers) StockChanged(evt StockEvent) {
	for _, s := range n {
		if s != nil {
			s.StockChanged(evt)
		}
	}
}
