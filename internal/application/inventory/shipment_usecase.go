package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// ShipmentUseCase recebimento, correção, exclusão e consultas de remessas.
type ShipmentUseCase struct {
	txRunner     TxRunner
	shipmentRepo repository.ShipmentRepository
	supplierRepo repository.SupplierRepository
	modelRepo    repository.PPEModelRepository
	certRepo     repository.CertificateRepository
	notifier     StockNotifier
}

// NewShipmentUseCase constrói o caso de uso. notifier pode ser nil.
func NewShipmentUseCase(
	txRunner TxRunner,
	shipmentRepo repository.ShipmentRepository,
	supplierRepo repository.SupplierRepository,
	modelRepo repository.PPEModelRepository,
	certRepo repository.CertificateRepository,
	notifier StockNotifier,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		txRunner:     txRunner,
		shipmentRepo: shipmentRepo,
		supplierRepo: supplierRepo,
		modelRepo:    modelRepo,
		certRepo:     certRepo,
		notifier:     notifier,
	}
}

// Create grava a remessa, cria o lote com a quantidade recebida e soma ao agregado do modelo,
// tudo na mesma transação.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.CreateShipmentRequest) (*dto.ShipmentCreated, error) {
	if err := requireShipmentFields(in.LotCode, in.InvoiceNumber, in.SupplierID, in.CertificateID); err != nil {
		return nil, err
	}
	if in.ModelID <= 0 {
		return nil, domain.MissingField("id_modelo_epi")
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	delivery, expiry, err := parseShipmentDates(in.DeliveryDate, in.LotExpiry)
	if err != nil {
		return nil, err
	}

	shipment := &entity.Shipment{
		LotCode:       in.LotCode,
		Quantity:      in.Quantity,
		DeliveryDate:  delivery,
		LotExpiry:     expiry,
		InvoiceNumber: in.InvoiceNumber,
		Notes:         in.Notes,
		UnitCost:      in.UnitCost,
		SupplierID:    in.SupplierID,
		ModelID:       in.ModelID,
		CertificateID: in.CertificateID,
	}
	lot := &entity.LotStock{Quantity: in.Quantity, ModelID: in.ModelID}
	var modelQty int

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		if err := checkShipmentRefs(ctx, repos, shipment); err != nil {
			return err
		}
		if err := repos.Shipments.Create(ctx, shipment); err != nil {
			return err
		}
		lot.ShipmentID = shipment.ID
		if err := repos.Lots.Create(ctx, lot); err != nil {
			return err
		}
		var err error
		modelQty, err = repos.Models.AdjustQuantity(ctx, shipment.ModelID, shipment.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.notify(StockEvent{
		Kind:          EventShipmentCreated,
		ModelID:       shipment.ModelID,
		LotStockID:    lot.ID,
		ShipmentID:    shipment.ID,
		Quantity:      shipment.Quantity,
		Delta:         shipment.Quantity,
		LotQuantity:   lot.Quantity,
		ModelQuantity: modelQty,
	})
	return &dto.ShipmentCreated{ShipmentID: shipment.ID, LotStockID: lot.ID}, nil
}

// Update corrige os dados descritivos da remessa. Quantidade e modelo permanecem os do recebimento.
func (uc *ShipmentUseCase) Update(ctx context.Context, id int64, in dto.UpdateShipmentRequest) (*dto.ShipmentResponse, error) {
	if err := requireShipmentFields(in.LotCode, in.InvoiceNumber, in.SupplierID, in.CertificateID); err != nil {
		return nil, err
	}
	delivery, expiry, err := parseShipmentDates(in.DeliveryDate, in.LotExpiry)
	if err != nil {
		return nil, err
	}

	var out *entity.Shipment
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		s, err := repos.Shipments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrShipmentNotFound
		}
		s.LotCode = in.LotCode
		s.DeliveryDate = delivery
		s.LotExpiry = expiry
		s.InvoiceNumber = in.InvoiceNumber
		s.Notes = in.Notes
		s.UnitCost = in.UnitCost
		s.SupplierID = in.SupplierID
		s.CertificateID = in.CertificateID
		if err := checkShipmentRefs(ctx, repos, s); err != nil {
			return err
		}
		out = s
		return repos.Shipments.Update(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(out), nil
}

// Delete remove a remessa e seu lote. Recusa com ErrDependentRecords se houver movimentação
// no lote; caso contrário retira o saldo restante do agregado do modelo.
func (uc *ShipmentUseCase) Delete(ctx context.Context, id int64) error {
	var evt StockEvent
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		s, err := repos.Shipments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrShipmentNotFound
		}
		lots, err := repos.Lots.ListByShipment(ctx, id)
		if err != nil {
			return err
		}
		remaining := 0
		for _, l := range lots {
			locked, err := repos.Lots.GetForUpdate(ctx, l.ID)
			if err != nil {
				return err
			}
			if locked != nil {
				remaining += locked.Quantity
			}
		}
		n, err := repos.Movements.CountByShipment(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrDependentRecords
		}

		evt = StockEvent{Kind: EventShipmentDeleted, ModelID: s.ModelID, ShipmentID: s.ID, Quantity: remaining, Delta: -remaining}
		if remaining > 0 {
			if evt.ModelQuantity, err = repos.Models.AdjustQuantity(ctx, s.ModelID, -remaining); err != nil {
				return err
			}
		} else {
			m, err := repos.Models.GetByID(ctx, s.ModelID)
			if err != nil {
				return err
			}
			if m != nil {
				evt.ModelQuantity = m.Quantity
			}
		}
		if err := repos.Lots.DeleteByShipment(ctx, id); err != nil {
			return err
		}
		return repos.Shipments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.notify(evt)
	return nil
}

// GetByID obtém uma remessa.
func (uc *ShipmentUseCase) GetByID(ctx context.Context, id int64) (*dto.ShipmentResponse, error) {
	s, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrShipmentNotFound
	}
	return toShipmentResponse(s), nil
}

// List lista todas as remessas.
func (uc *ShipmentUseCase) List(ctx context.Context) ([]dto.ShipmentResponse, error) {
	list, err := uc.shipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

// ListBySupplier lista as remessas de um fornecedor existente.
func (uc *ShipmentUseCase) ListBySupplier(ctx context.Context, supplierID int64) ([]dto.ShipmentResponse, error) {
	sup, err := uc.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, domain.ErrSupplierNotFound
	}
	list, err := uc.shipmentRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

// ListByModel lista as remessas de um modelo de EPI existente.
func (uc *ShipmentUseCase) ListByModel(ctx context.Context, modelID int64) ([]dto.ShipmentResponse, error) {
	m, err := uc.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrPPEModelNotFound
	}
	list, err := uc.shipmentRepo.ListByModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

// ListByPeriod lista as remessas entregues entre from e to (inclusive, YYYY-MM-DD).
func (uc *ShipmentUseCase) ListByPeriod(ctx context.Context, from, to string) ([]dto.ShipmentResponse, error) {
	if from == "" {
		return nil, domain.MissingField("inicio")
	}
	if to == "" {
		return nil, domain.MissingField("fim")
	}
	start, err := time.Parse(dto.DateLayout, from)
	if err != nil {
		return nil, domain.Invalid("inicio deve estar no formato AAAA-MM-DD")
	}
	end, err := time.Parse(dto.DateLayout, to)
	if err != nil {
		return nil, domain.Invalid("fim deve estar no formato AAAA-MM-DD")
	}
	if end.Before(start) {
		return nil, domain.Invalid("fim anterior ao inicio")
	}
	list, err := uc.shipmentRepo.ListByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

func (uc *ShipmentUseCase) notify(evt StockEvent) {
	if uc.notifier != nil {
		uc.notifier.StockChanged(evt)
	}
}

func requireShipmentFields(lotCode, invoice string, supplierID, certID int64) error {
	switch {
	case lotCode == "":
		return domain.MissingField("codigo_lote")
	case invoice == "":
		return domain.MissingField("nota_fiscal")
	case supplierID <= 0:
		return domain.MissingField("id_fornecedor")
	case certID <= 0:
		return domain.MissingField("id_ca")
	}
	return nil
}

func parseShipmentDates(delivery, expiry string) (time.Time, time.Time, error) {
	if delivery == "" {
		return time.Time{}, time.Time{}, domain.MissingField("data_entrega")
	}
	if expiry == "" {
		return time.Time{}, time.Time{}, domain.MissingField("validade_lote")
	}
	d, err := time.Parse(dto.DateLayout, delivery)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("data_entrega deve estar no formato AAAA-MM-DD")
	}
	e, err := time.Parse(dto.DateLayout, expiry)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("validade_lote deve estar no formato AAAA-MM-DD")
	}
	return d, e, nil
}

// checkShipmentRefs confere fornecedor, modelo e CA, e que o CA é do modelo da remessa.
func checkShipmentRefs(ctx context.Context, repos TxRepos, s *entity.Shipment) error {
	sup, err := repos.Suppliers.GetByID(ctx, s.SupplierID)
	if err != nil {
		return err
	}
	if sup == nil {
		return domain.ErrSupplierNotFound
	}
	model, err := repos.Models.GetByID(ctx, s.ModelID)
	if err != nil {
		return err
	}
	if model == nil {
		return domain.ErrPPEModelNotFound
	}
	cert, err := repos.Certificates.GetByID(ctx, s.CertificateID)
	if err != nil {
		return err
	}
	if cert == nil {
		return domain.ErrCertificateNotFound
	}
	if cert.ModelID != s.ModelID {
		return domain.ErrCertificateModelMismatch
	}
	return nil
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	if s == nil {
		return nil
	}
	return &dto.ShipmentResponse{
		ID:            s.ID,
		LotCode:       s.LotCode,
		Quantity:      s.Quantity,
		DeliveryDate:  dto.FormatDate(s.DeliveryDate),
		LotExpiry:     dto.FormatDate(s.LotExpiry),
		InvoiceNumber: s.InvoiceNumber,
		Notes:         s.Notes,
		UnitCost:      s.UnitCost,
		SupplierID:    s.SupplierID,
		ModelID:       s.ModelID,
		CertificateID: s.CertificateID,
	}
}

func toShipmentResponses(list []*entity.Shipment) []dto.ShipmentResponse {
	out := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toShipmentResponse(s))
	}
	return out
}
