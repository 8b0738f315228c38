package inventory_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

var errSimulado = errors.New("falha simulada")

// store guarda o estado em memória. O fakeTx tira uma cópia antes de cada transação e a
// restaura se fn falhar, como o rollback do Postgres.
type store struct {
	lots      map[int64]entity.LotStock
	models    map[int64]entity.PPEModel
	shipments map[int64]entity.Shipment
	movements []entity.Movement
	employees map[int64]entity.Employee
	suppliers map[int64]entity.Supplier
	certs     map[int64]entity.Certificate
	reqs      []repository.ModelRequirement
	nextID    int64

	// failOn faz a operação com este nome devolver errSimulado.
	failOn string
}

func newStore() *store {
	return &store{
		lots:      map[int64]entity.LotStock{},
		models:    map[int64]entity.PPEModel{},
		shipments: map[int64]entity.Shipment{},
		employees: map[int64]entity.Employee{},
		suppliers: map[int64]entity.Supplier{},
		certs:     map[int64]entity.Certificate{},
		nextID:    1000,
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *store) fail(op string) error {
	if s.failOn == op {
		return errSimulado
	}
	return nil
}

func (s *store) snapshot() store {
	cp := *s
	cp.lots = copyMap(s.lots)
	cp.models = copyMap(s.models)
	cp.shipments = copyMap(s.shipments)
	cp.employees = copyMap(s.employees)
	cp.suppliers = copyMap(s.suppliers)
	cp.certs = copyMap(s.certs)
	cp.movements = append([]entity.Movement(nil), s.movements...)
	return cp
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *store) repos() inventory.TxRepos {
	return inventory.TxRepos{
		Movements:    &fakeMovements{s},
		Lots:         &fakeLots{s},
		Models:       &fakeModels{s},
		Shipments:    &fakeShipments{s},
		Employees:    &fakeEmployees{s},
		Suppliers:    &fakeSuppliers{s},
		Certificates: &fakeCerts{s},
	}
}

// seed cria fornecedor, modelo, CA, funcionário e uma remessa com lote de quantidade qty.
type seed struct {
	supplierID, modelID, certID, employeeID, shipmentID, lotID int64
}

func (s *store) seed(qty int) seed {
	sd := seed{supplierID: 1, modelID: 10, certID: 20, employeeID: 30, shipmentID: 40, lotID: 50}
	s.suppliers[sd.supplierID] = entity.Supplier{ID: sd.supplierID, Name: "Fornecedor A", CNPJ: "12345678000199"}
	s.models[sd.modelID] = entity.PPEModel{ID: sd.modelID, Name: "Luva nitrílica", Quantity: qty, BrandID: 1, CategoryID: 1}
	s.certs[sd.certID] = entity.Certificate{ID: sd.certID, Number: "CA-12345", ModelID: sd.modelID, Active: true}
	s.employees[sd.employeeID] = entity.Employee{ID: sd.employeeID, FirstName: "Ana", LastName: "Souza", RoleID: 1}
	s.shipments[sd.shipmentID] = entity.Shipment{ID: sd.shipmentID, LotCode: "L-001", Quantity: qty, SupplierID: sd.supplierID, ModelID: sd.modelID, CertificateID: sd.certID}
	s.lots[sd.lotID] = entity.LotStock{ID: sd.lotID, ShipmentID: sd.shipmentID, Quantity: qty, ModelID: sd.modelID}
	return sd
}

type fakeTx struct{ st *store }

func (f *fakeTx) Run(_ context.Context, fn func(repos inventory.TxRepos) error) error {
	snap := f.st.snapshot()
	if err := fn(f.st.repos()); err != nil {
		failOn := f.st.failOn
		*f.st = snap
		f.st.failOn = failOn
		return err
	}
	return nil
}

// ── lotes ──────────────────────────────────────────────────────────────────

type fakeLots struct{ s *store }

func (r *fakeLots) Create(_ context.Context, lot *entity.LotStock) error {
	if err := r.s.fail("lots.create"); err != nil {
		return err
	}
	lot.ID = r.s.id()
	r.s.lots[lot.ID] = *lot
	return nil
}

func (r *fakeLots) GetByID(_ context.Context, id int64) (*entity.LotStock, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *fakeLots) GetForUpdate(ctx context.Context, id int64) (*entity.LotStock, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeLots) ApplyDelta(_ context.Context, id int64, delta int) (int, error) {
	if err := r.s.fail("lots.apply"); err != nil {
		return 0, err
	}
	l, ok := r.s.lots[id]
	// lots.apply.guard: outra transação já consumiu o saldo
	if !ok || l.Quantity+delta < 0 || r.s.failOn == "lots.apply.guard" {
		return 0, domain.ErrInsufficientStock
	}
	l.Quantity += delta
	r.s.lots[id] = l
	return l.Quantity, nil
}

func (r *fakeLots) SetQuantity(_ context.Context, id int64, quantity int) error {
	l := r.s.lots[id]
	l.Quantity = quantity
	r.s.lots[id] = l
	return nil
}

func (r *fakeLots) filter(keep func(entity.LotStock) bool) []*entity.LotStock {
	var out []*entity.LotStock
	for _, l := range r.s.lots {
		if keep(l) {
			l := l
			out = append(out, &l)
		}
	}
	return out
}

func (r *fakeLots) List(context.Context) ([]*entity.LotStock, error) {
	return r.filter(func(entity.LotStock) bool { return true }), nil
}

func (r *fakeLots) ListByShipment(_ context.Context, shipmentID int64) ([]*entity.LotStock, error) {
	return r.filter(func(l entity.LotStock) bool { return l.ShipmentID == shipmentID }), nil
}

func (r *fakeLots) ListByModel(_ context.Context, modelID int64) ([]*entity.LotStock, error) {
	return r.filter(func(l entity.LotStock) bool { return l.ModelID == modelID }), nil
}

func (r *fakeLots) ListLowStock(_ context.Context, threshold int) ([]*entity.LotStock, error) {
	return r.filter(func(l entity.LotStock) bool { return l.Quantity <= threshold }), nil
}

func (r *fakeLots) ListExpiring(_ context.Context, days int) ([]*entity.LotStock, error) {
	limit := time.Now().AddDate(0, 0, days)
	return r.filter(func(l entity.LotStock) bool { return l.Quantity > 0 && !l.LotExpiry.After(limit) }), nil
}

func (r *fakeLots) DeleteByShipment(_ context.Context, shipmentID int64) error {
	for id, l := range r.s.lots {
		if l.ShipmentID == shipmentID {
			delete(r.s.lots, id)
		}
	}
	return nil
}

// ── modelos ────────────────────────────────────────────────────────────────

type fakeModels struct{ s *store }

func (r *fakeModels) Create(_ context.Context, m *entity.PPEModel) error {
	m.ID = r.s.id()
	r.s.models[m.ID] = *m
	return nil
}

func (r *fakeModels) GetByID(_ context.Context, id int64) (*entity.PPEModel, error) {
	m, ok := r.s.models[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeModels) Update(_ context.Context, m *entity.PPEModel) error {
	r.s.models[m.ID] = *m
	return nil
}

func (r *fakeModels) Delete(_ context.Context, id int64) error {
	delete(r.s.models, id)
	return nil
}

func (r *fakeModels) List(context.Context) ([]*entity.PPEModel, error) { return nil, nil }
func (r *fakeModels) ListByCategory(context.Context, int64) ([]*entity.PPEModel, error) {
	return nil, nil
}
func (r *fakeModels) ListByRole(context.Context, int64) ([]*entity.PPEModel, error) {
	return nil, nil
}

func (r *fakeModels) AdjustQuantity(_ context.Context, id int64, delta int) (int, error) {
	if err := r.s.fail("models.adjust"); err != nil {
		return 0, err
	}
	m, ok := r.s.models[id]
	if !ok || m.Quantity+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	m.Quantity += delta
	r.s.models[id] = m
	return m.Quantity, nil
}

func (r *fakeModels) UpdatePhoto(context.Context, int64, string) error { return nil }

func (r *fakeModels) ListRequirements(context.Context) ([]repository.ModelRequirement, error) {
	return r.s.reqs, nil
}

// ── movimentações ──────────────────────────────────────────────────────────

type fakeMovements struct{ s *store }

func (r *fakeMovements) Create(_ context.Context, m *entity.Movement) error {
	if err := r.s.fail("movements.create"); err != nil {
		return err
	}
	m.ID = r.s.id()
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *fakeMovements) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovements) filter(keep func(entity.Movement) bool) []*entity.Movement {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if keep(m) {
			m := m
			out = append(out, &m)
		}
	}
	return out
}

func (r *fakeMovements) List(context.Context) ([]*entity.Movement, error) {
	return r.filter(func(entity.Movement) bool { return true }), nil
}

func (r *fakeMovements) ListByType(_ context.Context, t entity.MovementType) ([]*entity.Movement, error) {
	return r.filter(func(m entity.Movement) bool { return m.Type == t }), nil
}

func (r *fakeMovements) ListByEmployee(_ context.Context, id int64) ([]*entity.Movement, error) {
	return r.filter(func(m entity.Movement) bool { return m.EmployeeID == id }), nil
}

func (r *fakeMovements) ListByModel(_ context.Context, id int64) ([]*entity.Movement, error) {
	return r.filter(func(m entity.Movement) bool { return m.ModelID == id }), nil
}

func (r *fakeMovements) CountByShipment(_ context.Context, shipmentID int64) (int, error) {
	n := 0
	for _, m := range r.s.movements {
		if l, ok := r.s.lots[m.LotStockID]; ok && l.ShipmentID == shipmentID {
			n++
		}
	}
	return n, nil
}

// ── remessas ───────────────────────────────────────────────────────────────

type fakeShipments struct{ s *store }

func (r *fakeShipments) Create(_ context.Context, sh *entity.Shipment) error {
	if err := r.s.fail("shipments.create"); err != nil {
		return err
	}
	sh.ID = r.s.id()
	r.s.shipments[sh.ID] = *sh
	return nil
}

func (r *fakeShipments) GetByID(_ context.Context, id int64) (*entity.Shipment, error) {
	sh, ok := r.s.shipments[id]
	if !ok {
		return nil, nil
	}
	return &sh, nil
}

func (r *fakeShipments) GetForUpdate(ctx context.Context, id int64) (*entity.Shipment, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeShipments) Update(_ context.Context, sh *entity.Shipment) error {
	r.s.shipments[sh.ID] = *sh
	return nil
}

func (r *fakeShipments) Delete(_ context.Context, id int64) error {
	delete(r.s.shipments, id)
	return nil
}

func (r *fakeShipments) filter(keep func(entity.Shipment) bool) []*entity.Shipment {
	var out []*entity.Shipment
	for _, sh := range r.s.shipments {
		if keep(sh) {
			sh := sh
			out = append(out, &sh)
		}
	}
	return out
}

func (r *fakeShipments) List(context.Context) ([]*entity.Shipment, error) {
	return r.filter(func(entity.Shipment) bool { return true }), nil
}

func (r *fakeShipments) ListBySupplier(_ context.Context, id int64) ([]*entity.Shipment, error) {
	return r.filter(func(sh entity.Shipment) bool { return sh.SupplierID == id }), nil
}

func (r *fakeShipments) ListByModel(_ context.Context, id int64) ([]*entity.Shipment, error) {
	return r.filter(func(sh entity.Shipment) bool { return sh.ModelID == id }), nil
}

func (r *fakeShipments) ListByPeriod(_ context.Context, from, to time.Time) ([]*entity.Shipment, error) {
	return r.filter(func(sh entity.Shipment) bool {
		return !sh.DeliveryDate.Before(from) && !sh.DeliveryDate.After(to)
	}), nil
}

// ── cadastros usados como referência ───────────────────────────────────────

type fakeEmployees struct{ s *store }

func (r *fakeEmployees) Create(context.Context, *entity.Employee) error { return nil }
func (r *fakeEmployees) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}
func (r *fakeEmployees) GetByRegistration(context.Context, string) (*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployees) Update(context.Context, *entity.Employee) error { return nil }
func (r *fakeEmployees) Delete(context.Context, int64) error            { return nil }
func (r *fakeEmployees) List(context.Context) ([]*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployees) ListByRole(context.Context, int64) ([]*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployees) UpdatePhoto(context.Context, int64, string) error { return nil }

type fakeSuppliers struct{ s *store }

func (r *fakeSuppliers) Create(context.Context, *entity.Supplier) error { return nil }
func (r *fakeSuppliers) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}
func (r *fakeSuppliers) Update(context.Context, *entity.Supplier) error { return nil }
func (r *fakeSuppliers) Delete(context.Context, int64) error            { return nil }
func (r *fakeSuppliers) List(context.Context) ([]*entity.Supplier, error) {
	return nil, nil
}

type fakeCerts struct{ s *store }

func (r *fakeCerts) Create(context.Context, *entity.Certificate) error { return nil }
func (r *fakeCerts) GetByID(_ context.Context, id int64) (*entity.Certificate, error) {
	c, ok := r.s.certs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
func (r *fakeCerts) GetByNumber(context.Context, string) (*entity.Certificate, error) {
	return nil, nil
}
func (r *fakeCerts) Update(context.Context, *entity.Certificate) error { return nil }
func (r *fakeCerts) Delete(context.Context, int64) error               { return nil }
func (r *fakeCerts) List(context.Context) ([]*entity.Certificate, error) {
	return nil, nil
}
func (r *fakeCerts) ListByModel(context.Context, int64) ([]*entity.Certificate, error) {
	return nil, nil
}
func (r *fakeCerts) ListActive(context.Context) ([]*entity.Certificate, error) { return nil, nil }
func (r *fakeCerts) ListExpiring(context.Context, int) ([]*entity.Certificate, error) {
	return nil, nil
}

// ── observadores ───────────────────────────────────────────────────────────

type recordingNotifier struct{ events []inventory.StockEvent }

func (n *recordingNotifier) StockChanged(evt inventory.StockEvent) { n.events = append(n.events, evt) }

type recordingHook struct{ calls int }

func (h *recordingHook) OnTraceableMovement(context.Context, inventory.TxRepos, *entity.Movement) error {
	h.calls++
	return nil
}
