package entity

// PPEModel modelo de EPI. Quantity é o agregado dos saldos de todos os lotes do modelo.
type PPEModel struct {
	ID          int64
	Name        string
	Quantity    int
	Disposable  bool
	Traceable   bool
	Description string
	BrandID     int64
	CategoryID  int64
	PhotoPath   *string
}
