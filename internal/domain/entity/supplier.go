package entity

// Supplier fornecedor de EPIs.
type Supplier struct {
	ID           int64
	Name         string
	CNPJ         string
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
}
