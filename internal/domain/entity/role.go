package entity

// Role cargo do funcionário; define os EPIs exigidos (epi_cargo).
type Role struct {
	ID   int64
	Name string
}
