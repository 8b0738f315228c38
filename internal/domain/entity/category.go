package entity

// Category categoria de EPI (luvas, capacetes, ...).
type Category struct {
	ID   int64
	Name string
}
