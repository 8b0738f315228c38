package entity

// Brand marca de EPI.
type Brand struct {
	ID   int64
	Name string
}
