package entity

import "time"

// Certificate Certificado de Aprovação (CA) de um modelo de EPI.
type Certificate struct {
	ID        int64
	Number    string
	ExpiresAt time.Time
	IssuedAt  *time.Time
	Active    bool
	ModelID   int64

	// Preenchido nas consultas de vencimento.
	ModelName string
}

// DaysToExpire dias até o vencimento a partir de ref (negativo se já venceu).
func (c *Certificate) DaysToExpire(ref time.Time) int {
	y, m, d := ref.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := c.ExpiresAt.Date()
	exp := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(today).Hours() / 24)
}
