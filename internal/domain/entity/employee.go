package entity

import "time"

// Employee funcionário que recebe EPIs.
type Employee struct {
	ID                 int64
	FirstName          string
	LastName           string
	RegistrationNumber string
	Department         string
	CPF                string
	BirthDate          *time.Time
	HireDate           *time.Time
	BloodType          string
	RoleID             int64
	PhotoPath          *string
}

// FullName nome e sobrenome.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
