package dto

// EmployeeRequest entrada para criar ou atualizar um funcionário.
type EmployeeRequest struct {
	FirstName          string  `json:"nome_funcionario" validate:"required,max=100"`
	LastName           string  `json:"sobrenome_funcionario" validate:"max=100"`
	RegistrationNumber string  `json:"numero_matricula" validate:"required,max=30"`
	Department         string  `json:"setor" validate:"max=100"`
	CPF                string  `json:"cpf" validate:"required,max=14"`
	BirthDate          *string `json:"dt_nascimento" validate:"omitempty,datetime=2006-01-02"`
	HireDate           *string `json:"dt_admissao" validate:"omitempty,datetime=2006-01-02"`
	BloodType          string  `json:"tipo_sanguineo" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	RoleID             int64   `json:"id_cargo" validate:"required,gt=0"`
}

// EmployeeResponse saída de um funcionário.
type EmployeeResponse struct {
	ID                 int64   `json:"id_funcionario"`
	FirstName          string  `json:"nome_funcionario"`
	LastName           string  `json:"sobrenome_funcionario"`
	RegistrationNumber string  `json:"numero_matricula"`
	Department         string  `json:"setor"`
	CPF                string  `json:"cpf"`
	BirthDate          *string `json:"dt_nascimento"`
	HireDate           *string `json:"dt_admissao"`
	BloodType          string  `json:"tipo_sanguineo"`
	RoleID             int64   `json:"id_cargo"`
	PhotoPath          *string `json:"foto_perfil_path"`
}
