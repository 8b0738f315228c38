package dto

// RoleRequest entrada para criar ou atualizar um cargo.
type RoleRequest struct {
	Name string `json:"nome_cargo" validate:"required,max=100"`
}

// RoleResponse saída de um cargo.
type RoleResponse struct {
	ID   int64  `json:"id_cargo"`
	Name string `json:"nome_cargo"`
}

// RoleModelRequest associa um modelo de EPI obrigatório ao cargo.
type RoleModelRequest struct {
	ModelID int64 `json:"id_modelo_epi" validate:"required,gt=0"`
}

// CategoryRequest entrada para criar ou atualizar uma categoria.
type CategoryRequest struct {
	Name string `json:"nome_categoria" validate:"required,max=100"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID   int64  `json:"id_categoria"`
	Name string `json:"nome_categoria"`
}

// BrandRequest entrada para criar ou atualizar uma marca.
type BrandRequest struct {
	Name string `json:"nome_marca" validate:"required,max=100"`
}

// BrandResponse saída de uma marca.
type BrandResponse struct {
	ID   int64  `json:"id_marca"`
	Name string `json:"nome_marca"`
}

// SupplierRequest entrada para criar ou atualizar um fornecedor.
type SupplierRequest struct {
	Name         string `json:"nome_fornecedor" validate:"required,max=150"`
	CNPJ         string `json:"cnpj" validate:"required,max=18"`
	Street       string `json:"logradouro" validate:"max=150"`
	Number       string `json:"numero" validate:"max=20"`
	Neighborhood string `json:"bairro" validate:"max=100"`
	City         string `json:"cidade" validate:"max=100"`
	State        string `json:"estado" validate:"omitempty,len=2"`
}

// SupplierResponse saída de um fornecedor.
type SupplierResponse struct {
	ID           int64  `json:"id_fornecedor"`
	Name         string `json:"nome_fornecedor"`
	CNPJ         string `json:"cnpj"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
}
