package dto

// PPEModelRequest entrada para criar ou atualizar um modelo de EPI.
// A quantidade não é informada: ela é o agregado dos lotes.
type PPEModelRequest struct {
	Name        string `json:"nome_epi" validate:"required,max=150"`
	Disposable  bool   `json:"descartavel"`
	Traceable   bool   `json:"rastreavel"`
	Description string `json:"descricao_epi" validate:"max=500"`
	BrandID     int64  `json:"id_marca" validate:"required,gt=0"`
	CategoryID  int64  `json:"id_categoria" validate:"required,gt=0"`
}

// PPEModelResponse saída de um modelo de EPI.
type PPEModelResponse struct {
	ID          int64   `json:"id_modelo_epi"`
	Name        string  `json:"nome_epi"`
	Quantity    int     `json:"quantidade"`
	Disposable  bool    `json:"descartavel"`
	Traceable   bool    `json:"rastreavel"`
	Description string  `json:"descricao_epi"`
	BrandID     int64   `json:"id_marca"`
	CategoryID  int64   `json:"id_categoria"`
	PhotoPath   *string `json:"foto_epi_path"`
}

// CertificateRequest entrada para criar ou atualizar um CA.
type CertificateRequest struct {
	Number    string  `json:"numero_ca" validate:"required,max=20"`
	ExpiresAt string  `json:"validade_ca" validate:"required,datetime=2006-01-02"`
	IssuedAt  *string `json:"data_emissao" validate:"omitempty,datetime=2006-01-02"`
	Active    *bool   `json:"ativo"`
	ModelID   int64   `json:"id_modelo_epi" validate:"required,gt=0"`
}

// CertificateResponse saída de um CA.
type CertificateResponse struct {
	ID           int64   `json:"id_ca"`
	Number       string  `json:"numero_ca"`
	ExpiresAt    string  `json:"validade_ca"`
	IssuedAt     *string `json:"data_emissao"`
	Active       bool    `json:"ativo"`
	ModelID      int64   `json:"id_modelo_epi"`
	ModelName    string  `json:"nome_epi,omitempty"`
	DaysToExpire *int    `json:"dias_para_vencer,omitempty"`
}
