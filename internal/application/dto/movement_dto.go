package dto

// CreateMovementRequest entrada para registrar entrega, troca, devolução ou entrada de EPI.
type CreateMovementRequest struct {
	Type       string `json:"tipo_movimentacao" validate:"required,oneof=Entrega Troca Devolucao Entrada"`
	Date       string `json:"data" validate:"required,datetime=2006-01-02"`
	Time       string `json:"hora" validate:"required,clock"`
	Quantity   int    `json:"quantidade" validate:"gt=0"`
	Note       string `json:"descricao" validate:"max=500"`
	EmployeeID int64  `json:"id_funcionario" validate:"required,gt=0"`
	ModelID    int64  `json:"id_modelo_epi" validate:"required,gt=0"`
	LotStockID int64  `json:"id_estoque_lote" validate:"required,gt=0"`
}

// MovementResponse saída de uma movimentação.
type MovementResponse struct {
	ID           int64  `json:"id"`
	Type         string `json:"tipo_movimentacao"`
	Date         string `json:"data"`
	Time         string `json:"hora"`
	Quantity     int    `json:"quantidade"`
	Note         string `json:"descricao"`
	EmployeeID   int64  `json:"id_funcionario"`
	EmployeeName string `json:"nome_funcionario,omitempty"`
	ModelID      int64  `json:"id_modelo_epi"`
	ModelName    string `json:"nome_epi,omitempty"`
	LotStockID   int64  `json:"id_estoque_lote"`
}
