package dto

import "time"

// DateLayout formato das datas trafegadas na API.
const DateLayout = "2006-01-02"

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse confirmação simples com o id criado, quando houver.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// FormatDate formata uma data no layout da API.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr devolve nil para datas ausentes.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDatePtr converte uma data opcional; string vazia vira nil.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
