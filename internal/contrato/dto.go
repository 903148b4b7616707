package contrato

// DTO usado no POST /contratos.
type CriarDTO struct {
	ClienteID    uint    `json:"clienteId" validate:"required"`
	DataInicio   string  `json:"dataInicio" validate:"required,datetime=2006-01-02"`
	DuracaoMeses int     `json:"duracaoMeses" validate:"required,min=1"`
	ValorMensal  float64 `json:"valorMensal" validate:"min=0"`
	Antecipado   bool    `json:"antecipado"`
	URLContrato  string  `json:"urlContrato"`
}

// DTO usado no PUT /contratos/{id}. O cliente do contrato não muda.
type AtualizarDTO struct {
	DataInicio   string  `json:"dataInicio" validate:"required,datetime=2006-01-02"`
	DuracaoMeses int     `json:"duracaoMeses" validate:"required,min=1"`
	ValorMensal  float64 `json:"valorMensal" validate:"min=0"`
	URLContrato  string  `json:"urlContrato"`
}
