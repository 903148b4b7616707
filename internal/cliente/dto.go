package cliente

// DTO usado no POST /clientes e no PATCH /clientes/{id}.
type ClienteDTO struct {
	Nome               string   `json:"nome" validate:"required"`
	Origem             string   `json:"origem" validate:"required,oneof=prospeccao meta-ads google-ads indicacao outro"`
	Fechamento         string   `json:"fechamento" validate:"required,oneof=comercial agencia parceiro"`
	Email              string   `json:"email" validate:"omitempty,email"`
	Telefone           string   `json:"telefone"`
	VendedorID         *uint    `json:"vendedorId"`
	PercentualComissao *float64 `json:"percentualComissao" validate:"omitempty,gte=0,lte=100"`
}

// AplicarVariante zera vínculo de vendedor e percentual de comissão quando o
// fechamento não é comercial: os campos só existem nesse canal.
func (d *ClienteDTO) AplicarVariante() {
	if d.Fechamento != FechamentoComercial {
		d.VendedorID = nil
		d.PercentualComissao = nil
	}
}
