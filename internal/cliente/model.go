package cliente

import (
	"time"

	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"gorm.io/gorm"
)

// Origens de lead aceitas.
const (
	OrigemProspeccao = "prospeccao"
	OrigemMetaAds    = "meta-ads"
	OrigemGoogleAds  = "google-ads"
	OrigemIndicacao  = "indicacao"
	OrigemOutro      = "outro"
)

// Canais de fechamento.
const (
	FechamentoComercial = "comercial"
	FechamentoAgencia   = "agencia"
	FechamentoParceiro  = "parceiro"
)

// Cliente é uma conta cobrada por um ou mais contratos. VendedorID e
// PercentualComissao só têm significado quando o fechamento foi pelo canal
// comercial; a camada de entrada zera os dois nos demais canais.
type Cliente struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	Nome               string   `gorm:"size:255;not null" json:"nome"`
	Origem             string   `gorm:"size:50;not null" json:"origem"`
	Fechamento         string   `gorm:"size:50;not null" json:"fechamento"`
	Email              string   `gorm:"size:255" json:"email"`
	Telefone           string   `gorm:"size:50" json:"telefone"`
	VendedorID         *uint    `gorm:"index" json:"vendedorId"`
	PercentualComissao *float64 `json:"percentualComissao"` // 0 a 100

	Contratos []contrato.Contrato `gorm:"foreignKey:ClienteID" json:"contratos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
