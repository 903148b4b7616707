package mensalidade

import (
	"time"

	"gorm.io/gorm"
)

// Status persistidos. "Atrasado" nunca vai para o banco: é derivado na
// leitura em StatusExibicao, assim o valor está sempre correto em relação
// a "hoje" sem precisar de job de atualização.
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
	StatusAtrasado = "Atrasado"
)

// Mensalidade é uma linha de cobrança gerada a partir de um contrato.
// ClienteID é redundante (sempre igual ao do contrato) e existe para
// facilitar as consultas por cliente.
type Mensalidade struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ContratoID     uint       `gorm:"not null;index" json:"contratoId"`
	ClienteID      uint       `gorm:"not null;index" json:"clienteId"`
	DataVencimento time.Time  `gorm:"not null;index" json:"dataVencimento"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	Status         string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	Descricao      string     `gorm:"size:255" json:"descricao"` // ex.: "Mensalidade 2/6"
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Mensalidade{})
}
