package contrato

import (
	"time"

	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"gorm.io/gorm"
)

// Contrato é um acordo de cobrança por prazo fixo de um cliente, decomposto
// em mensalidades. DataFim e ValorTotal são sempre derivados de
// DataInicio + DuracaoMeses e ValorMensal × DuracaoMeses, nunca editados
// diretamente.
type Contrato struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClienteID    uint      `gorm:"not null;index" json:"clienteId"`
	DataInicio   time.Time `gorm:"not null" json:"dataInicio"`
	DataFim      time.Time `gorm:"not null" json:"dataFim"`
	DuracaoMeses int       `gorm:"not null" json:"duracaoMeses"`
	ValorMensal  float64   `gorm:"not null;default:0" json:"valorMensal"`
	ValorTotal   float64   `gorm:"not null;default:0" json:"valorTotal"`
	Antecipado   bool      `gorm:"not null;default:false" json:"antecipado"`
	Ativo        bool      `gorm:"not null;default:true" json:"ativo"`
	URLContrato  string    `gorm:"size:255" json:"urlContrato"` // link ou nome de arquivo

	Mensalidades []mensalidade.Mensalidade `gorm:"foreignKey:ContratoID" json:"mensalidades,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
