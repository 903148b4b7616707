package vendedor

import (
	"time"

	"gorm.io/gorm"
)

// Vendedor é referenciado por clientes fechados pelo canal comercial.
type Vendedor struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Telefone string `gorm:"size:50" json:"telefone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vendedor{})
}
