package configuracao

import (
	"time"

	"gorm.io/gorm"
)

// Valores padrão da primeira carga (linha criada sob demanda).
const (
	NomeAppPadrao      = "Agency CRM"
	UsuarioAdminPadrao = "admin"
	SenhaAdminPadrao   = "123"
)

// Configuracao é a linha única de ajustes do sistema: identidade visual e
// credenciais do admin. A senha é gravada como hash bcrypt e nunca sai pela
// API.
type Configuracao struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NomeApp          string `gorm:"size:100;not null" json:"nomeApp"`
	CorPrimaria      string `gorm:"size:20" json:"corPrimaria"`
	CorPrimariaTexto string `gorm:"size:20" json:"corPrimariaTexto"`
	LogoURL          string `gorm:"size:255" json:"logoUrl"`
	FaviconURL       string `gorm:"size:255" json:"faviconUrl"`

	// Paleta dos dois temas.
	CorSuperficieClara  string `gorm:"size:20" json:"corSuperficieClara"`
	CorFundoClaro       string `gorm:"size:20" json:"corFundoClaro"`
	CorBordaClara       string `gorm:"size:20" json:"corBordaClara"`
	CorSuperficieEscura string `gorm:"size:20" json:"corSuperficieEscura"`
	CorFundoEscuro      string `gorm:"size:20" json:"corFundoEscuro"`
	CorBordaEscura      string `gorm:"size:20" json:"corBordaEscura"`

	UsuarioAdmin string `gorm:"size:100;not null" json:"usuarioAdmin"`
	SenhaAdmin   string `gorm:"size:255;not null" json:"-"` // hash bcrypt

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Configuracao{})
}
