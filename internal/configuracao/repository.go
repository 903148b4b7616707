package configuracao

import (
	"errors"

	"github.com/AgenciaNexo/api-crm/internal/utils"
	"gorm.io/gorm"
)

// Repository encapsula o acesso à linha única de configurações.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Carregar devolve a configuração vigente, criando a linha com os valores
// padrão na primeira chamada.
func (r *Repository) Carregar() (*Configuracao, error) {
	var c Configuracao
	err := r.DB.First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashSenha(SenhaAdminPadrao)
	if err != nil {
		return nil, err
	}
	c = Configuracao{
		NomeApp:             NomeAppPadrao,
		CorPrimaria:         "#3B82F6",
		CorPrimariaTexto:    "#FFFFFF",
		CorSuperficieClara:  "#FFFFFF",
		CorFundoClaro:       "#F1F5F9",
		CorBordaClara:       "#E2E8F0",
		CorSuperficieEscura: "#1E293B",
		CorFundoEscuro:      "#0F172A",
		CorBordaEscura:      "#334155",
		UsuarioAdmin:        UsuarioAdminPadrao,
		SenhaAdmin:          hash,
	}
	if err := r.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar regrava a linha inteira.
func (r *Repository) Atualizar(c *Configuracao) error {
	return r.DB.Save(c).Error
}

// RedefinirCredenciais volta usuário e senha para o padrão de fábrica.
func (r *Repository) RedefinirCredenciais() error {
	c, err := r.Carregar()
	if err != nil {
		return err
	}
	hash, err := utils.HashSenha(SenhaAdminPadrao)
	if err != nil {
		return err
	}
	c.UsuarioAdmin = UsuarioAdminPadrao
	c.SenhaAdmin = hash
	return r.DB.Save(c).Error
}

// AtualizarSenha grava um novo hash de senha do admin.
func (r *Repository) AtualizarSenha(novaSenha string) error {
	c, err := r.Carregar()
	if err != nil {
		return err
	}
	hash, err := utils.HashSenha(novaSenha)
	if err != nil {
		return err
	}
	c.SenhaAdmin = hash
	return r.DB.Save(c).Error
}
