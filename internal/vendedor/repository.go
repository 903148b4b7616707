package vendedor

import (
	"errors"

	"gorm.io/gorm"
)

var ErrPossuiClientes = errors.New("vendedor possui clientes vinculados")

// Repository encapsula o acesso a dados de Vendedores.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Resumo junta o vendedor à quantidade de clientes que o referenciam.
type Resumo struct {
	Vendedor
	QtdClientes int64 `json:"qtdClientes"`
}

func (r *Repository) Criar(v *Vendedor) error {
	return r.DB.Create(v).Error
}

// ListarComResumo devolve os vendedores em ordem alfabética com a contagem
// de clientes vinculados.
func (r *Repository) ListarComResumo() ([]Resumo, error) {
	var resumos []Resumo
	err := r.DB.
		Table("vendedors").
		Select("vendedors.*, COUNT(clientes.id) AS qtd_clientes").
		Joins("LEFT JOIN clientes ON clientes.vendedor_id = vendedors.id").
		Group("vendedors.id").
		Order("vendedors.nome ASC").
		Find(&resumos).Error
	return resumos, err
}

func (r *Repository) ListarTodos() ([]Vendedor, error) {
	var vs []Vendedor
	err := r.DB.Order("nome ASC").Find(&vs).Error
	return vs, err
}

// Deletar recusa a exclusão enquanto houver clientes apontando para o
// vendedor, senão a comissão desses clientes sumiria dos relatórios.
func (r *Repository) Deletar(id uint) error {
	var vinculados int64
	if err := r.DB.Table("clientes").Where("vendedor_id = ?", id).Count(&vinculados).Error; err != nil {
		return err
	}
	if vinculados > 0 {
		return ErrPossuiClientes
	}
	res := r.DB.Delete(&Vendedor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
