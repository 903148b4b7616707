package contrato

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]ItemListagem, error)
	Atualizar(db *gorm.DB, c *Contrato) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ItemListagem junta o contrato ao nome do cliente para a tela de listagem.
type ItemListagem struct {
	Contrato
	NomeCliente string `json:"nomeCliente"`
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	err := db.Preload("Mensalidades").First(&c, id).Error
	return &c, err
}

// Lista do mais recente para o mais antigo, como a tela de contratos exibe.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]ItemListagem, error) {
	var itens []ItemListagem
	err := db.
		Table("contratos").
		Select("contratos.*, clientes.nome AS nome_cliente").
		Joins("JOIN clientes ON clientes.id = contratos.cliente_id").
		Order("contratos.data_inicio DESC").
		Find(&itens).Error
	return itens, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	// Omite associações para não regravar mensalidades pré-carregadas.
	return db.Omit(clause.Associations).Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&Contrato{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
