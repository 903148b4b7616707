package cliente

import (
	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Criar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Atualizar(db *gorm.DB, c *Cliente) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.Preload("Contratos").First(&c, id).Error
	return &c, err
}

// Lista do mais recente para o mais antigo, como a tela de clientes exibe.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Order("created_at DESC").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Cliente) error {
	// Omite associações para não regravar contratos pré-carregados.
	return db.Omit(clause.Associations).Save(c).Error
}

// Deletar remove o cliente em cascata: mensalidades, depois contratos,
// depois o cliente, tudo numa transação só.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cliente_id = ?", id).Delete(&mensalidade.Mensalidade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cliente_id = ?", id).Delete(&contrato.Contrato{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Cliente{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
