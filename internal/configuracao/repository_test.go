package configuracao

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AgenciaNexo/api-crm/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Configuracao{}))
	return db
}

func TestCarregarCriaLinhaComPadroes(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	c, err := repo.Carregar()
	require.NoError(t, err)
	assert.Equal(t, NomeAppPadrao, c.NomeApp)
	assert.Equal(t, "#3B82F6", c.CorPrimaria)
	assert.Equal(t, UsuarioAdminPadrao, c.UsuarioAdmin)
	assert.True(t, utils.VerificarSenha(c.SenhaAdmin, SenhaAdminPadrao))

	// segunda carga devolve a mesma linha, não cria outra
	outra, err := repo.Carregar()
	require.NoError(t, err)
	assert.Equal(t, c.ID, outra.ID)

	var total int64
	db.Model(&Configuracao{}).Count(&total)
	assert.EqualValues(t, 1, total)
}

func TestAtualizarParcial(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(NewRepository(db))

	corpo := strings.NewReader(`{"nomeApp":"Nexo CRM","corPrimaria":"#FF0000"}`)
	req := httptest.NewRequest(http.MethodPatch, "/configuracoes", corpo)
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	c, err := NewRepository(db).Carregar()
	require.NoError(t, err)
	assert.Equal(t, "Nexo CRM", c.NomeApp)
	assert.Equal(t, "#FF0000", c.CorPrimaria)
	// campos não enviados ficam como estavam
	assert.Equal(t, "#FFFFFF", c.CorPrimariaTexto)
	assert.Equal(t, UsuarioAdminPadrao, c.UsuarioAdmin)
}

func TestBuscarNaoExpoeSenha(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(NewRepository(db))

	req := httptest.NewRequest(http.MethodGet, "/configuracoes", nil)
	rec := httptest.NewRecorder()
	h.Buscar(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "senhaAdmin")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestRedefinirCredenciais(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	require.NoError(t, repo.AtualizarSenha("outra"))
	require.NoError(t, repo.RedefinirCredenciais())

	c, err := repo.Carregar()
	require.NoError(t, err)
	assert.True(t, utils.VerificarSenha(c.SenhaAdmin, SenhaAdminPadrao))
}
