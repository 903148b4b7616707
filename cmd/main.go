package main

import (
	"net/http"
	"os"

	"github.com/AgenciaNexo/api-crm/internal/auth"
	"github.com/AgenciaNexo/api-crm/internal/cliente"
	"github.com/AgenciaNexo/api-crm/internal/configuracao"
	"github.com/AgenciaNexo/api-crm/internal/contrato"
	"github.com/AgenciaNexo/api-crm/internal/mensalidade"
	"github.com/AgenciaNexo/api-crm/internal/middleware"
	"github.com/AgenciaNexo/api-crm/internal/relatorio"
	"github.com/AgenciaNexo/api-crm/internal/utils/db"
	"github.com/AgenciaNexo/api-crm/internal/vendedor"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	conexao, err := db.Conectar()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := conexao.AutoMigrate(
		&vendedor.Vendedor{},
		&cliente.Cliente{},
		&contrato.Contrato{},
		&mensalidade.Mensalidade{},
		&configuracao.Configuracao{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	// Handlers
	configRepo := configuracao.NewRepository(conexao)
	clienteHandler := cliente.NewHandler(conexao)
	vendedorHandler := vendedor.NewHandler(vendedor.NewRepository(conexao))
	contratoHandler := contrato.NewHandler(conexao)
	mensalidadeHandler := mensalidade.NewHandler(mensalidade.NewRepository(conexao))
	relatorioHandler := relatorio.NewHandler(conexao)
	configHandler := configuracao.NewHandler(configRepo)
	authHandler := auth.NewHandler(configRepo)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Recuperacao(logger))
	r.Use(middleware.Logger(logger))
	r.Use(auth.MiddlewareAutenticacao)

	// Autenticação
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/esqueci-senha", authHandler.EsqueciSenha).Methods("POST")
	r.HandleFunc("/auth/reset-emergencia", authHandler.ResetEmergencia).Methods("GET")

	// Rotas de clientes
	r.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PATCH")
	r.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas de vendedores
	r.HandleFunc("/vendedores", vendedorHandler.Criar).Methods("POST")
	r.HandleFunc("/vendedores", vendedorHandler.Listar).Methods("GET")
	r.HandleFunc("/vendedores/{id}", vendedorHandler.Deletar).Methods("DELETE")

	// Rotas de contratos
	r.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	r.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	r.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")

	// Rotas de mensalidades
	r.HandleFunc("/mensalidades", mensalidadeHandler.Listar).Methods("GET")
	r.HandleFunc("/mensalidades", mensalidadeHandler.Criar).Methods("POST")
	r.HandleFunc("/mensalidades/{id}/status", mensalidadeHandler.AtualizarStatus).Methods("PATCH")

	// Relatórios
	r.HandleFunc("/relatorios/dashboard", relatorioHandler.Dashboard).Methods("GET")
	r.HandleFunc("/relatorios/clientes", relatorioHandler.ListarClientes).Methods("GET")
	r.HandleFunc("/relatorios/vendedores", relatorioHandler.Comissoes).Methods("GET")

	// Configurações
	r.HandleFunc("/configuracoes", configHandler.Buscar).Methods("GET")
	r.HandleFunc("/configuracoes", configHandler.Atualizar).Methods("PATCH")

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	handler := cors.AllowAll().Handler(r)
	logger.Info("servidor no ar", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		logger.Fatal("servidor encerrou com erro", zap.Error(err))
	}
}
