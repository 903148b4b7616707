package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão com o Postgres a partir das variáveis de ambiente
// DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME e DB_SSL_MODE_DISABLE.
func Conectar() (*gorm.DB, error) {
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432 // porta padrão do PostgreSQL
	}

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), porta, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
