package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha devolve o hash bcrypt da senha, com o custo padrão da lib.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha informa se a senha em texto puro confere com o hash gravado.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
