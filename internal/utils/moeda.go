package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var impressoraPtBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda formata um valor em reais: 1234.56 -> "R$ 1.234,56".
func FormatarMoeda(valor float64) string {
	return impressoraPtBR.Sprintf("R$ %.2f", valor)
}

// FormatarData devolve a data no padrão brasileiro dd/mm/aaaa.
func FormatarData(t time.Time) string {
	return t.Format("02/01/2006")
}

var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatarMes devolve "janeiro 2024", como nos cabeçalhos de relatório.
func FormatarMes(t time.Time) string {
	return mesesPtBR[t.Month()-1] + " " + t.Format("2006")
}
