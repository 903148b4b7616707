package utils

import "time"

// Datas civis são sempre meia-noite UTC. Toda data que entra pela API passa
// por NormalizarData antes de ser gravada ou comparada.

// AdicionarMeses soma n meses à data. Quando o dia do mês não existe no mês
// de destino, o resultado fixa no último dia válido (31/01 + 1 mês = 28/02).
func AdicionarMeses(t time.Time, n int) time.Time {
	ano, mes, dia := t.Date()
	primeiro := time.Date(ano, mes+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if ultimo := diasNoMes(primeiro.Year(), primeiro.Month()); dia > ultimo {
		dia = ultimo
	}
	return time.Date(primeiro.Year(), primeiro.Month(), dia, 0, 0, 0, 0, time.UTC)
}

func diasNoMes(ano int, mes time.Month) int {
	// dia zero do mês seguinte é o último dia do mês
	return time.Date(ano, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NormalizarData descarta hora e fuso, devolvendo a data civil em UTC.
func NormalizarData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseData interpreta datas no formato canônico "2006-01-02".
func ParseData(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// ParseMes interpreta meses no formato "2006-01".
func ParseMes(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01", s, time.UTC)
}

// MesmoMes informa se as duas datas caem no mesmo mês do calendário.
func MesmoMes(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AntesDoDia informa se a data cai estritamente antes do início do dia de
// referência. É a regra de atraso: vencida ontem está atrasada, hoje não.
func AntesDoDia(data, referencia time.Time) bool {
	return NormalizarData(data).Before(NormalizarData(referencia))
}
