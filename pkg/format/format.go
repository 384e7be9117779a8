// Package format reproduz a formatação pt-MZ do aplicativo: valores com
// separador de milhar e sufixo "MT", datas em dia/mês.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Portuguese)

// Currency formata um valor monetário com separadores de milhar e o
// sufixo "MT" (metical). Casas decimais só aparecem quando existem.
func Currency(amount float64) string {
	formatted := printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
	return formatted + " MT"
}

// Date formata uma data como dia/mês/ano
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTime formata uma data como dia/mês com hora e minuto
func DateTime(t time.Time) string {
	return t.Format("02/01 15:04")
}
