// Package format renders dates, times and amounts the way the pt-BR banking
// screens display them.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	weekdays = [...]string{
		"domingo",
		"segunda-feira",
		"terça-feira",
		"quarta-feira",
		"quinta-feira",
		"sexta-feira",
		"sábado",
	}

	months = [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}

	printer = message.NewPrinter(language.BrazilianPortuguese)
)

// Weekday returns the lower-case pt-BR weekday name.
func Weekday(t time.Time) string {
	return weekdays[t.Weekday()]
}

// Month returns the lower-case pt-BR month name.
func Month(t time.Time) string {
	return months[t.Month()-1]
}

// Date formats t as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// LongDate formats t as "quarta-feira, 10/12/2025".
func LongDate(t time.Time) string {
	return Weekday(t) + ", " + Date(t)
}

// HeaderDate formats t as "quarta-feira, 10 de dezembro".
func HeaderDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s", Weekday(t), t.Day(), Month(t))
}

// Clock formats t as "16:48".
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// ReceiptTime formats t as "16h48".
func ReceiptTime(t time.Time) string {
	return fmt.Sprintf("%02dh%02d", t.Hour(), t.Minute())
}

// Decimal formats cents as a pt-BR decimal without currency, e.g. "1.500,00".
func Decimal(cents int64) string {
	return printer.Sprintf("%.2f", float64(cents)/100)
}

// Money formats cents as "R$ 1.500,00". Negative values keep the sign in
// front of the currency symbol: "- R$ 24,90".
func Money(cents int64) string {
	if cents < 0 {
		return "- R$ " + Decimal(-cents)
	}
	return "R$ " + Decimal(cents)
}

// SignedMoney formats cents with an explicit sign: "+ R$ 1.500,00".
func SignedMoney(cents int64) string {
	if cents < 0 {
		return Money(cents)
	}
	return "+ " + Money(cents)
}

// CapitalizeFirst upper-cases the first rune of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Upper upper-cases s using pt-BR casing rules. Casers are stateful, so a
// new one is made per call.
func Upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}
