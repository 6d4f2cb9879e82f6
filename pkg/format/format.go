// Package format da formato a montos y fechas tal como los muestra la PWA.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount2 monto con separador de miles y 2 decimales: 1234.5 → "1,234.50".
func Amount2(v decimal.Decimal) string {
	return printer.Sprint(number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2)))
}

// KHR monto en riel, sin decimales: 12500.4 → "12,500".
func KHR(v decimal.Decimal) string {
	return printer.Sprint(number.Decimal(v.Round(0).InexactFloat64(), number.Scale(0)))
}

// USD monto en dólares: 1234.5 → "$1,234.50"; negativos "-$2.50".
func USD(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-$" + Amount2(v.Neg())
	}
	return "$" + Amount2(v)
}

// DateTimeInput "YYYY-MM-DDTHH:MM" en la zona de t, el formato de los campos datetime-local.
func DateTimeInput(t time.Time) string {
	return t.Format("2006-01-02T15:04")
}

// ParseDateTimeInput interpreta "YYYY-MM-DDTHH:MM" (o con segundos) en loc.
func ParseDateTimeInput(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// DateAMPM "DD/MM/YYYY:h:mm:am" en la zona de t.
func DateAMPM(t time.Time) string {
	ampm := "am"
	if t.Hour() >= 12 {
		ampm = "pm"
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%s:%d:%02d:%s", t.Format("02/01/2006"), h, t.Minute(), ampm)
}

var khmerDigits = [10]rune{'០', '១', '២', '៣', '៤', '៥', '៦', '៧', '៨', '៩'}

// KhmerDigits reemplaza los dígitos ASCII por numerales jemeres.
func KhmerDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(khmerDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var khmerMonths = [12]string{
	"មករា", "កុម្ភៈ", "មីនា", "មេសា", "ឧសភា", "មិថុនា",
	"កក្កដា", "សីហា", "កញ្ញា", "តុលា", "វិច្ឆិកា", "ធ្នូ",
}

// KhmerMonth nombre jemer del mes.
func KhmerMonth(m time.Month) string {
	return khmerMonths[m-1]
}

// KhmerDayMonth "១៥ - តុលា".
func KhmerDayMonth(t time.Time) string {
	return KhmerDigits(fmt.Sprint(t.Day())) + " - " + KhmerMonth(t.Month())
}
