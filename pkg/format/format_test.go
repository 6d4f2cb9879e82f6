package format_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/pkg/format"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAmount2(t *testing.T) {
	assert.Equal(t, "1,234.50", format.Amount2(d("1234.5")))
	assert.Equal(t, "0.00", format.Amount2(decimal.Zero))
	assert.Equal(t, "25.00", format.Amount2(d("25")))
}

func TestKHR(t *testing.T) {
	assert.Equal(t, "12,500", format.KHR(d("12500.4")))
	assert.Equal(t, "4,000", format.KHR(d("4000")))
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$1,234.50", format.USD(d("1234.5")))
	assert.Equal(t, "-$2.50", format.USD(d("-2.5")))
}

func TestFechas(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Phnom_Penh")
	require.NoError(t, err)
	ts := time.Date(2026, time.October, 5, 0, 7, 0, 0, loc)

	assert.Equal(t, "2026-10-05T00:07", format.DateTimeInput(ts))
	assert.Equal(t, "05/10/2026:12:07:am", format.DateAMPM(ts))
	assert.Equal(t, "05/10/2026:3:30:pm", format.DateAMPM(time.Date(2026, 10, 5, 15, 30, 0, 0, loc)))

	parsed, err := format.ParseDateTimeInput("2026-10-05T00:07", loc)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))

	_, err = format.ParseDateTimeInput("05/10/2026", loc)
	assert.Error(t, err)
}

func TestKhmer(t *testing.T) {
	assert.Equal(t, "១២៣", format.KhmerDigits("123"))
	assert.Equal(t, "$១.៥", format.KhmerDigits("$1.5"))
	assert.Equal(t, "តុលា", format.KhmerMonth(time.October))
	assert.Equal(t, "១៥ - តុលា", format.KhmerDayMonth(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))
}
