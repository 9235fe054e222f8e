package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hako/durafmt"
)

// Colores de embed.
const (
	ColorBlue        = 0x3498DB
	ColorDarkGreen   = 0x1F8B4C
	ColorPurple      = 0x9B59B6
	ColorDarkPurple  = 0x71368A
	ColorDarkMagenta = 0xAD1457
	ColorRed         = 0xE74C3C
	ColorGreen       = 0x2ECC71
)

// maxFieldValue es el límite de Discord para el value de un field.
const maxFieldValue = 1024

// FormatNumber abrevia cantidades grandes: 1.23B, 12.3M, 1.5M, 25.4K.
// El redondeo es half-to-even sobre el entero, sin pasar por float; los
// ceros finales se recortan (1.00M -> 1M).
func FormatNumber(n int64) string {
	switch {
	case n > 1_000_000_000:
		return roundTo(n, 1_000_000_000, 2) + "B"
	case n > 10_000_000:
		return roundTo(n, 1_000_000, 1) + "M"
	case n > 1_000_000:
		return roundTo(n, 1_000_000, 2) + "M"
	case n > 10_000:
		return roundTo(n, 1_000, 1) + "K"
	}
	return strconv.FormatInt(n, 10)
}

// roundTo divide n (positivo) por unit con places decimales.
func roundTo(n, unit int64, places int) string {
	pow := int64(1)
	for i := 0; i < places; i++ {
		pow *= 10
	}
	step := unit / pow
	q, r := n/step, n%step
	if 2*r > step || (2*r == step && q%2 == 1) {
		q++
	}

	out := strconv.FormatInt(q/pow, 10)
	frac := fmt.Sprintf("%0*d", places, q%pow)
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	return out
}

// HumanizeDuration: hasta 3 unidades (semanas → minutos), sin las que valen cero.
func HumanizeDuration(d time.Duration) string {
	d = d.Truncate(time.Minute)
	if d <= 0 {
		return "0 minutes"
	}
	// durafmt separa con espacios: "2 weeks 1 day 3 hours"
	parts := strings.Fields(durafmt.Parse(d).LimitToUnit("weeks").LimitFirstN(3).String())
	units := make([]string, 0, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		units = append(units, parts[i]+" "+parts[i+1])
	}
	return strings.Join(units, ", ")
}

func truncateField(s string) string {
	if utf8.RuneCountInString(s) <= maxFieldValue {
		return s
	}
	r := []rune(s)
	return string(r[:maxFieldValue-1]) + "…"
}
