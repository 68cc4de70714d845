package web

import (
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

func add(a, b int) int {
	return a + b
}

func sub(a, b int) int {
	return a - b
}

// returns 0 on a divide by 0
func div(a, b int) float32 {
	if b == 0 {
		return 0
	}
	return float32(a) / float32(b)
}

func percent(a, b int) int {
	if b == 0 {
		return 0
	}
	return int(float32(a) / float32(b) * 100)
}

func mod(a, b int) int {
	if b == 0 {
		return 0
	}
	return a % b
}

func humanTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"ToLower":    strings.ToLower,
		"Add":        add,
		"Sub":        sub,
		"Div":        div,
		"Percent":    percent,
		"Mod":        mod,
		"HumanTime":  humanTime,
		"Comma":      humanize.Comma,
		"StyleClass": StyleClass,
	}
}
