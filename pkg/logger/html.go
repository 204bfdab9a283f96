package logger

import (
	"html"
	"regexp"
	"strings"

	"go.uber.org/zap/zapcore"
)

const resetColor = "\033[0m"

var ansiCode = regexp.MustCompile(`\033\[(\d+)m`)

// ANSI-код -> цвет CSS
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

func levelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "\033[36m"
	case zapcore.InfoLevel:
		return "\033[32m"
	case zapcore.WarnLevel:
		return "\033[33m"
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return "\033[31m"
	default:
		return resetColor
	}
}

// ansiToHTML заменяет ANSI-коды цветов на span с inline-стилями.
// Текст между кодами экранируется.
func ansiToHTML(input string) string {
	var result strings.Builder
	result.WriteString("<pre>")

	open := false
	last := 0
	for _, m := range ansiCode.FindAllStringSubmatchIndex(input, -1) {
		result.WriteString(html.EscapeString(input[last:m[0]]))
		last = m[1]

		code := input[m[2]:m[3]]
		if open {
			result.WriteString("</span>")
			open = false
		}
		if color, ok := colorMap[code]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}
	}
	result.WriteString(html.EscapeString(input[last:]))
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")
	return result.String()
}
