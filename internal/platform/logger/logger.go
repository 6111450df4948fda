package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields son los pares clave/valor de una línea de log.
type Fields = map[string]any

type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

// StdLogger es un logger minimalista sin deps externas.
// Escribe una línea por evento (text o json) sobre cualquier io.Writer.
type StdLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	level  Level
	format Format
	base   Fields
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Out permite redirigir la salida (tests). Default: os.Stdout.
	Out io.Writer
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &StdLogger{
		mu:     &sync.Mutex{},
		out:    out,
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=animal-facts (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *StdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}

	merged := make(Fields, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		merged[k] = v
	}

	// comparte mu/out/level/format; solo cambia el contexto base
	return &StdLogger{
		mu:     l.mu,
		out:    l.out,
		level:  l.level,
		format: l.format,
		base:   merged,
	}
}

func (l *StdLogger) Debug(msg string, fields Fields) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields Fields)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields Fields)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields Fields) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields Fields) {
	if lvl < l.level {
		return
	}

	entry := Fields{
		"ts":    time.Now().Format(time.RFC3339Nano),
		"level": lvl.String(),
		"msg":   msg,
	}
	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		entry[k] = v
	}

	var line string
	if l.format == FormatJSON {
		b, _ := json.Marshal(entry)
		line = string(b)
	} else {
		line = formatText(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

func formatText(m Fields) string {
	// Keys ordenadas para salida estable (útil en tests/logs).
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
