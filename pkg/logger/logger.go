package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config del logger. Level vacío o desconocido cae al nivel por defecto del
// entorno: debug en development, info en el resto.
type Config struct {
	Env   string
	Level string // debug, info, warn, error
}

// Logger envoltorio fino sobre zerolog; se inyecta en handlers y usecases.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del servicio: consola legible en development,
// JSON en los demás entornos, siempre con timestamp. Reapunta además el
// logger global de zerolog para las librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	dev := cfg.Env == "development"

	var w io.Writer = os.Stdout
	if dev {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(levelFor(cfg.Level, dev)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func levelFor(s string, dev bool) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	if dev {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Niveles delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
