// Package logger configura o log estruturado (zerolog) usado pelos adaptadores e casos de uso.
// A saída para o operador continua no console (pterm); aqui ficam os registros de diagnóstico.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Output string `json:"output" yaml:"output" toml:"output"`
	Format string `json:"format" yaml:"format" toml:"format"`
}

// New builds a logger from config. Output is "stdout", "stderr" (default) or "discard";
// Format "console" switches to zerolog's human-readable writer.
func New(config Config) (zerolog.Logger, error) {
	var output io.Writer = os.Stderr

	switch strings.ToLower(config.Output) {
	case "stdout":
		output = os.Stdout
	case "discard", "none":
		output = io.Discard
	}

	if strings.EqualFold(config.Format, "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}
	}

	level := zerolog.InfoLevel
	if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(strings.ToLower(config.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}

// WithComponent tags every event of the returned logger with a component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
