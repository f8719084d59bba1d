// MODUL: logutil
// ZWECK: Konstruktion des slog-Loggers fuer Server und CLI
// INPUT: io.Writer, slog.Level
// OUTPUT: *slog.Logger mit Quellpfad-Kuerzung
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: log/slog (nur Standardbibliothek)
// HINWEISE: Bei Debug-Level werden Quelldatei und Zeile mitgeloggt

package logutil

import (
	"io"
	"log/slog"
	"path/filepath"
)

// NewLogger erstellt einen Logger mit gegebenem Level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}
