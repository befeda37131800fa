package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
	"golang.org/x/term"
)

// newLogger logs to w, as text on a terminal and JSON otherwise, and
// optionally to the systemd journal as well.
func newLogger(w io.Writer, verbose bool, journal bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var terminal slog.Handler
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		terminal = slog.NewTextHandler(w, opts)
	} else {
		terminal = slog.NewJSONHandler(w, opts)
	}

	handlers := []slog.Handler{terminal}

	if journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			slog.New(terminal).Warn("systemd journal unavailable", "error", err)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// toJournalKey maps an attribute key to a valid journal field name.
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}
