package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	cblog "github.com/charmbracelet/log"
)

// Logger embeds the Charm Logger and adds Printf.
type Logger struct{ *cblog.Logger }

// Printf routes printf-style logs through Infof.
func (l *Logger) Printf(format string, v ...interface{}) { l.Infof(format, v...) }

var (
	logger     *Logger
	initLogger sync.Once
)

// GetLogger returns the process-wide logger
func GetLogger() *Logger {
	initLogger.Do(func() {
		logger = &Logger{newBase(os.Stderr)}
	})
	return logger
}

func newBase(w io.Writer) *cblog.Logger {
	styles := cblog.DefaultStyles()
	styles.Levels[cblog.FatalLevel] = lipgloss.NewStyle().
		SetString(" FATAL").
		Foreground(lipgloss.Color("1"))
	styles.Levels[cblog.ErrorLevel] = lipgloss.NewStyle().
		SetString(" ERROR").
		Foreground(lipgloss.Color("9"))
	styles.Levels[cblog.WarnLevel] = lipgloss.NewStyle().
		SetString("  WARN").
		Foreground(lipgloss.Color("3"))
	styles.Levels[cblog.InfoLevel] = lipgloss.NewStyle().
		SetString("  INFO").
		Foreground(lipgloss.Color("2"))
	styles.Levels[cblog.DebugLevel] = lipgloss.NewStyle().
		SetString(" DEBUG").
		Foreground(lipgloss.Color("4"))

	base := cblog.New(w)
	base.SetStyles(styles)
	base.SetReportTimestamp(true)
	base.SetLevel(cblog.InfoLevel)
	base.SetPrefix("citron")
	return base
}

// SetLevel parses a level name ("debug", "info", "warn", "error") and applies
// it. Unknown names leave the level unchanged and return false.
func SetLevel(name string) bool {
	level, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return false
	}
	GetLogger().SetLevel(level)
	return true
}

// SetOutput redirects log output. The terminal front-end uses this to keep
// log lines from tearing the alt-screen.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// * Convenience wrappers

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Debug(msg, keyvals...) }
func Debugf(format string, v ...interface{})        { GetLogger().Logger.Debugf(format, v...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Info(msg, keyvals...) }
func Infof(format string, v ...interface{})         { GetLogger().Logger.Infof(format, v...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Warn(msg, keyvals...) }
func Warnf(format string, v ...interface{})         { GetLogger().Logger.Warnf(format, v...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Error(msg, keyvals...) }
func Errorf(format string, v ...interface{})        { GetLogger().Logger.Errorf(format, v...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Fatal(msg, keyvals...) }
func Fatalf(format string, v ...interface{})        { GetLogger().Logger.Fatalf(format, v...) }
