package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/fitadapt/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	// LogsPath is the log file; empty means stdout only
	LogsPath         string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned func closes the log file, if any.
func Setup(params LoggerSetupParams) (func(), error) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	if params.LogsPath == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return func() {}, nil
	}

	logsPath := params.LogsPath
	if !strings.HasSuffix(logsPath, ".log") {
		logsPath += ".log"
	}
	logsDir := filepath.Dir(logsPath)
	exists, err := pkg.PathExists(logsDir, true)
	if err != nil {
		return nil, fmt.Errorf("check logs dir: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("logs dir [%s] does not exist", logsDir)
	}

	fileLogger := &lumberjack.Logger{
		Filename:  logsPath,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	writers := []io.Writer{fileLogger}
	if params.LogToStdout {
		writers = append(writers, os.Stdout)
		logrus.Println("writing logs to file and STDOUT")
	}
	logrus.SetOutput(pkg.NewCombinedWriter(writers...))

	return func() {
		if err := fileLogger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %s\n", err)
		}
	}, nil
}

func setupSentry(params LoggerSetupParams) {
	if params.SentryDSN == "" {
		logrus.Warnln("sentry enabled, but SENTRY_DSN not set")
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 0.2,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}
	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up")
}

// GetLevel maps a config level name to a logrus level, falling back to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
