// Package logconfig routes the go-ctx logger to a rotating file when
// LOG_FILE_PATH is set. Import it for side effects only.
package logconfig

import (
	"github.com/sedmess/go-ctx/ctx"
	"github.com/sedmess/go-ctx/logger"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFilePathKey   = "LOG_FILE_PATH"
	logMaxSizeKey    = "LOG_FILE_MAX_SIZE"
	logMaxBackupsKey = "LOG_FILE_MAX_BACKUPS"
	logMaxAgeKey     = "LOG_FILE_MAX_AGE"
	logCompressKey   = "LOG_FILE_COMPRESS"
)

func init() {
	logFilePathVar := ctx.GetEnv(logFilePathKey)
	if !logFilePathVar.IsPresent() {
		return
	}
	logger.SetWriter(&lumberjack.Logger{
		Filename:   logFilePathVar.AsString(),
		MaxSize:    ctx.GetEnv(logMaxSizeKey).AsIntDefault(10),
		MaxBackups: ctx.GetEnv(logMaxBackupsKey).AsIntDefault(3),
		MaxAge:     ctx.GetEnv(logMaxAgeKey).AsIntDefault(30),
		Compress:   ctx.GetEnv(logCompressKey).AsBoolDefault(true),
	})
}

const INIT = ""
