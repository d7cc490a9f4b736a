package database

import (
	"context"
	"time"

	"github.com/go-pathway/pathway/pkg/log"
	"gorm.io/gorm/logger"
)

// gormLogger forwards GORM statement logging to the application logger.
type gormLogger struct {
	conf logger.Config
}

func NewGormLogger(conf logger.Config) logger.Interface {
	return &gormLogger{conf: conf}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.conf.LogLevel = level
	return &newLogger
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.conf.LogLevel >= logger.Info {
		log.Infof(msg, data...)
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.conf.LogLevel >= logger.Warn {
		log.Warnf(msg, data...)
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.conf.LogLevel >= logger.Error {
		log.Errorf(msg, data...)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.conf.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !l.conf.IgnoreRecordNotFoundError:
		log.Errorw("sql failed", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
	case elapsed > l.conf.SlowThreshold && l.conf.SlowThreshold != 0:
		log.Warnw("slow sql", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.conf.LogLevel >= logger.Info:
		log.Debugw("sql", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
