package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type stdoutWriteSyncer struct {
}

func (s stdoutWriteSyncer) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

func (s stdoutWriteSyncer) Sync() error {
	return nil
}

var levelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// 未知级别按info处理
func getLoggerLevel(lvl string) zapcore.Level {
	if level, ok := levelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

func TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

// NewZapLogger 创建写入滚动日志文件的logger，enableLogStdout为true时同时输出到标准输出
func NewZapLogger(name string, path string, level string, maxLogfileSize int, maxAge int, enableLogStdout bool) *zap.Logger {
	syncWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:  filepath.Join(path, name),
		MaxSize:   maxLogfileSize,
		MaxAge:    maxAge,
		LocalTime: true,
	})

	var w zapcore.WriteSyncer
	if enableLogStdout {
		w = zap.CombineWriteSyncers(syncWriter, stdoutWriteSyncer{})
	} else {
		w = zap.CombineWriteSyncers(syncWriter)
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), w, zap.NewAtomicLevelAt(getLoggerLevel(level)))

	return zap.New(core, zap.AddCaller())
}

var initOnce sync.Once
var zapLogger *zap.Logger
var sugaredLogger *zap.SugaredLogger

// InitLogger 设置进程级logger，只有第一次调用生效
func InitLogger(logger *zap.Logger) {
	initOnce.Do(func() {
		zapLogger = logger
		sugaredLogger = zapLogger.Sugar()
	})
}

// GetLogger 未初始化时返回no-op logger
func GetLogger() *zap.Logger {
	if zapLogger == nil {
		return zap.NewNop()
	}
	return zapLogger
}

func GetSugar() *zap.SugaredLogger {
	if sugaredLogger == nil {
		return zap.NewNop().Sugar()
	}
	return sugaredLogger
}

// OrNop 组件构造时使用：传入nil则返回no-op logger
func OrNop(lg *zap.Logger) *zap.Logger {
	if lg == nil {
		return zap.NewNop()
	}
	return lg
}
