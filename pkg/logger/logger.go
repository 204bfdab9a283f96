package logger

import (
	"bytes"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет логи в буфер, чтобы потом показать их на странице.
// Дополнительно можно продублировать вывод в любой io.Writer.
type ZapLogger struct {
	log    *zap.Logger
	mu     *sync.Mutex
	logBuf *bytes.Buffer
}

// New - логгер уровня Debug, пишущий только в буфер.
func New() *ZapLogger {
	return NewWithLevel(zapcore.DebugLevel)
}

// NewWithLevel - логгер заданного уровня. Если переданы writers,
// вывод дублируется в них.
func NewWithLevel(level zapcore.Level, writers ...io.Writer) *ZapLogger {
	logBuf := &bytes.Buffer{}
	mu := &sync.Mutex{}

	encoder := zapcore.NewConsoleEncoder(encoderConfig())

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(&lockedWriter{mu: mu, w: logBuf}), level),
	}
	for _, w := range writers {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(w), level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    log,
		mu:     mu,
		logBuf: logBuf,
	}
}

// Nop - логгер, который ничего не пишет.
func Nop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		mu:     &sync.Mutex{},
		logBuf: &bytes.Buffer{},
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelColor(level) + level.String() + resetColor)
}

// With возвращает дочерний логгер с постоянными полями и тем же буфером.
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{
		log:    z.log.With(fields...),
		mu:     z.mu,
		logBuf: z.logBuf,
	}
}

// Enabled - включен ли уровень. Нужен, чтобы не собирать дорогие поля зря.
func (z *ZapLogger) Enabled(level zapcore.Level) bool {
	return z.log.Core().Enabled(level)
}

// Text - накопленные логи как есть (с ANSI-кодами).
func (z *ZapLogger) Text() string {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.logBuf.String()
}

// HTML - накопленные логи, готовые для вставки в страницу.
func (z *ZapLogger) HTML() string {
	return ansiToHTML(z.Text())
}

func (z *ZapLogger) ClearLogs() {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logBuf.Reset()
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
