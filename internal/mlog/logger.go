package mlog

import (
	"bytes"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/IrineSistiana/dnscodec/internal/delaywriter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// Environment switches of the process logger.
const (
	EnvJSON     = "DNSCODEC_JSONLOGGER"
	EnvBuffered = "DNSCODEC_BUFFERLOGGER"
)

// bufferedOpts lets occasional entries through at once and buffers
// bursts.
var bufferedOpts = delaywriter.Opts{
	BufSize:     4096,
	Delay:       time.Millisecond * 10,
	DirectRate:  rate.Every(time.Millisecond * 100),
	DirectBurst: 8,
}

var (
	lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	l   = newLogger(os.Stderr, envBool(EnvJSON), envBool(EnvBuffered))
	nop = zap.NewNop()
)

func init() {
	redirectStdLog(l)
}

func envBool(k string) bool {
	ok, _ := strconv.ParseBool(os.Getenv(k))
	return ok
}

func newLogger(w io.Writer, json, buffered bool) *zap.Logger {
	var out zapcore.WriteSyncer
	if buffered {
		out = delaywriter.New(w, bufferedOpts)
	} else {
		out = zapcore.Lock(zapcore.AddSync(w))
	}

	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, out, lvl))
}

func redirectStdLog(to *zap.Logger) {
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(WriteToLogger(to, zap.InfoLevel, "std log", "data"))
}

// L returns the process logger.
func L() *zap.Logger {
	return l
}

func SetLevel(l zapcore.Level) {
	lvl.SetLevel(l)
}

func Lvl() zapcore.Level {
	return lvl.Level()
}

func Nop() *zap.Logger {
	return nop
}

// Sync flushes buffered log entries.
func Sync() error {
	return l.Sync()
}

// WriteToLogger returns a writer that logs every write as one entry,
// with the written bytes under key.
func WriteToLogger(to *zap.Logger, lvl zapcore.Level, msg string, key string) io.Writer {
	to = to.WithOptions(zap.AddCallerSkip(3)) // log.Logger's frames, same as zap.RedirectStdLog()
	return &stdLogWriter{logger: to, lvl: lvl, msg: msg, key: key}
}

type stdLogWriter struct {
	logger *zap.Logger
	lvl    zapcore.Level
	msg    string
	key    string
}

func (w *stdLogWriter) Write(b []byte) (int, error) {
	n := len(b)
	if ce := w.logger.Check(w.lvl, w.msg); ce != nil {
		ce.Write(zap.ByteString(w.key, bytes.TrimSpace(b)))
	}
	return n, nil
}
