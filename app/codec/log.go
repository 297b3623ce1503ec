package codec

import (
	"github.com/IrineSistiana/dnscodec/internal/rdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func inlineRecord(rd rdata.RecordData) zap.Field {
	return zap.Inline(recordLogObj{rd: rd})
}

type recordLogObj struct {
	rd rdata.RecordData
}

func (o recordLogObj) MarshalLogObject(e zapcore.ObjectEncoder) error {
	e.AddString("rtype", o.rd.Rtype().String())
	e.AddString("rdata", o.rd.String())
	return nil
}

const (
	logComposeErr = "failed to compose record"
	logVerifyErr  = "record mismatch"
)
