package log

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// WatermillAdapter routes watermill's internal logging into zap.
type WatermillAdapter struct {
	log    *otelzap.Logger
	fields watermill.LogFields
}

func NewWatermillAdapter(log *otelzap.Logger) watermill.LoggerAdapter {
	return &WatermillAdapter{log: log}
}

func (w *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	w.log.Error(msg, append(w.zapFields(fields), zap.Error(err))...)
}

func (w *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	w.log.Info(msg, w.zapFields(fields)...)
}

func (w *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	w.log.Debug(msg, w.zapFields(fields)...)
}

func (w *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	w.log.Debug(msg, w.zapFields(fields)...)
}

func (w *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{log: w.log, fields: w.fields.Add(fields)}
}

func (w *WatermillAdapter) zapFields(fields watermill.LogFields) []zap.Field {
	all := w.fields.Add(fields)
	out := make([]zap.Field, 0, len(all))
	for k, v := range all {
		out = append(out, zap.Any(k, v))
	}
	return out
}
