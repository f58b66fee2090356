package observe

import (
	"fmt"

	"go.uber.org/zap"
)

// LogObserver writes registry events to a zap logger.
//
// Inserts, removals and transfers are logged at debug level; rejections at warn.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver returns an Observer logging to l. A nil logger discards events.
func NewLogObserver(l *zap.Logger) *LogObserver {
	if l == nil {
		l = zap.NewNop()
	}
	return &LogObserver{logger: l.Named("nameref")}
}

func (o *LogObserver) OnInsert(ev Event) {
	o.logger.Debug("name attached", zap.String("name", ev.Name), handleField("handle", ev.Handle))
}

func (o *LogObserver) OnRemove(ev Event) {
	o.logger.Debug("name detached", zap.String("name", ev.Name), handleField("handle", ev.Previous))
}

func (o *LogObserver) OnTransfer(ev Event) {
	o.logger.Debug("name transferred",
		zap.String("name", ev.Name),
		handleField("from", ev.Previous),
		handleField("to", ev.Handle),
	)
}

func (o *LogObserver) OnReject(ev Event) {
	o.logger.Warn("registry operation rejected", zap.String("name", ev.Name), zap.Error(ev.Err))
}

func handleField(key string, h any) zap.Field {
	if h == nil {
		return zap.Skip()
	}
	return zap.String(key, typeName(h))
}

func typeName(h any) string {
	if s, ok := h.(fmt.Stringer); ok {
		return fmt.Sprintf("%T(%s)", h, s.String())
	}
	return fmt.Sprintf("%T", h)
}
