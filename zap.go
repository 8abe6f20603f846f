package fluent

import "go.uber.org/zap"

// NewZapObserver returns an Observer that writes every memo event to logger
// at debug level. Failed delegate calls are logged at warn level.
func NewZapObserver(logger *zap.Logger) Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ObserverFunc(func(eventData EventData) {
		fields := []zap.Field{
			zap.Stringer("event", eventData.Event),
		}
		if eventData.Name != "" {
			fields = append(fields, zap.String("memo", eventData.Name))
		}

		switch eventData.Event {
		case EventError:
			logger.Warn("memo delegate failed", append(fields, zap.Error(eventData.Err))...)
		default:
			logger.Debug("memo event", fields...)
		}
	})
}
