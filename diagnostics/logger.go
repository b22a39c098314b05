package diagnostics

import "fmt"

// Logger receives one pre-formatted summary line per estimator call.
// *logrus.Logger and *logrus.Entry satisfy it. A nil Logger disables logging.
type Logger interface {
	Info(args ...interface{})
}

func logf(l Logger, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Info(fmt.Sprintf(format, args...))
}
