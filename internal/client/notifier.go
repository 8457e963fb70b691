package client

import "tuniskill/internal/logger"

// Notifier surfaces user-facing messages, the terminal counterpart of a snackbar.
type Notifier interface {
	Success(message string)
	Error(message string, err error)
}

// LogNotifier writes notifications to the structured logger.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier backed by log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info(message)
}

func (n *LogNotifier) Error(message string, err error) {
	n.log.Error(message, "error", err)
}

type nopNotifier struct{}

func (nopNotifier) Success(string)      {}
func (nopNotifier) Error(string, error) {}
