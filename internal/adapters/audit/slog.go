// Package audit implements the audit-log collaborator on top of slog.
package audit

import (
	"log/slog"

	"github.com/luoyen/weibot/internal/ports"
)

type SlogAuditor struct {
	logger *slog.Logger
}

var _ ports.AuditLogger = (*SlogAuditor)(nil)

func NewSlogAuditor(logger *slog.Logger) *SlogAuditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAuditor{logger: logger}
}

func (a *SlogAuditor) Log(level ports.AuditLevel, message string) {
	switch level {
	case ports.AuditError:
		a.logger.Error(message)
	case ports.AuditWarning:
		a.logger.Warn(message)
	default:
		a.logger.Info(message)
	}
}
