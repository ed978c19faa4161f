package app

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/config"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/rs/zerolog"
	"time"
)

type NameConflictAuditHandler interface {
	Execute(ctx context.Context) ([]repositories.NameConflictRow, error)
}

type NameConflictAuditProcess struct {
	handler NameConflictAuditHandler
	config  config.Process
	logger  *zerolog.Logger
}

func NewNameConflictAuditProcess(h NameConflictAuditHandler, cfg config.Process) *NameConflictAuditProcess {
	l := log.GetLogger()
	return &NameConflictAuditProcess{handler: h, config: cfg, logger: &l}
}

// Run audits once immediately and then every configured interval until ctx is done.
func (p *NameConflictAuditProcess) Run(ctx context.Context) error {
	minutes, err := p.config.IntervalMinutes()
	if err != nil {
		return err
	}
	return p.run(ctx, time.Duration(minutes)*time.Minute)
}

func (p *NameConflictAuditProcess) run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.audit(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.audit(ctx)
		}
	}
}

// audit errors are logged by the handler; the process keeps ticking.
func (p *NameConflictAuditProcess) audit(ctx context.Context) {
	rows, err := p.handler.Execute(ctx)
	if err != nil {
		return
	}
	p.logger.Info().Int("conflicts", len(rows)).Msg("encounter type name audit finished")
}
