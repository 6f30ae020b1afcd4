package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/scheduler"
)

type sweeperService struct {
	sweeper       *scheduler.Sweeper
	conversations ConversationService
	logger        *zap.Logger
}

func NewSweeperService(
	cfg *config.Config,
	conversations ConversationService,
	logger *zap.Logger,
) SweeperService {
	interval := time.Duration(cfg.Orchestrator.SweepIntervalMinutes) * time.Minute

	svc := &sweeperService{
		conversations: conversations,
		logger:        logger,
	}

	svc.sweeper = scheduler.NewSweeper(logger, interval, svc.executeSweep)
	return svc
}

func (s *sweeperService) Start() error {
	ctx := context.Background()
	return s.sweeper.Start(ctx)
}

func (s *sweeperService) Stop() error {
	return s.sweeper.Stop()
}

func (s *sweeperService) IsRunning() bool {
	return s.sweeper.IsRunning()
}

func (s *sweeperService) executeSweep(ctx context.Context) error {
	return s.conversations.SweepOnce(ctx)
}
