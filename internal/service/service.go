package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/repository"
)

type Service struct {
	Ingress      IngressService
	CallLedger   CallLedgerService
	Conversation ConversationService
	Lead         LeadService
	Sweeper      SweeperService
	Health       HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	dispatcher := NewGatewayDispatcher(&cfg.Gateway, redisClient, logger)
	analyzer := NewNLUClient(&cfg.NLU, logger)
	validator := NewAreaValidator(&cfg.ServiceArea, logger)

	leadService := NewLeadService(repo, validator, logger)
	conversationService := NewConversationService(cfg, repo, dispatcher, analyzer, leadService, logger)
	ledgerService := NewCallLedgerService(repo, conversationService, logger)
	ingressService := NewIngressService(cfg, redisClient, ledgerService, conversationService, logger)
	sweeperService := NewSweeperService(cfg, conversationService, logger)
	healthService := NewHealthService(repo, redisClient, sweeperService, dispatcher)

	return &Service{
		Ingress:      ingressService,
		CallLedger:   ledgerService,
		Conversation: conversationService,
		Lead:         leadService,
		Sweeper:      sweeperService,
		Health:       healthService,
	}
}
