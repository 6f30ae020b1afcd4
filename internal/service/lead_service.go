package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/repository"
)

// ErrLeadNotFound is returned when no lead matches the lookup.
var ErrLeadNotFound = errors.New("lead not found")

type leadService struct {
	repo      repository.Repository
	validator AreaValidator
	logger    *zap.Logger
}

func NewLeadService(repo repository.Repository, validator AreaValidator, logger *zap.Logger) LeadService {
	return &leadService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// EnsureLead creates the lead for a conversation at most once. Concurrent
// calls converge on the single record through the conversation_id unique
// constraint.
func (s *leadService) EnsureLead(ctx context.Context, conv *models.Conversation) (*models.Lead, error) {
	lead := &models.Lead{
		ID:             uuid.New().String(),
		TenantID:       conv.TenantID,
		ConversationID: conv.ID,
		ProviderCallID: conv.ProviderCallID,
		CustomerNumber: conv.CustomerNumber,
		Status:         models.LeadStatusNew,
	}

	ensured, err := s.repo.Lead().Ensure(lead)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure lead: %w", err)
	}

	return ensured, nil
}

func (s *leadService) Get(ctx context.Context, leadID string) (*models.Lead, error) {
	lead, err := s.repo.Lead().GetByID(leadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return nil, ErrLeadNotFound
	}
	return lead, err
}

func (s *leadService) UpdateStatus(ctx context.Context, leadID string, status models.LeadStatus, notes *string) error {
	switch status {
	case models.LeadStatusNew, models.LeadStatusQualified, models.LeadStatusScheduled,
		models.LeadStatusCompleted, models.LeadStatusLost:
	default:
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown lead status %q", status)}
	}

	err := s.repo.Lead().UpdateStatus(leadID, status, notes)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return ErrLeadNotFound
	}
	return err
}

// UpdateDetails applies operator edits. When an address is provided the
// service-area validator tags the lead; validator failures only skip the tag.
func (s *leadService) UpdateDetails(ctx context.Context, leadID string, patch LeadDetailsPatch) error {
	lead, err := s.repo.Lead().GetByID(leadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return ErrLeadNotFound
	}
	if err != nil {
		return err
	}

	var inServiceArea *bool
	if patch.CustomerAddress != nil && *patch.CustomerAddress != "" && s.validator != nil {
		valid, err := s.validator.ValidateServiceArea(ctx, lead.TenantID, *patch.CustomerAddress)
		if err != nil {
			s.logger.Warn("Service-area validation failed, lead left untagged",
				zap.String("leadID", leadID),
				zap.Error(err))
		} else {
			inServiceArea = &valid
		}
	}

	err = s.repo.Lead().UpdateDetails(leadID, patch.CustomerName, patch.CustomerAddress,
		patch.ProblemDescription, patch.Urgency, patch.EstimatedValue, inServiceArea)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return ErrLeadNotFound
	}
	return err
}

// Finalize stamps the conversation outcome on the lead. A completed
// conversation marks the lead completed; an abandoned one marks it lost.
// Leads that already reached a terminal status are left as-is.
func (s *leadService) Finalize(ctx context.Context, conversationID string, status models.ConversationStatus) error {
	lead, err := s.repo.Lead().GetByConversationID(conversationID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return ErrLeadNotFound
	}
	if err != nil {
		return err
	}

	if lead.Status == models.LeadStatusCompleted || lead.Status == models.LeadStatusLost {
		return nil
	}

	final := models.LeadStatusCompleted
	if status == models.ConversationAbandoned {
		final = models.LeadStatusLost
	}

	return s.repo.Lead().UpdateStatus(lead.ID, final, nil)
}
