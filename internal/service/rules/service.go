package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/rule"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
)

// Service сервис каталога правил ценообразования
type Service struct {
	ruleRepo RuleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// List получает каталог правил в порядке применения
func (s *Service) List(ctx context.Context) (*models.RuleListResponse, error) {
	s.logger.Info("List: fetching pricing rules catalog")

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d pricing rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// Create создает новое правило ценообразования
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating pricing rule name=%s, type=%s", req.Name, req.Type)

	if req.Name == "" {
		s.logger.Warn("Create: empty rule name")
		return nil, fmt.Errorf("%w: rule name is required", ErrInvalidInput)
	}

	params, err := buildRuleParams(req.Type, req.Payload)
	if err != nil {
		s.logger.Warn("Create: invalid rule payload: %v", err)
		return nil, err
	}

	rule := &domain.PricingRule{
		Name:   req.Name,
		Active: req.Active,
		Params: params,
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created pricing rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// Update обновляет правило
// Категория правила фиксирована при создании и не меняется
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: updating pricing rule id=%d", id)

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: pricing rule id=%d not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			s.logger.Warn("Update: empty name for rule id=%d", id)
			return nil, fmt.Errorf("%w: rule name cannot be empty", ErrInvalidInput)
		}
		rule.Name = *req.Name
	}

	if req.Active != nil {
		rule.Active = *req.Active
	}

	if req.Payload != nil {
		params, err := buildRuleParams(string(rule.Type()), mergePayload(rule.Params, *req.Payload))
		if err != nil {
			s.logger.Warn("Update: invalid rule payload for id=%d: %v", id, err)
			return nil, err
		}
		rule.Params = params
	}

	updated, err := s.ruleRepo.Update(ctx, id, rule)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: pricing rule id=%d not found during update", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated pricing rule id=%d", id)
	return models.FromDomainRule(updated), nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting pricing rule id=%d", id)

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: pricing rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted pricing rule id=%d", id)
	return nil
}
