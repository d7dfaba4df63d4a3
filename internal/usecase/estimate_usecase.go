package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/entitlement"
	"bidright/internal/domain/pricing"
	"bidright/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidSelection   = pricing.ErrInvalidSelection
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrInvalidEstimateID  = errors.New("invalid estimate id")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrSavedEstimateLimit = errors.New("saved estimate limit reached")
)

// IEstimateUseCase exposes estimate calculation and the saved-estimates list.
//
//   - POST /v1/estimates           => Calculate()
//   - POST /v1/estimates/saved     => Save()
//   - GET/DELETE saved estimates   => ListSaved(), GetSaved(), DeleteSaved()
type IEstimateUseCase interface {
	Calculate(ctx context.Context, in entities.EstimateInput) (entities.Estimate, error)
	Save(ctx context.Context, userID string, in entities.EstimateInput) (entities.Estimate, error)
	ListSaved(ctx context.Context, userID string) ([]entities.Estimate, error)
	GetSaved(ctx context.Context, userID, id string) (entities.Estimate, error)
	DeleteSaved(ctx context.Context, userID, id string) error
	Catalog() *entities.RateCatalog
}

type EstimateUseCase struct {
	calc      *pricing.Calculator
	repo      interfaces.IEstimateRepository
	gate      featureGate
	freeLimit int
	log       *zap.Logger
	events    interfaces.IEventRecorder
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the calculator to saved-estimate storage. freeLimit
// caps saved estimates for plans without unlimited saves.
func NewEstimateUseCase(calc *pricing.Calculator, repo interfaces.IEstimateRepository, plans interfaces.IPlanProvider, freeLimit int, log *zap.Logger, events interfaces.IEventRecorder) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if events == nil {
		events = interfaces.NopEventRecorder{}
	}
	log = log.Named("estimate")
	return &EstimateUseCase{
		calc:      calc,
		repo:      repo,
		gate:      featureGate{plans: plans, events: events, log: log},
		freeLimit: freeLimit,
		log:       log,
		events:    events,
	}
}

func (u *EstimateUseCase) Catalog() *entities.RateCatalog {
	return u.calc.Catalog()
}

func (u *EstimateUseCase) Calculate(ctx context.Context, in entities.EstimateInput) (entities.Estimate, error) {
	est, err := u.calc.Calculate(in)
	if err != nil {
		u.log.Debug("calculate rejected", zap.String("industry", in.IndustryID), zap.String("project_type", in.ProjectTypeID), zap.Error(err))
		return entities.Estimate{}, err
	}
	u.events.EstimateCalculated(est.Input.IndustryID, est.Input.Complexity)
	return est, nil
}

func (u *EstimateUseCase) Save(ctx context.Context, userID string, in entities.EstimateInput) (entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Estimate{}, ErrInvalidUserID
	}

	est, err := u.Calculate(ctx, in)
	if err != nil {
		return entities.Estimate{}, err
	}

	plan, err := u.gate.plan(ctx, userID)
	if err != nil {
		return entities.Estimate{}, err
	}
	saved, err := u.repo.CountByUserID(ctx, userID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !entitlement.CanSaveMore(plan, saved, u.freeLimit) {
		u.events.FeatureDenied(string(entities.FeatureSaveEstimatesUnlimited))
		u.log.Info("saved estimate limit reached", zap.String("user_id", userID), zap.Int("saved", saved), zap.Int("limit", u.freeLimit))
		return entities.Estimate{}, fmt.Errorf("%w: %d of %d", ErrSavedEstimateLimit, saved, u.freeLimit)
	}

	est.UserID = userID
	created, err := u.repo.Create(ctx, est)
	if err != nil {
		u.log.Error("save estimate failed", zap.String("user_id", userID), zap.Error(err))
		return entities.Estimate{}, err
	}
	u.events.EstimateSaved()
	u.log.Info("estimate saved", zap.String("user_id", userID), zap.String("estimate_id", created.ID))
	return created, nil
}

func (u *EstimateUseCase) ListSaved(ctx context.Context, userID string) ([]entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	list, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entities.Estimate{}
	}
	return list, nil
}

func (u *EstimateUseCase) GetSaved(ctx context.Context, userID, id string) (entities.Estimate, error) {
	return getSavedEstimate(ctx, u.repo, userID, id)
}

func (u *EstimateUseCase) DeleteSaved(ctx context.Context, userID, id string) error {
	userID, id = strings.TrimSpace(userID), strings.TrimSpace(id)
	if userID == "" {
		return ErrInvalidUserID
	}
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	u.log.Info("estimate deleted", zap.String("user_id", userID), zap.String("estimate_id", id))
	return nil
}

func getSavedEstimate(ctx context.Context, repo interfaces.IEstimateRepository, userID, id string) (entities.Estimate, error) {
	userID, id = strings.TrimSpace(userID), strings.TrimSpace(id)
	if userID == "" {
		return entities.Estimate{}, ErrInvalidUserID
	}
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
