package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/domain/pricing"
	"studio_interiors/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidEstimateTitle    = errors.New("invalid estimate title")
	ErrInvalidStatusTransition = errors.New("invalid estimate status transition")
	ErrEstimateFinalized       = errors.New("estimate already approved or rejected")
	ErrEstimateIsTemplate      = errors.New("operation not allowed on a template")
)

// CreateEstimateInput carries everything needed to price and persist a new
// draft: caller metadata plus the scope the calculator consumes.
type CreateEstimateInput struct {
	Title                string
	ClientID             string
	ProjectID            string
	Scope                entities.Scope
	MilestonePercentages []float64
}

// IEstimateUseCase exposes the estimate lifecycle.
//
// Derived fields (line items, totals, milestones) only ever change through
// CreateEstimate, CreateFromTemplate or RecalculateEstimate; everything else
// is an explicit status transition.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, input CreateEstimateInput) (entities.Estimate, error)
	SendEstimate(ctx context.Context, id string) (entities.Estimate, error)
	ApproveEstimate(ctx context.Context, id string) (entities.Estimate, error)
	RejectEstimate(ctx context.Context, id string) (entities.Estimate, error)
	RecalculateEstimate(ctx context.Context, id string) (entities.Estimate, error)
	SaveAsTemplate(ctx context.Context, id, title string) (entities.Estimate, error)
	CreateFromTemplate(ctx context.Context, templateID string, input CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
}

type EstimateUseCase struct {
	repo       interfaces.IEstimateRepository
	configRepo interfaces.IRateConfigRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, configRepo interfaces.IRateConfigRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, configRepo: configRepo}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, input CreateEstimateInput) (entities.Estimate, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return entities.Estimate{}, ErrInvalidEstimateTitle
	}

	percentages := input.MilestonePercentages
	if percentages == nil {
		percentages = pricing.DefaultMilestonePercentages
	}

	snapshot, err := u.loadSnapshot(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	breakdown, err := pricing.Compute(input.Scope, snapshot, percentages)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:                   uuid.NewString(),
		Title:                input.Title,
		ClientID:             strings.TrimSpace(input.ClientID),
		ProjectID:            strings.TrimSpace(input.ProjectID),
		Scope:                input.Scope.Clone(),
		LineItems:            breakdown.LineItems,
		Subtotal:             breakdown.Subtotal,
		GSTAmount:            breakdown.GSTAmount,
		Total:                breakdown.Total,
		MilestonePercentages: append([]float64(nil), percentages...),
		Milestones:           breakdown.Milestones,
		Status:               entities.EstimateStatusDraft,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) SendEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusSent)
}

func (u *EstimateUseCase) ApproveEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) RejectEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusRejected)
}

// allowedTransitions encodes the quote lifecycle: a draft is sent to the
// client, a sent estimate is approved or rejected. Templates never move.
var allowedTransitions = map[entities.EstimateStatus][]entities.EstimateStatus{
	entities.EstimateStatusDraft: {entities.EstimateStatusSent},
	entities.EstimateStatusSent:  {entities.EstimateStatusApproved, entities.EstimateStatusRejected},
}

func transitionAllowed(from, to entities.EstimateStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (u *EstimateUseCase) transition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.IsTemplate {
		return entities.Estimate{}, ErrEstimateIsTemplate
	}
	if !transitionAllowed(e.Status, to) {
		return entities.Estimate{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, e.Status, to)
	}

	updated, err := u.repo.UpdateStatusByID(ctx, e.ID, to)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// RecalculateEstimate reprices the stored scope against the currently active
// configs and replaces every derived field. Approved and rejected estimates
// are frozen; the client already saw those numbers.
func (u *EstimateUseCase) RecalculateEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.IsTemplate {
		return entities.Estimate{}, ErrEstimateIsTemplate
	}
	if e.Status != entities.EstimateStatusDraft && e.Status != entities.EstimateStatusSent {
		return entities.Estimate{}, ErrEstimateFinalized
	}

	snapshot, err := u.loadSnapshot(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	breakdown, err := pricing.Compute(e.Scope, snapshot, e.MilestonePercentages)
	if err != nil {
		return entities.Estimate{}, err
	}

	e.LineItems = breakdown.LineItems
	e.Subtotal = breakdown.Subtotal
	e.GSTAmount = breakdown.GSTAmount
	e.Total = breakdown.Total
	e.Milestones = breakdown.Milestones
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// SaveAsTemplate snapshots an estimate's scope as a reusable blueprint. The
// template carries no derived pricing fields: a template total is stale by
// definition and must never be presented as a quote.
func (u *EstimateUseCase) SaveAsTemplate(ctx context.Context, id, title string) (entities.Estimate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Estimate{}, ErrInvalidEstimateTitle
	}

	source, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	template := entities.Estimate{
		ID:                   uuid.NewString(),
		Title:                title,
		Scope:                source.Scope.Clone(),
		MilestonePercentages: append([]float64(nil), source.MilestonePercentages...),
		Status:               entities.EstimateStatusTemplate,
		IsTemplate:           true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return u.repo.Create(ctx, template)
}

// CreateFromTemplate instantiates a template's scope and prices it against
// the live configs. The input's scope is ignored; its metadata (title,
// client/project linkage, milestone split) binds the new draft.
func (u *EstimateUseCase) CreateFromTemplate(ctx context.Context, templateID string, input CreateEstimateInput) (entities.Estimate, error) {
	template, err := u.GetByID(ctx, templateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	scope, err := pricing.InstantiateFromTemplate(template)
	if err != nil {
		return entities.Estimate{}, err
	}

	input.Scope = scope
	if input.MilestonePercentages == nil && template.MilestonePercentages != nil {
		input.MilestonePercentages = append([]float64(nil), template.MilestonePercentages...)
	}
	return u.CreateEstimate(ctx, input)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, errors.New("invalid project id")
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// loadSnapshot fetches every active config type and builds the immutable view
// a single calculation runs against. This is the only step that touches
// storage; the computation itself never blocks.
func (u *EstimateUseCase) loadSnapshot(ctx context.Context) (pricing.Snapshot, error) {
	var all []entities.RateConfig
	for _, ct := range []entities.ConfigType{
		entities.ConfigTypePricing,
		entities.ConfigTypeRoomType,
		entities.ConfigTypeService,
	} {
		configs, err := u.configRepo.GetActiveByType(ctx, ct)
		if err != nil {
			return pricing.Snapshot{}, err
		}
		all = append(all, configs...)
	}
	return pricing.NewSnapshot(all), nil
}
