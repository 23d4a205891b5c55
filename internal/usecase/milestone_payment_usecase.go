package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase/interfaces"
	"time"
)

var (
	ErrMilestonePaymentNotFound       = errors.New("milestone payment not found")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidMilestoneIndex          = errors.New("invalid milestone index")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrEstimateNotApproved            = errors.New("estimate not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IMilestonePaymentUseCase collects one installment of an approved estimate.
//
// The amount charged is always the stored milestone amount; the caller's
// payload never overrides it.

type IMilestonePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, estimateID string, milestoneIndex int, payload json.RawMessage) (entities.MilestonePayment, error)
	GetByID(ctx context.Context, id string) (entities.MilestonePayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.MilestonePayment, error)
}

type MilestonePaymentUseCase struct {
	repo         interfaces.IMilestonePaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IMilestonePaymentUseCase = (*MilestonePaymentUseCase)(nil)

func NewMilestonePaymentUseCase(repo interfaces.IMilestonePaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *MilestonePaymentUseCase {
	return &MilestonePaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *MilestonePaymentUseCase) CreateAndApprove(ctx context.Context, estimateID string, milestoneIndex int, payload json.RawMessage) (entities.MilestonePayment, error) {
	log.Printf("[payment][usecase] create-and-approve start estimate_id=%q milestone=%d payload_len=%d", estimateID, milestoneIndex, len(payload))
	mockMode := isPaymentGatewayMockEnabled()

	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.MilestonePayment{}, ErrInvalidPaymentEstimateID
	}
	if milestoneIndex < 0 {
		return entities.MilestonePayment{}, ErrInvalidMilestoneIndex
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.MilestonePayment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.MilestonePayment{}, errors.New("payment gateway not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.MilestonePayment{}, err
	}
	if est.ID == "" {
		return entities.MilestonePayment{}, ErrEstimateNotFound
	}
	if est.IsTemplate {
		return entities.MilestonePayment{}, ErrEstimateIsTemplate
	}
	if est.Status != entities.EstimateStatusApproved {
		log.Printf("[payment][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.MilestonePayment{}, ErrEstimateNotApproved
	}
	if milestoneIndex >= len(est.Milestones) {
		return entities.MilestonePayment{}, ErrInvalidMilestoneIndex
	}
	amount := est.Milestones[milestoneIndex].Amount
	log.Printf("[payment][usecase] estimate loaded estimate_id=%s milestone=%d amount=%.2f", estimateID, milestoneIndex, amount)

	payload = enrichProviderPayload(payload, estimateID, milestoneIndex, amount, mockMode)

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerResp, err = mockProviderResponse(payload, estimateID, amount)
		if err != nil {
			return entities.MilestonePayment{}, err
		}
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			return entities.MilestonePayment{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success estimate_id=%s provider_payment_id=%s", estimateID, providerPaymentID)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.MilestonePayment{
		ID:                 providerPaymentID,
		EstimateID:         estimateID,
		MilestoneIndex:     milestoneIndex,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.MilestonePayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)
	return created, nil
}

func (u *MilestonePaymentUseCase) GetByID(ctx context.Context, id string) (entities.MilestonePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MilestonePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MilestonePayment{}, err
	}
	if p.ID == "" {
		return entities.MilestonePayment{}, ErrMilestonePaymentNotFound
	}
	return p, nil
}

func (u *MilestonePaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.MilestonePayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

// enrichProviderPayload ensures basic linkage with the estimate when the
// caller did not provide it. Mercado Pago uses external_reference to help
// reconcile events; the stored milestone amount is the source of truth for
// transaction_amount regardless of what the caller sent.
func enrichProviderPayload(payload json.RawMessage, estimateID string, milestoneIndex int, amount float64, mockMode bool) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		log.Printf("[payment][usecase] payload unmarshal failed estimate_id=%s err=%v", estimateID, err)
		return payload
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s#%d", estimateID, milestoneIndex)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Estimate %s milestone %d", estimateID, milestoneIndex+1)
	}
	reqMap["transaction_amount"] = amount
	if !mockMode {
		ensurePayerDefaults(reqMap)
	}

	if b, err := json.Marshal(reqMap); err == nil {
		return b
	}
	return payload
}

func mockProviderResponse(payload json.RawMessage, estimateID string, amount float64) (string, json.RawMessage, error) {
	log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway estimate_id=%s", estimateID)

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return id, b, nil
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, payer.email may be filled from env when missing.
	if s, ok := payer["email"].(string); !ok || strings.TrimSpace(s) == "" {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		}
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
