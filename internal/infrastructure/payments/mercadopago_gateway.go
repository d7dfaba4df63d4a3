package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bidright/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges subscription checkouts through Mercado Pago.
// In mock mode every payment is approved locally without calling the provider.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("payment_gateway")

	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Error("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("sdk config failed", zap.Error(err))
		return nil, err
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("payment created", zap.Any("provider_payment_id", resp.ID), zap.String("provider_status", resp.Status))

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	ts := g.now().UTC()
	id := strconv.FormatInt(ts.UnixNano(), 10)
	stamp := ts.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.log.Info("mock payment approved", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
