package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	appconfig "github.com/BruksfildServices01/tutor-scheduler/internal/config"
)

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	baseURL     string
}

func NewMercadoPagoGateway(cfg *appconfig.Config) (*MercadoPagoGateway, error) {
	mpCfg, err := mpconfig.New(cfg.MPAccessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		preferences: preference.NewClient(mpCfg),
		payments:    payment.NewClient(mpCfg),
		baseURL:     cfg.PublicBaseURL,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(
	ctx context.Context,
	bookingID uint,
	studentID uint,
	title string,
	amount float64,
	wasTrial bool,
) (*CheckoutSession, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: strconv.FormatUint(uint64(bookingID), 10),
		NotificationURL:   g.baseURL + "/webhooks/mercadopago",
		BackURLs: &preference.BackURLsRequest{
			Success: fmt.Sprintf("%s/bookings/%d?payment=success", g.baseURL, bookingID),
			Failure: fmt.Sprintf("%s/bookings/%d?payment=failure", g.baseURL, bookingID),
		},
		Metadata: map[string]any{
			"booking_id": bookingID,
			"student_id": studentID,
			"was_trial":  wasTrial,
		},
	}

	pref, err := g.preferences.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		Ref:         pref.ID,
		CheckoutURL: pref.InitPoint,
	}, nil
}

func (g *MercadoPagoGateway) FetchPayment(
	ctx context.Context,
	paymentID int,
) (*ConfirmedPayment, error) {

	p, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	bookingID, err := strconv.ParseUint(p.ExternalReference, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad external_reference %q: %w", p.ExternalReference, err)
	}

	return &ConfirmedPayment{
		Ref:       strconv.FormatInt(int64(p.ID), 10),
		BookingID: uint(bookingID),
		StudentID: metaUint(p.Metadata, "student_id"),
		WasTrial:  metaBool(p.Metadata, "was_trial"),
		Approved:  p.Status == "approved",
	}, nil
}

func metaUint(meta map[string]any, key string) uint {
	if v, ok := meta[key].(float64); ok {
		return uint(v)
	}
	return 0
}

func metaBool(meta map[string]any, key string) bool {
	v, ok := meta[key].(bool)
	return ok && v
}

var _ Gateway = (*MercadoPagoGateway)(nil)
