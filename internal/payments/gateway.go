package payments

import "context"

// CheckoutSession é a referência devolvida pelo provedor de pagamento
type CheckoutSession struct {
	Ref         string
	CheckoutURL string
}

// ConfirmedPayment é o que o webhook do provedor nos entrega (at-least-once)
type ConfirmedPayment struct {
	Ref       string
	BookingID uint
	StudentID uint
	WasTrial  bool
	Approved  bool
}

type Gateway interface {
	CreateCheckoutSession(
		ctx context.Context,
		bookingID uint,
		studentID uint,
		title string,
		amount float64,
		wasTrial bool,
	) (*CheckoutSession, error)

	// FetchPayment resolve a notificação do provedor (id do pagamento)
	// para os dados confirmados
	FetchPayment(ctx context.Context, paymentID int) (*ConfirmedPayment, error)
}
