package notify

import "log"

// BookingConfirmation é o aviso enviado ao aluno quando o pagamento cai
type BookingConfirmation struct {
	StudentEmail string
	TutorName    string
	Date         string
	Time         string
	Amount       float64
}

type Notifier interface {
	SendBookingConfirmation(conf BookingConfirmation) error
}

// LogNotifier registra a confirmação no log; a entrega real de e-mail
// fica com o provedor externo
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendBookingConfirmation(conf BookingConfirmation) error {
	log.Printf(
		"booking confirmation to %s: aula com %s em %s %s (R$ %.2f)",
		conf.StudentEmail, conf.TutorName, conf.Date, conf.Time, conf.Amount,
	)
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
