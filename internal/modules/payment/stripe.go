package payment

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"resortbooking/internal/domain"
)

const metadataBookingKey = "booking_id"

// StripeGateway drives Stripe payment intents and verifies its webhooks.
type StripeGateway struct {
	client        *stripe.Client
	webhookSecret string
	timeout       time.Duration
}

func NewStripeGateway(apiKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		client:        stripe.NewClient(apiKey),
		webhookSecret: webhookSecret,
		timeout:       15 * time.Second,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, bookingID, amountCents int64, currency string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	pi, err := g.client.V1PaymentIntents.Create(ctx, &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		Metadata: map[string]string{
			metadataBookingKey: strconv.FormatInt(bookingID, 10),
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	})
	if err != nil {
		return nil, domain.NewGatewayError("failed to create payment intent", err)
	}
	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	pi, err := g.client.V1PaymentIntents.Retrieve(ctx, intentID, nil)
	if err != nil {
		return nil, domain.NewGatewayError("failed to retrieve payment intent", err)
	}
	return fromStripeIntent(pi), nil
}

// ParseEvent verifies the webhook signature and maps the provider event
// onto the neutral Event type. Unknown event kinds come back as ignored.
func (g *StripeGateway) ParseEvent(payload []byte, sigHeader string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return nil, domain.NewGatewayError("invalid webhook signature", err)
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, domain.NewGatewayError("malformed webhook payload", err)
		}
		kind := EventIntentSucceeded
		if event.Type == "payment_intent.payment_failed" {
			kind = EventIntentFailed
		}
		return &Event{Type: kind, Intent: fromStripeIntent(&pi)}, nil
	default:
		return &Event{Type: EventIgnored}, nil
	}
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	bookingID, _ := strconv.ParseInt(pi.Metadata[metadataBookingKey], 10, 64)

	status := IntentProcessing
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		status = IntentSucceeded
	case stripe.PaymentIntentStatusCanceled:
		status = IntentFailed
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       status,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		BookingID:    bookingID,
	}
}
