package model

import "context"

// PaymentProvider creates and retrieves payment intents at the processor.
// Amounts are always in minor currency units.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (PaymentIntent, error)
}

// PaymentIntent is the processor-side record of an amount to be collected.
// ClientSecret is the only field ever returned to the client.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}
