package payment

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Gateway is the external payment provider that reports attempt outcomes.
type Gateway int

const (
	UnknownGateway Gateway = iota
	Razorpay
	Paytm
	Stripe
)

var gatewayNames = map[Gateway]string{
	Razorpay: "Razorpay",
	Paytm:    "Paytm",
	Stripe:   "Stripe",
}

func ParseGateway(s string) (Gateway, error) {
	for g, name := range gatewayNames {
		if name == s {
			return g, nil
		}
	}
	return UnknownGateway, errs.NewValueIsInvalidErrorWithCause("gateway", fmt.Errorf("%q is not a supported gateway", s))
}

func (g Gateway) String() string {
	if name, ok := gatewayNames[g]; ok {
		return name
	}
	return "Unknown"
}

func (g Gateway) Validate() error {
	if _, ok := gatewayNames[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("gateway", fmt.Errorf("%d is not a supported gateway", g))
	}
	return nil
}

// Method is how the customer pays through the gateway.
type Method int

const (
	UnknownMethod Method = iota
	UPI
	Wallet
	Card
	NetBanking
)

var methodNames = map[Method]string{
	UPI:        "UPI",
	Wallet:     "Wallet",
	Card:       "Card",
	NetBanking: "NetBanking",
}

func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a supported method", s))
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "Unknown"
}

func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%d is not a supported method", m))
	}
	return nil
}
