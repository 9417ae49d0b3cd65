package payment_test

import (
	"regexp"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func initiated(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.Initiate(kernel.NewUUID(), money(t, 250), payment.Razorpay, payment.UPI, money(t, 250))
	require.NoError(t, err)
	return p
}

func TestInitiate(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should open an initiated attempt", func(t *testing.T) {
		p, err := payment.Initiate(orderID, money(t, 250), payment.Stripe, payment.Card, money(t, 250))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, payment.Initiated, p.Status())
		assert.Equal(t, int64(250), p.Amount().Amount())
		assert.Regexp(t, regexp.MustCompile(`^Stripe_\d{13}_[0-9a-z]{9}$`), p.TransactionRef().String())
	})

	t.Run("should reject amount mismatch", func(t *testing.T) {
		_, err := payment.Initiate(orderID, money(t, 250), payment.Paytm, payment.Wallet, money(t, 249))

		require.ErrorIs(t, err, payment.ErrAmountMismatch)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown gateway and method", func(t *testing.T) {
		_, err := payment.Initiate(orderID, money(t, 250), payment.UnknownGateway, payment.UnknownMethod, money(t, 250))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "gateway")
		assert.Contains(t, err.Error(), "method")
	})

	t.Run("references are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			ref := initiated(t).TransactionRef().String()
			_, dup := seen[ref]
			require.False(t, dup, ref)
			seen[ref] = struct{}{}
		}
	})
}

func TestPayment_MarkSucceeded(t *testing.T) {
	p := initiated(t)

	require.NoError(t, p.MarkSucceeded())
	assert.Equal(t, payment.Success, p.Status())

	err := p.MarkSucceeded()
	require.ErrorIs(t, err, payment.ErrAlreadyProcessed)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
}

func TestPayment_MarkFailed(t *testing.T) {
	p := initiated(t)

	p.MarkFailed(" card declined ")
	p.MarkFailed("card declined")

	assert.Equal(t, payment.Failed, p.Status())
	assert.Equal(t, "card declined", p.FailureReason())
}

func TestPayment_Refund(t *testing.T) {
	t.Run("only success is refundable", func(t *testing.T) {
		for _, prepare := range []func(p *payment.Payment){
			func(*payment.Payment) {},
			func(p *payment.Payment) { p.MarkFailed("timeout") },
		} {
			p := initiated(t)
			prepare(p)

			require.ErrorIs(t, p.Refund("customer request"), payment.ErrNotRefundable)
		}
	})

	t.Run("refunds a successful attempt once", func(t *testing.T) {
		p := initiated(t)
		require.NoError(t, p.MarkSucceeded())

		require.NoError(t, p.Refund("customer request"))
		assert.Equal(t, payment.Refunded, p.Status())
		assert.Equal(t, "customer request", p.RefundReason())

		require.ErrorIs(t, p.Refund("again"), payment.ErrNotRefundable)
	})
}

func TestRetry(t *testing.T) {
	t.Run("clones gateway amount and method with a fresh reference", func(t *testing.T) {
		failed := initiated(t)
		failed.MarkFailed("declined")

		retried, err := payment.Retry(failed)

		require.NoError(t, err)
		assert.False(t, retried.ID().IsEqual(failed.ID()))
		assert.True(t, retried.OrderID().IsEqual(failed.OrderID()))
		assert.Equal(t, failed.Gateway(), retried.Gateway())
		assert.Equal(t, failed.Method(), retried.Method())
		assert.True(t, retried.Amount().IsEqual(failed.Amount()))
		assert.Equal(t, payment.Initiated, retried.Status())
		assert.False(t, retried.TransactionRef().IsEqual(failed.TransactionRef()))
	})

	t.Run("requires a failed attempt", func(t *testing.T) {
		_, err := payment.Retry(initiated(t))
		require.ErrorIs(t, err, payment.ErrNotFailed)

		_, err = payment.Retry(nil)
		require.ErrorIs(t, err, payment.ErrPaymentIsNotConstructed)
	})
}

func TestRestorePayment(t *testing.T) {
	ref, err := payment.TransactionRefFromString("Paytm_1700000000000_abc123xyz")
	require.NoError(t, err)
	now := time.Now().UTC()

	p, err := payment.RestorePayment(kernel.NewUUID(), kernel.NewUUID(), payment.Paytm, payment.NetBanking,
		ref, money(t, 500), payment.Failed, "insufficient funds", "", now, now)

	require.NoError(t, err)
	assert.Equal(t, payment.Failed, p.Status())
	assert.Equal(t, "insufficient funds", p.FailureReason())
	assert.True(t, p.TransactionRef().IsEqual(ref))

	_, err = payment.RestorePayment(kernel.NewUUID(), kernel.NewUUID(), payment.Paytm, payment.NetBanking,
		payment.TransactionRef{}, money(t, 500), payment.UnknownStatus, "", "", now, now)
	require.ErrorIs(t, err, payment.ErrTransactionRefIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestEnums(t *testing.T) {
	for _, name := range []string{"Razorpay", "Paytm", "Stripe"} {
		g, err := payment.ParseGateway(name)
		require.NoError(t, err)
		assert.Equal(t, name, g.String())
	}
	for _, name := range []string{"UPI", "Wallet", "Card", "NetBanking"} {
		m, err := payment.ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	for _, name := range []string{"initiated", "success", "failed", "refunded"} {
		s, err := payment.ParseStatus(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := payment.ParseGateway("PayPal")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = payment.ParseMethod("Cash")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = payment.TransactionRefFromString("  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
