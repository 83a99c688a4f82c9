package payment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()
	amount, err := kernel.NewMoney(20000)
	require.NoError(t, err)
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		payment.MethodBankTransfer, amount, "uploads/proof-1.jpg", time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestMethodFromString(t *testing.T) {
	method, err := payment.MethodFromString("bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, payment.MethodBankTransfer, method)

	method, err = payment.MethodFromString("e_wallet")
	require.NoError(t, err)
	assert.Equal(t, payment.MethodEWallet, method)

	_, err = payment.MethodFromString("crypto")
	require.Error(t, err)
}

func TestNewPayment(t *testing.T) {
	t.Run("starts_pending_verification", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, payment.PendingVerification, p.Status())
		assert.Equal(t, "uploads/proof-1.jpg", p.ProofRef())
		assert.Equal(t, int64(20000), p.Amount().Amount())
		assert.Empty(t, p.RejectReason())
	})

	t.Run("proof_ref_required", func(t *testing.T) {
		amount, _ := kernel.NewMoney(20000)
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
			payment.MethodBankTransfer, amount, "", time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("method_required", func(t *testing.T) {
		amount, _ := kernel.NewMoney(20000)
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
			payment.MethodUnknown, amount, "uploads/proof-1.jpg", time.Now().UTC())
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestPayment_Verify(t *testing.T) {
	t.Run("verifies_pending_payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Verify())

		assert.Equal(t, payment.Verified, p.Status())
	})

	t.Run("second_verify_observes_illegal_transition", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Verify())

		err := p.Verify()

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, payment.Verified, p.Status())
	})

	t.Run("verify_after_reject_fails", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Reject("unreadable receipt"))

		require.ErrorIs(t, p.Verify(), errs.ErrIllegalTransition)
	})
}

func TestPayment_Reject(t *testing.T) {
	t.Run("rejects_with_reason", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Reject("amount unreadable"))

		assert.Equal(t, payment.Rejected, p.Status())
		assert.Equal(t, "amount unreadable", p.RejectReason())
	})

	t.Run("reason_required", func(t *testing.T) {
		p := newTestPayment(t)
		require.ErrorIs(t, p.Reject(""), errs.ErrValueIsRequired)
		assert.Equal(t, payment.PendingVerification, p.Status())
	})

	t.Run("reject_after_verify_fails", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Verify())

		require.ErrorIs(t, p.Reject("too late"), errs.ErrIllegalTransition)
	})
}

func TestStatus_IsSettledOrPending(t *testing.T) {
	assert.True(t, payment.AwaitingProof.IsSettledOrPending())
	assert.True(t, payment.PendingVerification.IsSettledOrPending())
	assert.True(t, payment.Verified.IsSettledOrPending())
	assert.False(t, payment.Rejected.IsSettledOrPending())
}
