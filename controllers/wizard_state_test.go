package controllers

import (
	"testing"

	"github.com/dfg-seva/DaanSetu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWizardStateDefaults(t *testing.T) {
	state := NewWizardState()

	assert.Equal(t, StepDonationType, state.Step)
	assert.Equal(t, models.DonationTypeOneTime, state.DonationType)
	assert.Equal(t, AmountNone, state.AmountSource())
	assert.Equal(t, 0, state.EffectiveAmount())
	assert.False(t, state.DonorSet)
}

func TestPresetAndCustomAreMutuallyExclusive(t *testing.T) {
	state := NewWizardState()

	require.NoError(t, state.SelectPreset(1000))
	assert.Equal(t, 1000, state.Amount)
	assert.Empty(t, state.CustomAmount)
	assert.Equal(t, AmountPreset, state.AmountSource())

	state.EnterCustom("750")
	assert.Equal(t, 0, state.Amount)
	assert.Equal(t, "750", state.CustomAmount)
	assert.Equal(t, AmountCustom, state.AmountSource())

	require.NoError(t, state.SelectPreset(2500))
	assert.Equal(t, 2500, state.Amount)
	assert.Empty(t, state.CustomAmount)
}

func TestSelectPresetRejectsUnknownAmount(t *testing.T) {
	state := NewWizardState()
	err := state.SelectPreset(333)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestEffectiveAmount(t *testing.T) {
	state := NewWizardState()

	require.NoError(t, state.SelectPreset(500))
	assert.Equal(t, 500, state.EffectiveAmount())

	state.EnterCustom("1234")
	assert.Equal(t, 1234, state.EffectiveAmount())

	state.EnterCustom("abc")
	assert.Equal(t, 0, state.EffectiveAmount())

	state.EnterCustom("")
	assert.Equal(t, 0, state.EffectiveAmount(), "clearing custom with no preset leaves nothing selected")
}

func TestAmountGateBoundary(t *testing.T) {
	state := NewWizardState()
	require.NoError(t, state.Advance())
	require.NoError(t, state.SetCause(models.CauseMedical))

	state.EnterCustom("99")
	assert.ErrorIs(t, state.CanLeaveStep(StepAmountCause), ErrAmountBelowMin)

	state.EnterCustom("100")
	assert.NoError(t, state.CanLeaveStep(StepAmountCause))
}

func TestAmountStepRequiresCause(t *testing.T) {
	state := NewWizardState()
	require.NoError(t, state.Advance())

	require.NoError(t, state.SelectPreset(5000))
	assert.ErrorIs(t, state.CanLeaveStep(StepAmountCause), ErrNoCause)

	require.NoError(t, state.SetCause(models.CauseRescue))
	assert.NoError(t, state.CanLeaveStep(StepAmountCause))
}

func TestAdvanceMovesOneStepAtATime(t *testing.T) {
	state := NewWizardState()

	require.NoError(t, state.Advance())
	assert.Equal(t, StepAmountCause, state.Step)

	// gate not met: step must not move
	err := state.Advance()
	assert.Error(t, err)
	assert.Equal(t, StepAmountCause, state.Step)

	require.NoError(t, state.SelectPreset(1000))
	require.NoError(t, state.SetCause(models.CauseGausewa))
	require.NoError(t, state.Advance())
	assert.Equal(t, StepDonorDetails, state.Step)
}

func TestBackPreservesCollectedData(t *testing.T) {
	state := NewWizardState()
	require.NoError(t, state.Advance())
	require.NoError(t, state.SelectPreset(2500))
	require.NoError(t, state.SetCause(models.CauseFeed))
	require.NoError(t, state.Advance())

	state.Back()
	assert.Equal(t, StepAmountCause, state.Step)
	assert.Equal(t, 2500, state.Amount)
	assert.Equal(t, models.CauseFeed, state.Cause)

	state.Back()
	assert.Equal(t, StepDonationType, state.Step)
	state.Back()
	assert.Equal(t, StepDonationType, state.Step, "back on the first step is a no-op")
}

func TestCheckoutReady(t *testing.T) {
	state := wizardAtPaymentStep(t)

	assert.ErrorIs(t, state.CheckoutReady(""), ErrNoGateway)
	assert.ErrorIs(t, state.CheckoutReady("paypal"), ErrUnknownGateway)
	assert.NoError(t, state.CheckoutReady(models.GatewayRazorpay))
	assert.NoError(t, state.CheckoutReady(models.GatewayCashfree))
}

func TestCheckoutRejectedBeforePaymentStep(t *testing.T) {
	state := NewWizardState()
	assert.ErrorIs(t, state.CheckoutReady(models.GatewayRazorpay), ErrInvalidStep)
}

func TestOrderPayloadUsesEffectiveAmount(t *testing.T) {
	state := wizardAtPaymentStep(t)
	state.EnterCustom("1750")

	payload := state.OrderPayload(models.GatewayCashfree)
	assert.Equal(t, float64(1750), payload.Amount)
	assert.Equal(t, models.CauseGausewa, payload.Cause)
	assert.Equal(t, models.DonationTypeOneTime, payload.DonationType)
	assert.Equal(t, models.GatewayCashfree, payload.Gateway)
	assert.Equal(t, "Asha Devi", payload.Donor.FullName)
}

func TestOrderPayloadPresetScenario(t *testing.T) {
	state := NewWizardState()
	require.NoError(t, state.SetDonationType(models.DonationTypeOneTime))
	require.NoError(t, state.Advance())
	require.NoError(t, state.SelectPreset(5000))
	require.NoError(t, state.SetCause(models.CauseGausewa))
	require.NoError(t, state.Advance())
	state.Donor = validDonor()
	state.DonorSet = true
	require.NoError(t, state.Advance())

	payload := state.OrderPayload(models.GatewayRazorpay)
	assert.Equal(t, CreateOrderRequest{
		Amount:       5000,
		Cause:        models.CauseGausewa,
		DonationType: models.DonationTypeOneTime,
		Gateway:      models.GatewayRazorpay,
		Donor:        validDonor(),
	}, payload)
}

func TestSetDonationTypeRejectsUnknown(t *testing.T) {
	state := NewWizardState()
	assert.ErrorIs(t, state.SetDonationType("weekly"), ErrUnknownType)
	assert.NoError(t, state.SetDonationType(models.DonationTypeMonthly))
	assert.Equal(t, models.DonationTypeMonthly, state.DonationType)
}

func wizardAtPaymentStep(t *testing.T) WizardState {
	t.Helper()

	state := NewWizardState()
	require.NoError(t, state.Advance())
	require.NoError(t, state.SelectPreset(1000))
	require.NoError(t, state.SetCause(models.CauseGausewa))
	require.NoError(t, state.Advance())

	state.Donor = validDonor()
	state.DonorSet = true
	require.NoError(t, state.Advance())
	require.Equal(t, StepPayment, state.Step)
	return state
}

func validDonor() DonorDetails {
	return DonorDetails{
		FullName: "Asha Devi",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Guwahati",
		State:    "Assam",
		Pincode:  "781001",
	}
}
