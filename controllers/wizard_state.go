package controllers

import (
	"errors"
	"strconv"

	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
)

// Wizard step numbers
const (
	StepDonationType = 1
	StepAmountCause  = 2
	StepDonorDetails = 3
	StepPayment      = 4
)

// AmountSource identifies where the effective amount comes from. The wire
// format keeps the legacy convention (preset amount zeroed while a custom
// value is typed); everything past this type reasons in terms of the
// resolved source instead.
type AmountSource int

const (
	AmountNone AmountSource = iota
	AmountPreset
	AmountCustom
)

// Gating errors returned when a step's advance predicate is not met
var (
	ErrNoDonationType = errors.New(utils.ErrSelectDonationType)
	ErrAmountBelowMin = errors.New(utils.ErrAmountTooSmall)
	ErrNoCause        = errors.New(utils.ErrSelectCause)
	ErrNoGateway      = errors.New(utils.ErrSelectGateway)
	ErrNoDonorDetails = errors.New(utils.ErrDetailsIncomplete)
	ErrInvalidStep    = errors.New("invalid wizard step for this action")
	ErrUnknownPreset  = errors.New("amount is not one of the preset options")
	ErrUnknownCause   = errors.New("unknown cause")
	ErrUnknownType    = errors.New("unknown donation type")
	ErrUnknownGateway = errors.New("unknown payment gateway")
)

// WizardState is the aggregate owned by the donation wizard for one
// session. It is created on first contact with step=1 and the donation
// type defaulted to one-time, mutated only by the step handlers, and
// dies with the session cookie.
type WizardState struct {
	Step         int
	DonationType string
	Amount       int    // preset amount in INR; 0 while a custom value is active
	CustomAmount string // raw custom input; empty while a preset is active
	Cause        string
	Donor        DonorDetails
	DonorSet     bool // Donor has passed validation and is final
}

// NewWizardState returns the initial wizard state
func NewWizardState() WizardState {
	return WizardState{
		Step:         StepDonationType,
		DonationType: models.DonationTypeOneTime,
	}
}

// SetDonationType records the step-1 choice
func (w *WizardState) SetDonationType(t string) error {
	if !models.ValidDonationType(t) {
		return ErrUnknownType
	}
	w.DonationType = t
	return nil
}

// SelectPreset activates one of the fixed amounts and clears any custom
// entry. Preset and custom are mutually exclusive.
func (w *WizardState) SelectPreset(amount int) error {
	valid := false
	for _, a := range models.PresetAmounts {
		if amount == a {
			valid = true
			break
		}
	}
	if !valid {
		return ErrUnknownPreset
	}
	w.Amount = amount
	w.CustomAmount = ""
	return nil
}

// EnterCustom records a raw custom amount and deactivates the preset
func (w *WizardState) EnterCustom(raw string) {
	w.CustomAmount = raw
	w.Amount = 0
}

// SetCause records the step-2 cause choice
func (w *WizardState) SetCause(cause string) error {
	if !models.ValidCause(cause) {
		return ErrUnknownCause
	}
	w.Cause = cause
	return nil
}

// AmountSource resolves which entry is authoritative
func (w *WizardState) AmountSource() AmountSource {
	if w.CustomAmount != "" {
		return AmountCustom
	}
	if w.Amount > 0 {
		return AmountPreset
	}
	return AmountNone
}

// EffectiveAmount is the resolved donation amount: the custom value when
// one is typed, else the preset. Unparseable custom input resolves to 0.
func (w *WizardState) EffectiveAmount() int {
	switch w.AmountSource() {
	case AmountCustom:
		n, err := strconv.Atoi(w.CustomAmount)
		if err != nil {
			return 0
		}
		return n
	case AmountPreset:
		return w.Amount
	default:
		return 0
	}
}

// EligibleFor80G reports whether the informational 80G hint applies.
// Purely descriptive, never a gate.
func (w *WizardState) EligibleFor80G() bool {
	return w.EffectiveAmount() > 0
}

// CanLeaveStep reports whether the given step's advance predicate holds,
// returning the first unmet condition so callers can surface it instead
// of failing silently.
func (w *WizardState) CanLeaveStep(step int) error {
	switch step {
	case StepDonationType:
		if w.DonationType == "" {
			return ErrNoDonationType
		}
	case StepAmountCause:
		if w.EffectiveAmount() < models.MinDonationAmount {
			return ErrAmountBelowMin
		}
		if w.Cause == "" {
			return ErrNoCause
		}
	case StepDonorDetails:
		if !w.DonorSet {
			return ErrNoDonorDetails
		}
	default:
		return ErrInvalidStep
	}
	return nil
}

// Advance moves forward by exactly one step after the current step's
// predicate passes
func (w *WizardState) Advance() error {
	if w.Step >= StepPayment {
		return ErrInvalidStep
	}
	if err := w.CanLeaveStep(w.Step); err != nil {
		return err
	}
	w.Step++
	return nil
}

// Back moves backward by exactly one step; it is a no-op on step 1
func (w *WizardState) Back() {
	if w.Step > StepDonationType {
		w.Step--
	}
}

// CheckoutReady validates the step-4 submission predicate
func (w *WizardState) CheckoutReady(gateway string) error {
	if w.Step != StepPayment {
		return ErrInvalidStep
	}
	if gateway == "" {
		return ErrNoGateway
	}
	if !models.ValidGateway(gateway) {
		return ErrUnknownGateway
	}
	if !w.DonorSet {
		return ErrNoDonorDetails
	}
	return nil
}

// OrderPayload builds the order-creation request from the collected state
func (w *WizardState) OrderPayload(gateway string) CreateOrderRequest {
	return CreateOrderRequest{
		Amount:       float64(w.EffectiveAmount()),
		Cause:        w.Cause,
		DonationType: w.DonationType,
		Gateway:      gateway,
		Donor:        w.Donor,
	}
}
