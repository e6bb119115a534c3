package controllers

import (
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const wizardSessionKey = "wizard_state"

// loadWizardState pulls the wizard aggregate out of the session,
// creating the initial state on first contact
func loadWizardState(c *gin.Context) WizardState {
	session := sessions.Default(c)
	if v := session.Get(wizardSessionKey); v != nil {
		if state, ok := v.(WizardState); ok {
			return state
		}
	}
	return NewWizardState()
}

func saveWizardState(c *gin.Context, state WizardState) error {
	session := sessions.Default(c)
	session.Set(wizardSessionKey, state)
	return session.Save()
}

func clearWizardState(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(wizardSessionKey)
	_ = session.Save()
}

// wizardSnapshot is what every wizard endpoint returns: the full state
// the form needs to render the current step
func wizardSnapshot(state WizardState) gin.H {
	snap := gin.H{
		"step":             state.Step,
		"donation_type":    state.DonationType,
		"amount":           state.Amount,
		"custom_amount":    state.CustomAmount,
		"effective_amount": state.EffectiveAmount(),
		"cause":            state.Cause,
		"donor_set":        state.DonorSet,
		"eligible_80g":     state.EligibleFor80G(),
		"preset_amounts":   models.PresetAmounts,
		"causes":           models.Causes,
	}
	if state.DonorSet {
		donor := state.Donor
		donor.Pan = maskPan(donor.Pan)
		snap["donor"] = donor
	}
	return snap
}

// GET /donate/state
//
// When a logged-in donor reaches the details step, their profile is
// offered as a pre-fill so nothing is retyped
func GetWizardState(c *gin.Context) {
	state := loadWizardState(c)
	snap := wizardSnapshot(state)

	if userVal, exists := c.Get("user"); exists && !state.DonorSet {
		user := userVal.(models.User)
		snap["donor_prefill"] = DonorDetails{
			FullName:   user.Name,
			Email:      user.Email,
			Phone:      user.Phone,
			Pan:        user.PanNumber,
			FatherName: user.FatherName,
			Address:    user.Address,
			City:       user.City,
			State:      user.State,
			Pincode:    user.Pincode,
		}
	}

	utils.Success(c, "Wizard state retrieved", snap)
}

// POST /donate/type
//
// Records the step-1 donation type. With advance=true the wizard moves
// to the amount step.
func SetWizardDonationType(c *gin.Context) {
	var req struct {
		DonationType string `json:"donation_type" binding:"required"`
		Advance      bool   `json:"advance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	state := loadWizardState(c)
	if state.Step != StepDonationType {
		utils.BadRequest(c, ErrInvalidStep.Error(), nil)
		return
	}
	if err := state.SetDonationType(req.DonationType); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if req.Advance {
		if err := state.Advance(); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
	}
	if err := saveWizardState(c, state); err != nil {
		utils.LogError("Failed to save wizard session: %v", err)
		utils.InternalServerError(c, "Failed to save wizard state", nil)
		return
	}

	utils.LogDebug("Wizard donation type set to %s, step %d", state.DonationType, state.Step)
	utils.Success(c, "Donation type updated", wizardSnapshot(state))
}

// POST /donate/amount
//
// Applies amount and cause selections on step 2. Preset and custom
// amounts are mutually exclusive; sending one clears the other. With
// advance=true the step-2 predicate (effective amount >= minimum and a
// cause chosen) gates the move to donor details.
func SetWizardAmount(c *gin.Context) {
	var req struct {
		Preset  *int    `json:"preset"`
		Custom  *string `json:"custom"`
		Cause   string  `json:"cause"`
		Advance bool    `json:"advance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	state := loadWizardState(c)
	if state.Step != StepAmountCause {
		utils.BadRequest(c, ErrInvalidStep.Error(), nil)
		return
	}

	if req.Preset != nil {
		if err := state.SelectPreset(*req.Preset); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
	}
	if req.Custom != nil {
		state.EnterCustom(*req.Custom)
	}
	if req.Cause != "" {
		if err := state.SetCause(req.Cause); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
	}

	// selections stick even when the gate fails, so the donor does not
	// retype after fixing the one unmet condition
	var advanceErr error
	if req.Advance {
		advanceErr = state.Advance()
	}
	if err := saveWizardState(c, state); err != nil {
		utils.LogError("Failed to save wizard session: %v", err)
		utils.InternalServerError(c, "Failed to save wizard state", nil)
		return
	}
	if advanceErr != nil {
		utils.BadRequest(c, advanceErr.Error(), nil)
		return
	}

	utils.Success(c, "Amount updated", wizardSnapshot(state))
}

// POST /donate/details
//
// Validates and stores the donor record on step 3. All field failures
// come back together so the form can render them inline; on success the
// wizard advances to payment.
func SetWizardDonorDetails(c *gin.Context) {
	var donor DonorDetails
	if err := c.ShouldBindJSON(&donor); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	state := loadWizardState(c)
	if state.Step != StepDonorDetails {
		utils.BadRequest(c, ErrInvalidStep.Error(), nil)
		return
	}

	donor.Normalize()
	if errs := donor.Validate(); len(errs) > 0 {
		utils.ValidationError(c, "Donor details are incomplete", errs.Map())
		return
	}

	state.Donor = donor
	state.DonorSet = true
	if err := state.Advance(); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := saveWizardState(c, state); err != nil {
		utils.LogError("Failed to save wizard session: %v", err)
		utils.InternalServerError(c, "Failed to save wizard state", nil)
		return
	}

	utils.LogInfo("Wizard donor details accepted for %s", donor.Email)
	utils.Success(c, "Donor details saved", wizardSnapshot(state))
}

// POST /donate/back
//
// Moves back one step. Collected data survives the move so nothing is
// retyped; on step 1 this is a no-op.
func WizardBack(c *gin.Context) {
	state := loadWizardState(c)
	state.Back()
	if err := saveWizardState(c, state); err != nil {
		utils.LogError("Failed to save wizard session: %v", err)
		utils.InternalServerError(c, "Failed to save wizard state", nil)
		return
	}
	utils.Success(c, "Moved back", wizardSnapshot(state))
}

// POST /donate/checkout
//
// The step-4 submission: picks the gateway, runs the shared
// order-creation pipeline against the collected state, and resets the
// wizard on success.
func WizardCheckout(c *gin.Context) {
	var req struct {
		Gateway string `json:"gateway" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ErrSelectGateway, err.Error())
		return
	}

	state := loadWizardState(c)
	if err := state.CheckoutReady(req.Gateway); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	var userID *uint
	if userVal, exists := c.Get("user"); exists {
		user := userVal.(models.User)
		userID = &user.ID
	}

	payload := state.OrderPayload(req.Gateway)
	result, appErr := createOrder(&payload, userID)
	if appErr != nil {
		utils.LogError("Wizard checkout failed: %v", appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	clearWizardState(c)
	utils.LogInfo("Wizard checkout complete, donation ID: %d", result.DonationID)
	utils.Success(c, "Order created successfully", result.Response())
}
