package controllers

import (
	"fmt"
	"os"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// createOrder points at the real pipeline; tests swap it to exercise
// the handlers without a database or gateway
var createOrder = createDonationOrder

// POST /donations/create-order
//
// Validates the composite payload, persists a pending donation with a
// donor snapshot, then creates the gateway-side order. One attempt, no
// retry; on gateway failure the donation row stays pending and the
// caller re-initiates.
func CreateDonationOrder(c *gin.Context) {
	utils.LogInfo("CreateDonationOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var userID *uint
	if userVal, exists := c.Get("user"); exists {
		user := userVal.(models.User)
		userID = &user.ID
	}

	result, appErr := createOrder(&req, userID)
	if appErr != nil {
		utils.LogError("Order creation failed: %v", appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	utils.Success(c, "Order created successfully", result.Response())
}

// createDonationOrder runs the shared order-creation pipeline for both
// the direct endpoint and the wizard checkout
func createDonationOrder(req *CreateOrderRequest, userID *uint) (*OrderResult, *utils.AppError) {
	if req.Cause == "" {
		req.Cause = models.CauseGausewa
	}
	if req.DonationType == "" {
		req.DonationType = models.DonationTypeOneTime
	}

	if !models.ValidCause(req.Cause) {
		return nil, utils.BadRequestError("Unknown cause: "+req.Cause, nil)
	}
	if !models.ValidDonationType(req.DonationType) {
		return nil, utils.BadRequestError("Unknown donation type: "+req.DonationType, nil)
	}
	if !models.ValidGateway(req.Gateway) {
		return nil, utils.BadRequestError("Unknown payment gateway: "+req.Gateway, nil)
	}
	if req.Amount < models.MinDonationAmount {
		return nil, utils.BadRequestError(utils.ErrAmountTooSmall, nil)
	}

	req.Donor.Normalize()
	if errs := req.Donor.Validate(); len(errs) > 0 {
		return nil, utils.BadRequestError(errs.Error(), nil)
	}

	db := config.DB
	donation := models.Donation{
		UserID:              userID,
		DonorName:           req.Donor.FullName,
		DonorEmail:          req.Donor.Email,
		DonorPhone:          req.Donor.Phone,
		DonorPan:            req.Donor.Pan,
		DonorFatherName:     req.Donor.FatherName,
		DonorAddress:        req.Donor.Address,
		DonorCity:           req.Donor.City,
		DonorState:          req.Donor.State,
		DonorPincode:        req.Donor.Pincode,
		OnBehalfOf:          req.Donor.OnBehalfOf,
		BeneficiaryName:     req.Donor.BeneficiaryName,
		BeneficiaryRelation: req.Donor.BeneficiaryRelation,
		Amount:              req.Amount,
		Cause:               req.Cause,
		DonationType:        req.DonationType,
		Gateway:             req.Gateway,
		Status:              models.DonationStatusPending,
	}
	if err := db.Create(&donation).Error; err != nil {
		return nil, utils.NewAppError(500, "Failed to record donation", err)
	}
	utils.LogInfo("Created pending donation ID: %d, amount: %.2f, gateway: %s", donation.ID, donation.Amount, donation.Gateway)

	receipt := fmt.Sprintf("DFG_%d", donation.ID)

	var result *OrderResult
	var appErr *utils.AppError
	switch req.Gateway {
	case models.GatewayRazorpay:
		if req.DonationType == models.DonationTypeMonthly {
			result, appErr = createRazorpaySubscription(&donation, req)
		} else {
			result, appErr = createRazorpayOrder(&donation, req, receipt)
		}
	case models.GatewayCashfree:
		result, appErr = createCashfreeOrder(&donation, req, receipt)
	}
	if appErr != nil {
		return nil, appErr
	}

	if err := db.Save(&donation).Error; err != nil {
		return nil, utils.NewAppError(500, "Failed to update donation with gateway details", err)
	}

	result.DonationID = donation.ID
	result.Amount = donation.Amount
	return result, nil
}

func createRazorpayOrder(donation *models.Donation, req *CreateOrderRequest, receipt string) (*OrderResult, *utils.AppError) {
	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))

	orderData := map[string]interface{}{
		"amount":          int(req.Amount * 100), // paise
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"cause":      req.Cause,
			"donor_name": req.Donor.FullName,
		},
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for donation ID: %d: %v", donation.ID, err)
		return nil, utils.NewAppError(500, utils.ErrOrderInitFailed, err)
	}

	orderID, ok := rzOrder["id"].(string)
	if !ok || orderID == "" {
		utils.LogError("Razorpay order response missing id for donation ID: %d", donation.ID)
		return nil, utils.GatewayError("Payment gateway returned an unexpected response", nil)
	}

	donation.GatewayOrderID = orderID
	return &OrderResult{Kind: OrderRazorpay, RazorpayOrderID: orderID}, nil
}

func createRazorpaySubscription(donation *models.Donation, req *CreateOrderRequest) (*OrderResult, *utils.AppError) {
	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))

	planData := map[string]interface{}{
		"period":   "monthly",
		"interval": 1,
		"item": map[string]interface{}{
			"name":     "Monthly Donation - " + req.Cause,
			"amount":   int(req.Amount * 100),
			"currency": "INR",
		},
	}
	plan, err := client.Plan.Create(planData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay plan for donation ID: %d: %v", donation.ID, err)
		return nil, utils.NewAppError(500, utils.ErrOrderInitFailed, err)
	}
	planID, ok := plan["id"].(string)
	if !ok || planID == "" {
		return nil, utils.GatewayError("Payment gateway returned an unexpected response", nil)
	}

	subData := map[string]interface{}{
		"plan_id":         planID,
		"total_count":     120, // ten years of monthly giving
		"quantity":        1,
		"customer_notify": 1,
		"notify_info": map[string]interface{}{
			"notify_email": req.Donor.Email,
		},
	}
	sub, err := client.Subscription.Create(subData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay subscription for donation ID: %d: %v", donation.ID, err)
		return nil, utils.NewAppError(500, utils.ErrOrderInitFailed, err)
	}
	subID, ok := sub["id"].(string)
	if !ok || subID == "" {
		return nil, utils.GatewayError("Payment gateway returned an unexpected response", nil)
	}
	shortURL, _ := sub["short_url"].(string)

	donation.SubscriptionID = subID
	donation.GatewayOrderID = subID
	return &OrderResult{Kind: OrderRazorpaySubscription, SubscriptionID: subID, ShortURL: shortURL}, nil
}

func createCashfreeOrder(donation *models.Donation, req *CreateOrderRequest, receipt string) (*OrderResult, *utils.AppError) {
	returnURL := os.Getenv("FRONTEND_URL")
	if returnURL == "" {
		returnURL = "http://localhost:3000"
	}
	returnURL += "/donate/success"

	cfOrder, err := utils.CreateCashfreeOrder(
		receipt,
		req.Amount,
		fmt.Sprintf("donor_%d", donation.ID),
		req.Donor.Email,
		req.Donor.Phone,
		req.Donor.FullName,
		returnURL,
	)
	if err != nil {
		utils.LogError("Failed to create Cashfree order for donation ID: %d: %v", donation.ID, err)
		return nil, utils.NewAppError(500, utils.ErrOrderInitFailed, err)
	}

	if cfOrder.PaymentLink == "" {
		utils.LogError("Cashfree order response missing payment link for donation ID: %d", donation.ID)
		return nil, utils.GatewayError("Payment gateway returned an unexpected response", nil)
	}

	donation.GatewayOrderID = cfOrder.OrderID
	if donation.GatewayOrderID == "" {
		donation.GatewayOrderID = receipt
	}
	return &OrderResult{Kind: OrderCashfreeLink, PaymentLink: cfOrder.PaymentLink}, nil
}
