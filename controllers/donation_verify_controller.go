package controllers

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// POST /donations/verify
//
// Client-side confirmation of a Razorpay payment. The signature proves
// the order/payment pair came from the gateway; only then does the
// donation flip to success. Verification is idempotent.
func VerifyRazorpayPayment(c *gin.Context) {
	utils.LogInfo("VerifyRazorpayPayment called")

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.LogError("Razorpay signature mismatch for order %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}

	donation, err := utils.GetDonationByGatewayOrderID(req.RazorpayOrderID)
	if err != nil {
		utils.LogError("Donation not found for order %s: %v", req.RazorpayOrderID, err)
		utils.NotFound(c, "Donation not found")
		return
	}

	if donation.Status == models.DonationStatusSuccess {
		utils.Success(c, "Payment already verified", gin.H{
			"donation_id": donation.ID,
			"status":      donation.Status,
		})
		return
	}

	donation.Status = models.DonationStatusSuccess
	donation.GatewayPaymentID = req.RazorpayPaymentID
	donation.GatewaySignature = req.RazorpaySignature
	if err := config.DB.Save(donation).Error; err != nil {
		utils.LogError("Failed to update donation %d: %v", donation.ID, err)
		utils.InternalServerError(c, "Failed to update donation", nil)
		return
	}

	recordRazorpayTransaction(donation, req.RazorpayPaymentID)

	go ProcessCertificate(donation.ID)

	utils.LogInfo("Payment verified for donation %d, payment %s", donation.ID, req.RazorpayPaymentID)
	utils.Success(c, "Payment verified successfully", gin.H{
		"donation_id": donation.ID,
		"status":      donation.Status,
		"receipt":     donation.ReceiptNumber(),
	})
}

// POST /donations/verify-cashfree
//
// Confirms a Cashfree payment by asking the gateway for the order
// status rather than trusting the redirect
func VerifyCashfreePayment(c *gin.Context) {
	utils.LogInfo("VerifyCashfreePayment called")

	var req struct {
		OrderID string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	donation, err := utils.GetDonationByGatewayOrderID(req.OrderID)
	if err != nil {
		utils.LogError("Donation not found for order %s: %v", req.OrderID, err)
		utils.NotFound(c, "Donation not found")
		return
	}

	if donation.Status == models.DonationStatusSuccess {
		utils.Success(c, "Payment already verified", gin.H{
			"donation_id": donation.ID,
			"status":      donation.Status,
		})
		return
	}

	order, err := utils.GetCashfreeOrderStatus(req.OrderID)
	if err != nil {
		utils.LogError("Cashfree status lookup failed for order %s: %v", req.OrderID, err)
		utils.BadGateway(c, "Could not confirm payment status with the gateway", nil)
		return
	}

	if order.OrderStatus != "PAID" {
		utils.LogInfo("Cashfree order %s not paid yet, status: %s", req.OrderID, order.OrderStatus)
		utils.Success(c, "Payment not completed", gin.H{
			"donation_id":  donation.ID,
			"status":       donation.Status,
			"order_status": order.OrderStatus,
		})
		return
	}

	donation.Status = models.DonationStatusSuccess
	if err := config.DB.Save(donation).Error; err != nil {
		utils.LogError("Failed to update donation %d: %v", donation.ID, err)
		utils.InternalServerError(c, "Failed to update donation", nil)
		return
	}

	recordTransaction(donation, models.PaymentTransaction{
		Gateway:        models.GatewayCashfree,
		GatewayOrderID: donation.GatewayOrderID,
		GrossAmount:    donation.Amount,
		NetReceivable:  donation.Amount,
		Status:         models.TransactionStatusCaptured,
	})

	go ProcessCertificate(donation.ID)

	utils.LogInfo("Cashfree payment verified for donation %d", donation.ID)
	utils.Success(c, "Payment verified successfully", gin.H{
		"donation_id": donation.ID,
		"status":      donation.Status,
		"receipt":     donation.ReceiptNumber(),
	})
}

// recordRazorpayTransaction fetches the payment entity for its fee
// breakdown and stores the transaction ledger row. Failures here are
// logged, not surfaced; the donation is already confirmed.
func recordRazorpayTransaction(donation *models.Donation, paymentID string) {
	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))

	tx := models.PaymentTransaction{
		Gateway:          models.GatewayRazorpay,
		GatewayOrderID:   donation.GatewayOrderID,
		GatewayPaymentID: paymentID,
		SubscriptionID:   donation.SubscriptionID,
		GrossAmount:      donation.Amount,
		NetReceivable:    donation.Amount,
		Status:           models.TransactionStatusCaptured,
	}

	payment, err := client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		utils.LogError("Failed to fetch Razorpay payment %s: %v", paymentID, err)
		recordTransaction(donation, tx)
		return
	}

	// fee and tax arrive in paise; tax is the GST component already
	// included in fee
	if fee, ok := payment["fee"].(float64); ok {
		tx.GatewayFee = fee / 100
	}
	if taxAmt, ok := payment["tax"].(float64); ok {
		tx.GatewayTax = taxAmt / 100
	}
	tx.TotalDeduction = tx.GatewayFee
	tx.NetReceivable = tx.GrossAmount - tx.TotalDeduction

	if method, ok := payment["method"].(string); ok {
		tx.PaymentMethod = method
	}
	if bank, ok := payment["bank"].(string); ok {
		tx.Bank = bank
	}
	if network, ok := payment["card"].(map[string]interface{}); ok {
		if n, ok := network["network"].(string); ok {
			tx.CardNetwork = n
		}
		if last4, ok := network["last4"].(string); ok {
			tx.CardLast4 = last4
		}
	}
	if vpa, ok := payment["vpa"].(string); ok {
		tx.UpiVpa = vpa
	}
	if wallet, ok := payment["wallet"].(string); ok {
		tx.Wallet = wallet
	}

	if raw, err := json.Marshal(payment); err == nil {
		tx.RawResponse = string(raw)
		if len(tx.RawResponse) > utils.MaxRawResponseLength {
			tx.RawResponse = tx.RawResponse[:utils.MaxRawResponseLength]
		}
	}

	recordTransaction(donation, tx)
}

func recordTransaction(donation *models.Donation, tx models.PaymentTransaction) {
	tx.DonationID = donation.ID
	tx.UserID = donation.UserID
	if tx.Currency == "" {
		tx.Currency = donation.Currency
	}
	now := time.Now()
	if tx.Status == models.TransactionStatusCaptured {
		tx.CapturedAt = &now
	} else if tx.Status == models.TransactionStatusFailed {
		tx.FailedAt = &now
	}
	if err := config.DB.Create(&tx).Error; err != nil {
		utils.LogError("Failed to record transaction for donation %d: %v", donation.ID, err)
	}
}
