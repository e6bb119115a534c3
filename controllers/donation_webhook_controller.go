package controllers

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
)

// POST /donations/webhook/razorpay
//
// Server-to-server confirmation from Razorpay. Handles the capture and
// failure events plus subscription charges; anything else is
// acknowledged and ignored so the gateway stops retrying.
func RazorpayWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequest(c, "Could not read request body", nil)
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if !utils.VerifyRazorpayWebhookSignature(body, signature) {
		utils.LogError("Razorpay webhook signature mismatch")
		utils.BadRequest(c, "Invalid webhook signature", nil)
		return
	}

	var event struct {
		Event   string `json:"event"`
		Payload struct {
			Payment struct {
				Entity map[string]interface{} `json:"entity"`
			} `json:"payment"`
			Subscription struct {
				Entity map[string]interface{} `json:"entity"`
			} `json:"subscription"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		utils.BadRequest(c, "Invalid webhook payload", nil)
		return
	}

	utils.LogInfo("Razorpay webhook event: %s", event.Event)

	switch event.Event {
	case "payment.captured":
		handleRazorpayPaymentEvent(event.Payload.Payment.Entity, models.DonationStatusSuccess)
	case "payment.failed":
		handleRazorpayPaymentEvent(event.Payload.Payment.Entity, models.DonationStatusFailed)
	case "subscription.charged":
		handleRazorpaySubscriptionCharged(event.Payload.Subscription.Entity, event.Payload.Payment.Entity)
	}

	utils.Success(c, "Webhook processed", nil)
}

func handleRazorpayPaymentEvent(payment map[string]interface{}, status string) {
	orderID, _ := payment["order_id"].(string)
	paymentID, _ := payment["id"].(string)
	if orderID == "" {
		return
	}

	donation, err := utils.GetDonationByGatewayOrderID(orderID)
	if err != nil {
		utils.LogError("Webhook for unknown order %s", orderID)
		return
	}

	// webhooks can race the client-side verify call; success never
	// regresses to failed
	if donation.Status == models.DonationStatusSuccess {
		return
	}

	donation.Status = status
	donation.GatewayPaymentID = paymentID
	if err := config.DB.Save(donation).Error; err != nil {
		utils.LogError("Failed to update donation %d from webhook: %v", donation.ID, err)
		return
	}

	if status == models.DonationStatusSuccess {
		recordRazorpayTransaction(donation, paymentID)
		go ProcessCertificate(donation.ID)
	} else {
		recordTransaction(donation, models.PaymentTransaction{
			Gateway:          models.GatewayRazorpay,
			GatewayOrderID:   orderID,
			GatewayPaymentID: paymentID,
			GrossAmount:      donation.Amount,
			Status:           models.TransactionStatusFailed,
		})
	}
}

func handleRazorpaySubscriptionCharged(subscription, payment map[string]interface{}) {
	subID, _ := subscription["id"].(string)
	if subID == "" {
		return
	}

	donation, err := utils.GetDonationByGatewayOrderID(subID)
	if err != nil {
		utils.LogError("Subscription webhook for unknown subscription %s", subID)
		return
	}

	paymentID, _ := payment["id"].(string)
	firstCharge := donation.Status != models.DonationStatusSuccess

	donation.Status = models.DonationStatusSuccess
	donation.GatewayPaymentID = paymentID
	if err := config.DB.Save(donation).Error; err != nil {
		utils.LogError("Failed to update donation %d from subscription webhook: %v", donation.ID, err)
		return
	}

	recordRazorpayTransaction(donation, paymentID)
	if firstCharge {
		go ProcessCertificate(donation.ID)
	}
}

// POST /donations/webhook/cashfree
//
// Cashfree signs the timestamp concatenated with the raw body. Only the
// payment success event flips the donation; failures are recorded as
// failed attempts.
func CashfreeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequest(c, "Could not read request body", nil)
		return
	}

	timestamp := c.GetHeader("x-webhook-timestamp")
	signature := c.GetHeader("x-webhook-signature")
	if !utils.VerifyCashfreeWebhookSignature(body, timestamp, signature) {
		utils.LogError("Cashfree webhook signature mismatch")
		utils.BadRequest(c, "Invalid webhook signature", nil)
		return
	}

	var event struct {
		Type string `json:"type"`
		Data struct {
			Order struct {
				OrderID string `json:"order_id"`
			} `json:"order"`
			Payment struct {
				CfPaymentID   json.Number `json:"cf_payment_id"`
				PaymentStatus string      `json:"payment_status"`
				PaymentAmount float64     `json:"payment_amount"`
				PaymentMethod string      `json:"payment_group"`
			} `json:"payment"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		utils.BadRequest(c, "Invalid webhook payload", nil)
		return
	}

	utils.LogInfo("Cashfree webhook event: %s for order %s", event.Type, event.Data.Order.OrderID)

	donation, err := utils.GetDonationByGatewayOrderID(event.Data.Order.OrderID)
	if err != nil {
		utils.LogError("Cashfree webhook for unknown order %s", event.Data.Order.OrderID)
		utils.Success(c, "Webhook processed", nil)
		return
	}

	switch event.Data.Payment.PaymentStatus {
	case "SUCCESS":
		if donation.Status != models.DonationStatusSuccess {
			donation.Status = models.DonationStatusSuccess
			donation.GatewayPaymentID = event.Data.Payment.CfPaymentID.String()
			if err := config.DB.Save(donation).Error; err != nil {
				utils.LogError("Failed to update donation %d from webhook: %v", donation.ID, err)
				break
			}
			now := time.Now()
			recordTransaction(donation, models.PaymentTransaction{
				Gateway:          models.GatewayCashfree,
				GatewayOrderID:   donation.GatewayOrderID,
				GatewayPaymentID: donation.GatewayPaymentID,
				GrossAmount:      donation.Amount,
				NetReceivable:    donation.Amount,
				PaymentMethod:    event.Data.Payment.PaymentMethod,
				Status:           models.TransactionStatusCaptured,
				CapturedAt:       &now,
			})
			go ProcessCertificate(donation.ID)
		}
	case "FAILED", "USER_DROPPED":
		if donation.Status != models.DonationStatusSuccess {
			donation.Status = models.DonationStatusFailed
			if err := config.DB.Save(donation).Error; err != nil {
				utils.LogError("Failed to update donation %d from webhook: %v", donation.ID, err)
			}
		}
	}

	utils.Success(c, "Webhook processed", nil)
}
