package controllers

import (
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gob.Register(WizardState{})
	gob.Register(DonorDetails{})
}

// wizardTestRouter wires only the session-backed wizard endpoints; steps
// 1-3 never touch the database
func wizardTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("daansetu", store))

	router.GET("/donate/state", GetWizardState)
	router.POST("/donate/type", SetWizardDonationType)
	router.POST("/donate/amount", SetWizardAmount)
	router.POST("/donate/details", SetWizardDonorDetails)
	router.POST("/donate/back", WizardBack)
	router.POST("/donate/checkout", WizardCheckout)
	return router
}

// stubCreateOrder swaps the order pipeline for the test's duration
func stubCreateOrder(t *testing.T, fn func(*CreateOrderRequest, *uint) (*OrderResult, *utils.AppError)) {
	t.Helper()
	orig := createOrder
	createOrder = fn
	t.Cleanup(func() { createOrder = orig })
}

func (c *wizardClient) toPaymentStep() {
	c.do(http.MethodPost, "/donate/type", `{"donation_type":"onetime","advance":true}`)
	c.do(http.MethodPost, "/donate/amount", `{"preset":1000,"cause":"gausewa","advance":true}`)
	c.do(http.MethodPost, "/donate/details", `{
		"fullName":"Asha Devi","email":"asha@example.com","phone":"9876543210",
		"address":"12 MG Road","city":"Guwahati","state":"Assam","pincode":"781001"
	}`)
}

type wizardClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies []string
}

func (c *wizardClient) do(method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	c.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookieHeader := range c.cookies {
		req.Header.Add("Cookie", cookieHeader)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if setCookies := w.Result().Header.Values("Set-Cookie"); len(setCookies) > 0 {
		c.cookies = nil
		for _, sc := range setCookies {
			c.cookies = append(c.cookies, strings.SplitN(sc, ";", 2)[0])
		}
	}

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp.Data
}

func TestWizardFlowThroughDonorDetails(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}

	w, data := client.do(http.MethodGet, "/donate/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), data["step"])
	assert.Equal(t, "onetime", data["donation_type"])

	w, data = client.do(http.MethodPost, "/donate/type", `{"donation_type":"monthly","advance":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), data["step"])
	assert.Equal(t, "monthly", data["donation_type"])

	// below-minimum custom amount must not advance
	w, _ = client.do(http.MethodPost, "/donate/amount", `{"custom":"99","cause":"medical","advance":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, data = client.do(http.MethodPost, "/donate/amount", `{"custom":"100","advance":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), data["step"])
	assert.Equal(t, float64(100), data["effective_amount"])

	w, data = client.do(http.MethodPost, "/donate/details", `{
		"fullName":"Asha Devi","email":"asha@example.com","phone":"9876543210",
		"address":"12 MG Road","city":"Guwahati","state":"Assam","pincode":"781001"
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), data["step"])
	assert.Equal(t, true, data["donor_set"])
}

func TestWizardPresetThenCustomOverride(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}

	client.do(http.MethodPost, "/donate/type", `{"donation_type":"onetime","advance":true}`)

	_, data := client.do(http.MethodPost, "/donate/amount", `{"preset":5000}`)
	assert.Equal(t, float64(5000), data["amount"])
	assert.Equal(t, float64(5000), data["effective_amount"])

	_, data = client.do(http.MethodPost, "/donate/amount", `{"custom":"250"}`)
	assert.Equal(t, float64(0), data["amount"])
	assert.Equal(t, "250", data["custom_amount"])
	assert.Equal(t, float64(250), data["effective_amount"])
}

func TestWizardRejectsUnknownPreset(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}

	client.do(http.MethodPost, "/donate/type", `{"donation_type":"onetime","advance":true}`)
	w, _ := client.do(http.MethodPost, "/donate/amount", `{"preset":777}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardDetailsValidationFailureKeepsStep(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}

	client.do(http.MethodPost, "/donate/type", `{"donation_type":"onetime","advance":true}`)
	client.do(http.MethodPost, "/donate/amount", `{"preset":500,"cause":"feed","advance":true}`)

	w, _ := client.do(http.MethodPost, "/donate/details", `{"fullName":"X","email":"bad","phone":"1","address":"a","city":"b","state":"Assam","pincode":"12"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, data := client.do(http.MethodGet, "/donate/state", "")
	assert.Equal(t, float64(3), data["step"])
	assert.Equal(t, false, data["donor_set"])
}

func TestWizardCheckoutFailureKeepsState(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}
	client.toPaymentStep()

	stubCreateOrder(t, func(req *CreateOrderRequest, userID *uint) (*OrderResult, *utils.AppError) {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrOrderInitFailed, nil)
	})

	w, _ := client.do(http.MethodPost, "/donate/checkout", `{"gateway":"razorpay"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// everything collected so far survives the failed attempt
	_, data := client.do(http.MethodGet, "/donate/state", "")
	assert.Equal(t, float64(4), data["step"])
	assert.Equal(t, true, data["donor_set"])
	assert.Equal(t, float64(1000), data["effective_amount"])
	assert.Equal(t, "gausewa", data["cause"])
}

func TestWizardCheckoutSuccessResetsState(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}
	client.toPaymentStep()

	stubCreateOrder(t, func(req *CreateOrderRequest, userID *uint) (*OrderResult, *utils.AppError) {
		assert.Equal(t, float64(1000), req.Amount)
		assert.Equal(t, "razorpay", req.Gateway)
		return &OrderResult{Kind: OrderRazorpay, DonationID: 9, RazorpayOrderID: "order_123", Amount: req.Amount}, nil
	})

	w, data := client.do(http.MethodPost, "/donate/checkout", `{"gateway":"razorpay"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "order_123", data["razorpay_order_id"])
	assert.Equal(t, "collect", data["next_action"])

	_, data = client.do(http.MethodGet, "/donate/state", "")
	assert.Equal(t, float64(1), data["step"])
	assert.Equal(t, false, data["donor_set"])
}

func TestWizardTypeLockedAfterFirstStep(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}
	client.toPaymentStep()

	w, _ := client.do(http.MethodPost, "/donate/type", `{"donation_type":"monthly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, data := client.do(http.MethodGet, "/donate/state", "")
	assert.Equal(t, "onetime", data["donation_type"])
	assert.Equal(t, float64(4), data["step"])
}

func TestWizardBackKeepsData(t *testing.T) {
	client := &wizardClient{t: t, router: wizardTestRouter()}

	client.do(http.MethodPost, "/donate/type", `{"donation_type":"onetime","advance":true}`)
	client.do(http.MethodPost, "/donate/amount", `{"preset":2500,"cause":"rescue","advance":true}`)

	_, data := client.do(http.MethodPost, "/donate/back", "")
	assert.Equal(t, float64(2), data["step"])
	assert.Equal(t, float64(2500), data["amount"])
	assert.Equal(t, "rescue", data["cause"])

	// step endpoints refuse out-of-step mutations
	w, _ := client.do(http.MethodPost, "/donate/details", `{"fullName":"Asha"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
