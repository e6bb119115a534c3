package controllers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dfg-seva/DaanSetu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountInWords(t *testing.T) {
	cases := map[int]string{
		0:        "Zero Rupees Only",
		7:        "Seven Rupees Only",
		19:       "Nineteen Rupees Only",
		100:      "One Hundred Rupees Only",
		500:      "Five Hundred Rupees Only",
		1234:     "One Thousand Two Hundred Thirty Four Rupees Only",
		2500:     "Two Thousand Five Hundred Rupees Only",
		100000:   "One Lakh Rupees Only",
		2550000:  "Twenty Five Lakh Fifty Thousand Rupees Only",
		10000000: "One Crore Rupees Only",
	}
	for n, want := range cases {
		assert.Equal(t, want, AmountInWords(n), "n=%d", n)
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#FF6B00")
	assert.Equal(t, []int{255, 107, 0}, []int{r, g, b})

	r, g, b = hexToRGB("2D6A4F")
	assert.Equal(t, []int{45, 106, 79}, []int{r, g, b})

	r, g, b = hexToRGB("bad")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestMaskPan(t *testing.T) {
	assert.Equal(t, "ABCXXXX34F", maskPan("ABCDE1234F"))
	assert.Equal(t, "", maskPan(""))
	assert.Equal(t, "SHORT", maskPan("SHORT"))
}

func TestGenerateCertificateWritesPDF(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	donation := &models.Donation{
		ID:           42,
		DonorName:    "Asha Devi",
		DonorEmail:   "asha@example.com",
		DonorPan:     "ABCDE1234F",
		DonorAddress: "12 MG Road",
		DonorCity:    "Guwahati",
		DonorState:   "Assam",
		DonorPincode: "781001",
		Amount:       2500,
		Cause:        models.CauseGausewa,
		DonationType: models.DonationTypeOneTime,
		Gateway:      models.GatewayRazorpay,
		Status:       models.DonationStatusSuccess,
		CreatedAt:    time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
	}
	template := fallbackCertificateTemplate()

	path, err := GenerateCertificate(donation, template)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(certificateDir, "certificate_42.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestCauseLabel(t *testing.T) {
	assert.Equal(t, "Gau Sewa", causeLabel(models.CauseGausewa))
	assert.Equal(t, "Animal Rescue", causeLabel(models.CauseRescue))
	assert.Equal(t, "unknown", causeLabel("unknown"))
}
