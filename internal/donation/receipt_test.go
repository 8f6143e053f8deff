package donation

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceiptPDF(t *testing.T) {
	data, err := BuildReceiptPDF(Receipt{
		ReceiptNumber: "RCP-3-9",
		DonorName:     "Ravi",
		DonorEmail:    "ravi@example.org",
		Amount:        250,
		Currency:      "USD",
		TargetLabel:   "Goal: Water Wells",
		TransactionID: "pi_123",
		DonatedAt:     time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
		GeneratedAt:   time.Date(2026, 2, 14, 10, 31, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
