package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatImpressions(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{12500, "12.5K"},
		{245200, "245.2K"},
		{1_000_000, "1.0M"},
		{2_345_678, "2.3M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatImpressions(tt.in), "impressions %d", tt.in)
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.0", FormatRate(0, 0))
	assert.Equal(t, "0.0", FormatRate(10, 0))
	assert.Equal(t, "3.2", FormatRate(405, 12500))
	// truncated, not rounded: 2/3 is 66.66%
	assert.Equal(t, "66.6", FormatRate(2, 3))
	assert.Equal(t, "100.0", FormatRate(5, 5))
}

func TestFormatSpend(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0"},
		{99, "$0.99"},
		{489200, "$4,892"},
		{123450, "$1,234.5"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSpend(tt.cents), "spend %d", tt.cents)
	}
}

func TestTotalsDashboard(t *testing.T) {
	var totals CampaignTotals
	totals.Add(Campaign{Status: CampaignActive, Impressions: 12500, Clicks: 405, Spend: 125000})
	totals.Add(Campaign{Status: CampaignPaused, Impressions: 500, Clicks: 5})

	assert.Equal(t, DashboardStats{
		ActiveCampaigns:  1,
		TotalImpressions: "13.0K",
		ClickRate:        "3.1%",
		AdSpend:          "$1,250",
	}, totals.Dashboard())
}
