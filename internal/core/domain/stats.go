package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CampaignTotals are the raw sums behind the dashboard.
type CampaignTotals struct {
	Active      int64
	Impressions int64
	Clicks      int64
	Spend       int64
}

// DashboardStats is the display-ready summary of all campaigns.
type DashboardStats struct {
	ActiveCampaigns  int64  `json:"activeCampaigns"`
	TotalImpressions string `json:"totalImpressions"`
	ClickRate        string `json:"clickRate"`
	AdSpend          string `json:"adSpend"`
}

// Add accumulates one campaign into the totals.
func (t *CampaignTotals) Add(c Campaign) {
	if c.Status == CampaignActive {
		t.Active++
	}
	t.Impressions += c.Impressions
	t.Clicks += c.Clicks
	t.Spend += c.Spend
}

// Dashboard formats the totals for display.
func (t CampaignTotals) Dashboard() DashboardStats {
	return DashboardStats{
		ActiveCampaigns:  t.Active,
		TotalImpressions: FormatImpressions(t.Impressions),
		ClickRate:        FormatRate(t.Clicks, t.Impressions) + "%",
		AdSpend:          FormatSpend(t.Spend),
	}
}

// FormatRate returns clicks/impressions as a percentage truncated to one
// decimal place. It is "0.0" when there are no impressions.
func FormatRate(clicks, impressions int64) string {
	if impressions <= 0 || clicks <= 0 {
		return "0.0"
	}
	tenths := clicks * 1000 / impressions
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}

// FormatImpressions abbreviates large counts: 12500 is "12.5K", 2300000 is
// "2.3M", 950 stays "950".
func FormatImpressions(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

var spendPrinter = message.NewPrinter(language.English)

// FormatSpend renders minor units as dollars with thousands separators. Cents
// are shown only when non-zero, without trailing zeros: 489200 is "$4,892",
// 123450 is "$1,234.5".
func FormatSpend(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	out := sign + "$" + spendPrinter.Sprintf("%d", cents/100)
	if rem := cents % 100; rem != 0 {
		out += "." + strings.TrimRight(fmt.Sprintf("%02d", rem), "0")
	}
	return out
}
