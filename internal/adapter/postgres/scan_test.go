package postgres

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/core/domain"
)

// fakeRow is a pgx.Row holding one value per selected column, in order. A nil
// value leaves the destination at its zero value, as a SQL NULL would.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(f.values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if f.values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(f.values[i])
		if !v.Type().ConvertibleTo(target.Type()) {
			return fmt.Errorf("scan column %d: cannot put %s into %s", i, v.Type(), target.Type())
		}
		target.Set(v.Convert(target.Type()))
	}
	return nil
}

// countingRow records how many destinations a scan asked for.
type countingRow struct{ n *int }

func (c countingRow) Scan(dest ...any) error {
	*c.n = len(dest)
	return nil
}

func TestColumnListsMatchScanners(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		scan    func(pgx.Row) error
	}{
		{"campaigns", campaignColumns, func(r pgx.Row) error { _, err := scanCampaign(r); return err }},
		{"ads", adColumns, func(r pgx.Row) error { _, err := scanAd(r); return err }},
		{"social_accounts", socialAccountColumns, func(r pgx.Row) error { _, err := scanSocialAccount(r); return err }},
		{"posts", postColumns, func(r pgx.Row) error { _, err := scanPost(r); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n int
			require.NoError(t, tt.scan(countingRow{n: &n}))
			assert.Equal(t, len(strings.Split(tt.columns, ",")), n)
		})
	}
}

func TestScanCampaign(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	budget := int64(500000)
	c, err := scanCampaign(fakeRow{values: []any{
		int64(3), "Spring", "Widget", "Parents", "Awareness", "active",
		[]string{"facebook", "instagram"}, &budget, int64(12500), int64(405), int64(125000), created,
	}})
	require.NoError(t, err)

	assert.Equal(t, domain.Campaign{
		ID:          3,
		Name:        "Spring",
		Product:     "Widget",
		Audience:    "Parents",
		Goal:        "Awareness",
		Status:      domain.CampaignStatus("active"),
		Platforms:   []string{"facebook", "instagram"},
		Budget:      &budget,
		Impressions: 12500,
		Clicks:      405,
		ClickRate:   "3.2",
		Spend:       125000,
		CreatedAt:   created,
	}, c)
}

func TestScanCampaignNulls(t *testing.T) {
	c, err := scanCampaign(fakeRow{values: []any{
		int64(1), "n", "p", "a", "g", "draft", nil, nil, int64(0), int64(0), int64(0), time.Time{},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, c.Platforms)
	assert.Nil(t, c.Budget)
	assert.Equal(t, "0.0", c.ClickRate)
}

func TestScanPost(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	adID := int64(4)
	p, err := scanPost(fakeRow{values: []any{
		int64(9), &adID, nil, "hello", &at, nil, "scheduled", nil, at,
	}})
	require.NoError(t, err)

	assert.Equal(t, int64(9), p.ID)
	assert.Equal(t, &adID, p.AdID)
	assert.Nil(t, p.SocialAccountID)
	assert.Equal(t, &at, p.ScheduledAt)
	assert.Nil(t, p.PublishedAt)
	assert.Equal(t, domain.PostScheduled, p.Status)
	assert.Equal(t, domain.Blob{}, p.Engagement)
	assert.True(t, p.Due(at))
}

func TestScanAdEmptyPerformance(t *testing.T) {
	a, err := scanAd(fakeRow{values: []any{
		int64(2), nil, "H", "T", "Buy", "facebook", "draft", nil, time.Time{},
	}})
	require.NoError(t, err)
	assert.Nil(t, a.CampaignID)
	assert.Equal(t, domain.Blob{}, a.Performance)
}

func TestScanSocialAccountTokens(t *testing.T) {
	token := "secret"
	sa, err := scanSocialAccount(fakeRow{values: []any{
		int64(5), "twitter", "@me", true, &token, nil, time.Time{},
	}})
	require.NoError(t, err)
	assert.True(t, sa.IsConnected)
	assert.Equal(t, &token, sa.AccessToken)
	assert.Nil(t, sa.RefreshToken)
}

func TestOneMapsNoRows(t *testing.T) {
	p, err := one(pgx.Row(fakeRow{err: pgx.ErrNoRows}), scanPost)
	require.NoError(t, err)
	assert.Nil(t, p)

	boom := errors.New("conn reset")
	_, err = one(pgx.Row(fakeRow{err: boom}), scanPost)
	assert.ErrorIs(t, err, boom)
}
