package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/adapter/memory"
	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port/mocks"
)

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	require.NoError(t, Seed(ctx, repo, configs.Storage{SeedDefaults: true}))
	require.NoError(t, Seed(ctx, repo, configs.Storage{SeedDefaults: true}))

	accounts, err := repo.ListSocialAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 4)
	assert.Equal(t, "facebook", accounts[0].Platform)
	assert.True(t, accounts[0].IsConnected)
	assert.Equal(t, "Not connected", accounts[3].Username)
	assert.False(t, accounts[3].IsConnected)

	campaigns, err := repo.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	require.NoError(t, Seed(ctx, repo, configs.Storage{SeedDemo: true}))
	require.NoError(t, Seed(ctx, repo, configs.Storage{SeedDemo: true}))

	campaigns, err := repo.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	c := campaigns[0]
	assert.Equal(t, "Summer Product Launch", c.Name)
	assert.Equal(t, domain.CampaignActive, c.Status)
	assert.Equal(t, "3.2", c.ClickRate)

	totals, err := repo.CampaignTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{
		ActiveCampaigns:  1,
		TotalImpressions: "12.5K",
		ClickRate:        "3.2%",
		AdSpend:          "$1,250",
	}, totals.Dashboard())

	accounts, err := repo.ListSocialAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSeedStopsOnStoreError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListSocialAccounts(mock.Anything).Return(nil, errors.New("db down")).Once()

	err := Seed(context.Background(), repo, configs.Storage{SeedDefaults: true, SeedDemo: true})
	assert.ErrorContains(t, err, "db down")
}
