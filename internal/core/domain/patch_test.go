package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableDistinguishesAbsentNullAndValue(t *testing.T) {
	var p AdPatch
	require.NoError(t, json.Unmarshal([]byte(`{"headline":"new"}`), &p))
	assert.False(t, p.CampaignID.Set)

	p = AdPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"campaignId":null}`), &p))
	assert.True(t, p.CampaignID.Set)
	assert.False(t, p.CampaignID.Valid)

	p = AdPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"campaignId":12}`), &p))
	assert.Equal(t, Some(int64(12)), p.CampaignID)

	p = AdPatch{}
	assert.Error(t, json.Unmarshal([]byte(`{"campaignId":"12"}`), &p))
}

func TestCampaignPatchApply(t *testing.T) {
	budget := int64(5000)
	c := CampaignInput{
		Name:      "Summer",
		Product:   "Bikes",
		Audience:  "Adults",
		Goal:      "Sales",
		Platforms: []string{"facebook"},
		Budget:    &budget,
	}.NewCampaign(1, time.Unix(0, 0))

	impressions, clicks := int64(1000), int64(25)
	CampaignPatch{Impressions: &impressions, Clicks: &clicks, Budget: Null[int64]()}.Apply(&c)

	assert.Equal(t, "2.5", c.ClickRate)
	assert.Nil(t, c.Budget)
	assert.Equal(t, "Summer", c.Name)
	assert.Equal(t, CampaignDraft, c.Status)
}

func TestEmptyPatches(t *testing.T) {
	assert.True(t, CampaignPatch{}.Empty())
	assert.True(t, AdPatch{}.Empty())
	assert.True(t, SocialAccountPatch{}.Empty())
	assert.True(t, PostPatch{}.Empty())
	assert.False(t, PostPatch{ScheduledAt: Null[time.Time]()}.Empty())
}

func TestPostPatchCannotSetPublishedAt(t *testing.T) {
	var p PostPatch
	dec := json.NewDecoder(strings.NewReader(`{"publishedAt":"2024-01-01T00:00:00Z"}`))
	dec.DisallowUnknownFields()
	assert.Error(t, dec.Decode(&p))
}

func TestSocialAccountNeverSerializesTokens(t *testing.T) {
	token := "secret"
	sa := SocialAccount{ID: 1, Platform: "twitter", Username: "@x", AccessToken: &token, RefreshToken: &token}
	b, err := json.Marshal(sa)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "Token")
}

func TestPostDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Minute), now.Add(time.Minute)

	assert.True(t, Post{Status: PostScheduled, ScheduledAt: &past}.Due(now))
	assert.True(t, Post{Status: PostScheduled, ScheduledAt: &now}.Due(now))
	assert.False(t, Post{Status: PostScheduled, ScheduledAt: &future}.Due(now))
	assert.False(t, Post{Status: PostDraft, ScheduledAt: &past}.Due(now))
	assert.False(t, Post{Status: PostScheduled}.Due(now))
}

func TestCloneSharesNoMemory(t *testing.T) {
	a := Ad{Performance: Blob{"ctr": 1.5}}
	b := a.Clone()
	b.Performance["ctr"] = 2.0
	assert.Equal(t, 1.5, a.Performance["ctr"])
}
