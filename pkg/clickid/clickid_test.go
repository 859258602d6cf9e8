package clickid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/landingkit/trafficid/pkg/clickid"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params map[string]string
		want   clickid.Click
		found  bool
	}{
		{
			name:   "gclid precedes fbclid",
			params: map[string]string{"fbclid": "f1", "gclid": "g1"},
			want:   clickid.Click{ID: "g1", Platform: "Google Ads", Channel: clickid.ChannelSearch, Param: "gclid"},
			found:  true,
		},
		{
			name:   "single fbclid",
			params: map[string]string{"fbclid": "f1", "utm_source": "facebook"},
			want:   clickid.Click{ID: "f1", Platform: "Meta Ads", Channel: clickid.ChannelSocial, Param: "fbclid"},
			found:  true,
		},
		{
			name:   "empty value is skipped",
			params: map[string]string{"gclid": "  ", "msclkid": "m1"},
			want:   clickid.Click{ID: "m1", Platform: "Microsoft Ads", Channel: clickid.ChannelSearch, Param: "msclkid"},
			found:  true,
		},
		{
			name:   "value is trimmed",
			params: map[string]string{"ttclid": " t1 "},
			want:   clickid.Click{ID: "t1", Platform: "TikTok Ads", Channel: clickid.ChannelSocial, Param: "ttclid"},
			found:  true,
		},
		{
			name:   "no click id",
			params: map[string]string{"utm_source": "newsletter"},
			found:  false,
		},
		{
			name:   "nil params",
			params: nil,
			found:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := clickid.Extract(tc.params)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, len(clickid.Table))
	for _, p := range clickid.Table {
		assert.False(t, seen[p.Name], "duplicate parameter %q", p.Name)
		seen[p.Name] = true
		assert.NotEmpty(t, p.Platform, p.Name)
		assert.NotEmpty(t, p.Channel, p.Name)
	}
	assert.GreaterOrEqual(t, len(clickid.Table), 20)
}

func TestExtractFrom_CustomOrder(t *testing.T) {
	t.Parallel()

	table := []clickid.Param{
		{Name: "fbclid", Platform: "Meta Ads", Channel: clickid.ChannelSocial},
		{Name: "gclid", Platform: "Google Ads", Channel: clickid.ChannelSearch},
	}
	got, ok := clickid.ExtractFrom(table, map[string]string{"fbclid": "f1", "gclid": "g1"})
	assert.True(t, ok)
	assert.Equal(t, "f1", got.ID)
}
