package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	all := Topics()
	got := Filter("")

	require.Equal(t, len(all), len(got))
	for i := range all {
		assert.Equal(t, all[i].ID, got[i].ID)
	}
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter("zzz-not-a-real-topic"))
}

func TestFilterMatchesTitleCaseInsensitive(t *testing.T) {
	got := Filter("NGINX")
	require.NotEmpty(t, got)
	assert.Equal(t, "web-nginx", got[0].ID)
}

func TestFilterMatchesCategory(t *testing.T) {
	got := Filter("jaringan")
	require.NotEmpty(t, got)
	for _, topic := range got {
		assert.Equal(t, "Jaringan", topic.Category)
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	got := Filter("server")
	require.Greater(t, len(got), 1)

	// Positions in the filtered view must be increasing catalog positions.
	pos := map[string]int{}
	for i, topic := range Topics() {
		pos[topic.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, pos[got[i-1].ID], pos[got[i].ID])
	}
}

func TestByID(t *testing.T) {
	topic := ByID("firewall-ufw")
	require.NotNil(t, topic)
	assert.Equal(t, "Firewall (UFW)", topic.Title)

	assert.Nil(t, ByID("missing"))
}

func TestCatalogStepOrderStable(t *testing.T) {
	topic := ByID("network-ip")
	require.NotNil(t, topic)
	require.Len(t, topic.Steps, 4)
	assert.Equal(t, "check-ip", topic.Steps[0].ID)
	assert.Equal(t, "restart-net", topic.Steps[3].ID)
}
