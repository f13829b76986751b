package tebex

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerJSON(meta string, totals string) string {
	return `{
		"player": {
			"id": "069a79f4-44e9-4726-a5be-fca90e38aaf5",
			"created_at": "2021-06-01 10:30:00",
			"updated_at": "2021-06-02 10:30:00",
			"cache_expire": "2021-06-03 10:30:00",
			"username": "Notch",
			"meta": ` + meta + `,
			"plugin_username_id": 77
		},
		"banCount": 1,
		"chargebackRate": 0,
		"payments": [{"txn_id": "tbx-1", "time": 1700000000, "price": 9.99, "currency": "USD", "status": 1}],
		"purchaseTotals": ` + totals + `
	}`
}

func TestPlayers_Retrieve(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, playerJSON(`"{\"rank\":\"VIP\",\"votes\":3}"`, `{"USD": 9.99}`))

	info, err := c.Players.Retrieve(testContext(t), "Notch")
	require.NoError(t, err)

	assert.Equal(t, "/user/Notch", rec.path)
	assert.Equal(t, "Notch", info.Player.Username)
	assert.Equal(t, time.Date(2021, 6, 1, 10, 30, 0, 0, time.UTC), info.Player.CreatedAt)
	assert.Equal(t, map[string]any{"rank": "VIP", "votes": float64(3)}, info.Player.Meta)
	assert.Equal(t, 1, info.BanCount)
	assert.Contains(t, info.PurchaseTotals, "USD")

	require.Len(t, info.Payments, 1)
	assert.Equal(t, "tbx-1", info.Payments[0].TransactionID)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), info.Payments[0].Time)

	id, err := info.Player.MinecraftUUID()
	require.NoError(t, err)
	assert.Equal(t, "069a79f4-44e9-4726-a5be-fca90e38aaf5", id.String())
}

func TestPlayers_Retrieve_EmptyMetaAndTotals(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, playerJSON(`""`, `[]`))

	info, err := c.Players.Retrieve(testContext(t), "Notch")
	require.NoError(t, err)

	assert.Nil(t, info.Player.Meta)
	assert.NotNil(t, info.PurchaseTotals)
	assert.Empty(t, info.PurchaseTotals)
}

func TestPlayers_Retrieve_MalformedMeta(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, playerJSON(`"{broken"`, `[]`))

	info, err := c.Players.Retrieve(testContext(t), "Notch")
	assert.Nil(t, info)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRequest)
}

func TestPlayers_Retrieve_MissingUser(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Players.Retrieve(testContext(t), "")
	assert.ErrorIs(t, err, ErrMissingParameter)
	_, err = c.Players.Packages(testContext(t), " ")
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Zero(t, rec.Calls())
}

func TestPlayers_Packages(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `[
		{"txn_id": "tbx-1", "date": "2024-01-31 12:00:00", "quantity": 1, "package": {"id": 101, "name": "VIP"}},
		{"txn_id": "tbx-2", "date": "2024-02-01 12:00:00", "quantity": 3, "package": {"id": 102, "name": "Key"}}
	]`)

	purchases, err := c.Players.Packages(testContext(t), "069a79f444e94726a5befca90e38aaf5")
	require.NoError(t, err)

	assert.Equal(t, "/player/069a79f444e94726a5befca90e38aaf5/packages", rec.path)
	require.Len(t, purchases, 2)
	assert.Equal(t, SimplePackage{ID: 102, Name: "Key"}, purchases[1].Package)
	assert.Equal(t, 3, purchases[1].Quantity)
}
