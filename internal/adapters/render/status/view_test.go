package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luoyen/weibot/internal/domain"
)

func TestRenderEmpty(t *testing.T) {
	out := Render(nil)
	assert.Contains(t, out, "Tracked Accounts")
	assert.Contains(t, out, "accounts: 0")
	assert.Contains(t, out, "No accounts configured.")
}

func TestRenderShowsStateAndFlags(t *testing.T) {
	out := Render([]Row{
		{
			Account:   domain.Account{ID: "100", Enabled: true},
			Nickname:  "小宇宙",
			HasState:  true,
			Processed: 12,
			MaxID:     5099000103,
		},
		{
			Account: domain.Account{ID: "200", Enabled: false},
		},
	})

	assert.Contains(t, out, "小宇宙 (100)")
	assert.Contains(t, out, "processed: 12")
	assert.Contains(t, out, "high-water mark: 5099000103")

	// Nickname falls back to the id before first resolution.
	assert.Contains(t, out, "200 (200)")
	assert.Contains(t, out, "[disabled]")
	assert.Contains(t, out, "not yet bootstrapped")
}
