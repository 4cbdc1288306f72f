//go:build integration
// +build integration

package ticker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/tickerview/internal/provider"
	"github.com/guttosm/tickerview/internal/ticker"
)

func liveClient() *provider.YahooClient {
	return provider.NewYahooClient(provider.WithTimeout(20 * time.Second))
}

func TestLive_DefaultWindowIVV(t *testing.T) {
	ctx := context.Background()
	rec, err := ticker.New(ctx, liveClient(), "IVV")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.DisplayName(ctx))

	rows := rec.PriceSeries(ctx)
	require.NotEmpty(t, rows)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.Before(rows[i-1].Date), "rows must be ascending")
	}
}

func TestLive_UnknownSymbol(t *testing.T) {
	_, err := ticker.New(context.Background(), liveClient(), "NOT_A_REAL_TICKER")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ticker.ErrUnknownSymbol))
}

func TestLive_ValidatorKnowsIVV(t *testing.T) {
	v := ticker.NewValidator(liveClient())
	assert.True(t, v.IsValid(context.Background(), "IVV"))
	assert.False(t, v.IsValid(context.Background(), "NOT_A_REAL_TICKER"))
}
