package ticker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/tickerview/internal/provider"
)

func TestValidator_IsValid(t *testing.T) {
	cases := []struct {
		name      string
		fetcher   *fakeFetcher
		symbol    string
		want      bool
		wantCalls int
	}{
		{
			name:      "non-empty metadata",
			fetcher:   &fakeFetcher{info: map[string]provider.Metadata{"IVV": {"longName": "iShares Core S&P 500 ETF"}}},
			symbol:    "IVV",
			want:      true,
			wantCalls: 1,
		},
		{
			name:      "metadata without long name still resolves",
			fetcher:   &fakeFetcher{info: map[string]provider.Metadata{"EXXT.F": {"symbol": "EXXT.F"}}},
			symbol:    "EXXT.F",
			want:      true,
			wantCalls: 1,
		},
		{
			name:      "empty metadata",
			fetcher:   &fakeFetcher{info: map[string]provider.Metadata{"NOT_A_REAL_TICKER": {}}},
			symbol:    "NOT_A_REAL_TICKER",
			want:      false,
			wantCalls: 1,
		},
		{
			name:      "provider error",
			fetcher:   &fakeFetcher{infoErr: errors.New("connection reset")},
			symbol:    "IVV",
			want:      false,
			wantCalls: 1,
		},
		{
			name:      "blank symbol skips the provider",
			fetcher:   &fakeFetcher{},
			symbol:    "   ",
			want:      false,
			wantCalls: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator(tc.fetcher)
			assert.Equal(t, tc.want, v.IsValid(context.Background(), tc.symbol))
			calls, _ := tc.fetcher.counts()
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestValidator_NoCaching(t *testing.T) {
	f := &fakeFetcher{info: map[string]provider.Metadata{"IVV": {"longName": "x"}}}
	v := NewValidator(f)
	for i := 0; i < 3; i++ {
		assert.True(t, v.IsValid(context.Background(), "IVV"))
	}
	calls, _ := f.counts()
	assert.Equal(t, 3, calls)
}
