package ticker

import (
	"context"
	"sync"

	"github.com/guttosm/tickerview/internal/provider"
)

// fakeFetcher is a counting provider double.
type fakeFetcher struct {
	mu sync.Mutex

	info    map[string]provider.Metadata
	infoErr error
	bars    []provider.Bar
	barsErr error

	infoCalls    int
	historyCalls int
	lastStart    string
	lastEnd      string
}

func (f *fakeFetcher) FetchHistory(_ context.Context, _ string, start, end string) ([]provider.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.historyCalls++
	f.lastStart, f.lastEnd = start, end
	if f.barsErr != nil {
		return nil, f.barsErr
	}
	return f.bars, nil
}

func (f *fakeFetcher) FetchInfo(_ context.Context, symbol string) (provider.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.infoCalls++
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info[symbol], nil
}

func (f *fakeFetcher) counts() (info, history int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.infoCalls, f.historyCalls
}

var _ provider.Fetcher = (*fakeFetcher)(nil)
