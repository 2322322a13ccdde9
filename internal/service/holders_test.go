package service

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/entity"
)

type fakeHoldersClient struct {
	pages func(pageIndex int) (*entity.BlockvisionTokenHolders, error)
	calls int
}

func (f *fakeHoldersClient) GetTokenHolders(ctx context.Context, address string, pageIndex, pageSize int) (*entity.BlockvisionTokenHolders, error) {
	f.calls++
	return f.pages(pageIndex)
}

func holdersPage(count, nextPageIndex int) *entity.BlockvisionTokenHolders {
	data := make([]entity.BlockvisionHolderEntry, count)
	for i := range data {
		data[i] = entity.BlockvisionHolderEntry{
			Holder:     fmt.Sprintf("0xholder%04d", i),
			Percentage: entity.FlexFloat(1),
		}
	}
	return &entity.BlockvisionTokenHolders{
		Code: 0,
		Result: &entity.BlockvisionTokenHoldersResult{
			Data:          data,
			NextPageIndex: nextPageIndex,
		},
	}
}

func newTestHolderCounter(client holdersFetcher) *HolderCounter {
	return &HolderCounter{client: client, logger: zap.NewNop(), pageDelay: 0}
}

func TestCountHoldersSinglePage(t *testing.T) {
	page := &entity.BlockvisionTokenHolders{
		Code: 0,
		Result: &entity.BlockvisionTokenHoldersResult{
			Data: []entity.BlockvisionHolderEntry{
				{Holder: "0xAAA", Percentage: entity.FlexFloat(40)},
				{AccountAddress: "0xBBB", Percentage: entity.FlexFloat(30)},
				{Address: "0xCCC", Percentage: entity.FlexFloat(10)},
				{Percentage: entity.FlexFloat(5)},
				{Holder: "0xEEE", Percentage: entity.FlexFloat(5)},
			},
		},
	}
	client := &fakeHoldersClient{pages: func(int) (*entity.BlockvisionTokenHolders, error) { return page, nil }}

	summary := newTestHolderCounter(client).CountHolders(context.Background(), "0xtoken")

	if client.calls != 1 {
		t.Errorf("expected 1 page fetch, got %d", client.calls)
	}
	if summary.TotalHolders != 5 {
		t.Errorf("TotalHolders = %d, want 5", summary.TotalHolders)
	}
	wantAddrs := []string{"0xAAA", "0xBBB", "0xCCC", "Unknown", "0xEEE"}
	if len(summary.TopHolders) != len(wantAddrs) {
		t.Fatalf("TopHolders length = %d, want %d", len(summary.TopHolders), len(wantAddrs))
	}
	for i, want := range wantAddrs {
		if summary.TopHolders[i].Address != want {
			t.Errorf("TopHolders[%d].Address = %q, want %q", i, summary.TopHolders[i].Address, want)
		}
	}
	if summary.TopHolders[0].Percentage != 40 {
		t.Errorf("TopHolders[0].Percentage = %v, want 40", summary.TopHolders[0].Percentage)
	}
}

func TestCountHoldersAccumulatesAcrossPages(t *testing.T) {
	client := &fakeHoldersClient{}
	client.pages = func(pageIndex int) (*entity.BlockvisionTokenHolders, error) {
		if pageIndex == 1 {
			return holdersPage(50, 2), nil
		}
		return holdersPage(30, 0), nil
	}

	summary := newTestHolderCounter(client).CountHolders(context.Background(), "0xtoken")

	if client.calls != 2 {
		t.Errorf("expected 2 page fetches, got %d", client.calls)
	}
	if summary.TotalHolders != 80 {
		t.Errorf("TotalHolders = %d, want 80", summary.TotalHolders)
	}
	if len(summary.TopHolders) != 10 {
		t.Errorf("TopHolders length = %d, want 10 (first page only, capped)", len(summary.TopHolders))
	}
}

// Even with an upstream that always reports a full page and an
// ever-incrementing next page index, pagination must stop at the ceiling.
func TestCountHoldersStopsAtPageCeiling(t *testing.T) {
	client := &fakeHoldersClient{}
	client.pages = func(pageIndex int) (*entity.BlockvisionTokenHolders, error) {
		return holdersPage(50, pageIndex+1), nil
	}

	summary := newTestHolderCounter(client).CountHolders(context.Background(), "0xtoken")

	if client.calls != 1000 {
		t.Errorf("expected exactly 1000 page fetches, got %d", client.calls)
	}
	if summary.TotalHolders != 50000 {
		t.Errorf("TotalHolders = %d, want 50000", summary.TotalHolders)
	}
}

func TestCountHoldersKeepsPartialTotalOnPageError(t *testing.T) {
	client := &fakeHoldersClient{}
	client.pages = func(pageIndex int) (*entity.BlockvisionTokenHolders, error) {
		if pageIndex == 1 {
			return holdersPage(50, 2), nil
		}
		return nil, fmt.Errorf("upstream unavailable")
	}

	summary := newTestHolderCounter(client).CountHolders(context.Background(), "0xtoken")

	if summary.TotalHolders != 50 {
		t.Errorf("TotalHolders = %d, want partial total 50", summary.TotalHolders)
	}
	if len(summary.TopHolders) != 10 {
		t.Errorf("TopHolders length = %d, want 10", len(summary.TopHolders))
	}
}

func TestCountHoldersInvalidResponse(t *testing.T) {
	client := &fakeHoldersClient{pages: func(int) (*entity.BlockvisionTokenHolders, error) {
		return &entity.BlockvisionTokenHolders{Code: -1}, nil
	}}

	summary := newTestHolderCounter(client).CountHolders(context.Background(), "0xtoken")

	if summary.TotalHolders != 0 {
		t.Errorf("TotalHolders = %d, want 0", summary.TotalHolders)
	}
	if len(summary.TopHolders) != 0 {
		t.Errorf("TopHolders length = %d, want 0", len(summary.TopHolders))
	}
}

func TestCountHoldersStopsWhenNextPageNotGreater(t *testing.T) {
	client := &fakeHoldersClient{}
	client.pages = func(pageIndex int) (*entity.BlockvisionTokenHolders, error) {
		// Full page but the upstream keeps reporting the same page index.
		return holdersPage(50, pageIndex), nil
	}

	summary := newTestHolderCounter(client).CountHolders(context.Background(), "0xtoken")

	if client.calls != 1 {
		t.Errorf("expected 1 page fetch, got %d", client.calls)
	}
	if summary.TotalHolders != 50 {
		t.Errorf("TotalHolders = %d, want 50", summary.TotalHolders)
	}
}
