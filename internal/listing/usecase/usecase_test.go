package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing/repository"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
)

func newUseCase(t *testing.T, log logger.ZapLogger) listing.UseCase {
	t.Helper()
	catalog, err := fixture.Load("", testNow)
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}
	opts := Options{
		BusinessSort: query.SortRating,
		ProductSort:  query.SortRelevant,
		PriceRange:   &query.PriceRange{Min: 0, Max: 1000},
	}
	return NewListingUseCase(repository.NewMemoryRepository(catalog), opts, log)
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ids(items []model.Listable) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ListingID()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListBusinessesDefaultSort(t *testing.T) {
	uc := newUseCase(t, logger.NewNop())

	res, err := uc.ListBusinesses(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListBusinesses: %v", err)
	}
	if res.Sort != query.SortRating || res.Matched != 6 {
		t.Fatalf("sort=%s matched=%d", res.Sort, res.Matched)
	}
	// equal ratings fall back to review count
	want := []string{"5", "2", "1", "3", "4", "6"}
	if got := ids(res.Items); !equal(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestListBusinessesFilters(t *testing.T) {
	uc := newUseCase(t, logger.NewNop())

	res, err := uc.ListBusinesses(context.Background(), &dto.ListingFilters{
		Location: "san francisco",
		OnlyOpen: true,
		Sort:     string(query.SortAlphabetical),
	})
	if err != nil {
		t.Fatalf("ListBusinesses: %v", err)
	}
	for _, item := range res.Items {
		b := item.(*model.Business)
		if !b.IsOpen {
			t.Errorf("closed business %s returned", b.ID)
		}
	}
	if want := []string{"1", "4", "6"}; !equal(ids(res.Items), want) {
		t.Errorf("got %v; want %v", ids(res.Items), want)
	}
}

func TestListProductsDefaultPriceRange(t *testing.T) {
	uc := newUseCase(t, logger.NewNop())
	ctx := context.Background()

	all, err := uc.ListProducts(ctx, &dto.ListingFilters{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if all.Matched != 6 {
		t.Errorf("default range matched %d; want 6", all.Matched)
	}

	limit := 50.0
	cheap, err := uc.ListProducts(ctx, &dto.ListingFilters{PriceMax: &limit, Sort: string(query.SortPriceLow)})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	prev := -1.0
	for _, item := range cheap.Items {
		p := item.(*model.Product)
		if p.Price > 50 {
			t.Errorf("product %s at %.2f exceeds max", p.ID, p.Price)
		}
		if p.Price < prev {
			t.Errorf("price-low order broken at %s", p.ID)
		}
		prev = p.Price
	}
	if cheap.Matched == 0 {
		t.Error("expected some products under 50")
	}
}

func TestListProductsInvertedRangeDisablesFilter(t *testing.T) {
	uc := newUseCase(t, logger.NewNop())

	lo, hi := 80.0, 20.0
	res, err := uc.ListProducts(context.Background(), &dto.ListingFilters{PriceMin: &lo, PriceMax: &hi})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if res.Matched != res.Total {
		t.Errorf("matched %d of %d; inverted range should not filter", res.Matched, res.Total)
	}
}

func TestListUnknownSortWarns(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	uc := newUseCase(t, logger.FromZap(zap.New(core)))

	res, err := uc.ListBusinesses(context.Background(), &dto.ListingFilters{Sort: "nearest"})
	if err != nil {
		t.Fatalf("ListBusinesses: %v", err)
	}
	if !res.Fallback || res.Sort != query.SortRelevant {
		t.Errorf("fallback=%v sort=%s", res.Fallback, res.Sort)
	}
	if !equal(ids(res.Items), []string{"1", "2", "3", "4", "5", "6"}) {
		t.Errorf("fallback should keep input order, got %v", ids(res.Items))
	}
	if logs.FilterMessage("unknown sort key, keeping input order").Len() != 1 {
		t.Error("expected a fallback warning")
	}
	if logs.FilterMessage("listing query").Len() != 1 {
		t.Error("expected a debug query entry")
	}
}

func TestFacets(t *testing.T) {
	uc := newUseCase(t, logger.NewNop())
	ctx := context.Background()

	all, err := uc.Facets(ctx, "")
	if err != nil {
		t.Fatalf("Facets: %v", err)
	}
	if all.Total != 12 || all.Businesses != 6 || all.Products != 6 {
		t.Errorf("facets = %+v", all)
	}

	products, _ := uc.Facets(ctx, model.KindProduct)
	if products.Businesses != 0 || products.Products != 6 {
		t.Errorf("product facets = %+v", products)
	}
}
