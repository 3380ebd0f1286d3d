package query

import (
	"testing"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

func TestQueryPriceRangeScenario(t *testing.T) {
	items := []model.Listable{
		&model.Product{ID: "cheap", Name: "Coffee", Price: 24.99},
		&model.Product{ID: "dear", Name: "Monitor", Price: 79.99},
	}

	got := ids(Query(items, Spec{PriceRange: &PriceRange{Min: 20, Max: 50}}))
	if !equalIDs(got, []string{"cheap"}) {
		t.Errorf("got %v; want [cheap]", got)
	}
}

func TestQuerySubsetProperty(t *testing.T) {
	items := append(sampleBusinesses(), sampleProducts()...)
	specs := []Spec{
		{},
		{Search: "coffee"},
		{Category: "food", OnlyOpen: true},
		{Location: "san francisco", SortKey: SortRating},
		{InStockOnly: true, PriceRange: &PriceRange{Min: 30, Max: 90}, SortKey: SortPriceHigh},
		{Search: "a", SortKey: SortAlphabetical},
	}

	for _, spec := range specs {
		pred := BuildPredicate(spec)
		got := Query(items, spec)

		seen := make(map[model.Listable]int)
		for _, item := range got {
			if !pred(item) {
				t.Errorf("spec %+v: %s in result but fails predicate", spec, item.ListingID())
			}
			seen[item]++
		}
		for _, item := range items {
			want := 0
			if pred(item) {
				want = 1
			}
			if seen[item] != want {
				t.Errorf("spec %+v: %s appears %d times; want %d", spec, item.ListingID(), seen[item], want)
			}
		}
	}
}

func TestQueryRelevantKeepsOrder(t *testing.T) {
	items := sampleBusinesses()
	got := ids(Query(items, Spec{SortKey: SortRelevant, OnlyVerified: true}))
	want := []string{"1", "2", "3", "5", "6"}
	if !equalIDs(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestQueryUnknownSortFallsBack(t *testing.T) {
	items := sampleBusinesses()
	res := Run(items, Spec{SortKey: "banana"})

	if !equalIDs(ids(res.Items), ids(items)) {
		t.Errorf("got %v; want input order", ids(res.Items))
	}
	if !res.Fallback || res.Sort != SortRelevant {
		t.Errorf("Fallback=%v Sort=%q; want true, relevant", res.Fallback, res.Sort)
	}
}

func TestQuerySorts(t *testing.T) {
	tests := []struct {
		name  string
		items []model.Listable
		key   SortKey
		want  []string
	}{
		// 2 and 5 tie on 4.9; 5 has more reviews
		{"rating", sampleBusinesses(), SortRating, []string{"5", "2", "1", "3", "4", "6"}},
		{"highest-rated", sampleBusinesses(), SortHighestRated, []string{"5", "2", "1", "3", "4", "6"}},
		{"popular businesses", sampleBusinesses(), SortPopular, []string{"4", "6", "3", "5", "1", "2"}},
		{"popular products", sampleProducts(), SortPopular, []string{"3", "6", "2", "5", "1", "4"}},
		{"most reviews", sampleBusinesses(), SortMostReviews, []string{"6", "3", "1", "5", "2", "4"}},
		{"price low", sampleProducts(), SortPriceLow, []string{"1", "4", "5", "3", "2", "6"}},
		{"price high", sampleProducts(), SortPriceHigh, []string{"6", "2", "3", "5", "4", "1"}},
		{"alphabetical ignores case", sampleProducts(), SortAlphabetical, []string{"4", "5", "1", "2", "6", "3"}},
		{"newest puts dated first", sampleProducts(), SortNewest, []string{"4", "1", "2", "3", "5", "6"}},
		{"newest without dates keeps order", sampleBusinesses(), SortNewest, []string{"1", "2", "3", "4", "5", "6"}},
		{"key is case-insensitive", sampleProducts(), " Price-Low ", []string{"1", "4", "5", "3", "2", "6"}},
	}

	for _, tt := range tests {
		got := ids(Query(tt.items, Spec{SortKey: tt.key}))
		if !equalIDs(got, tt.want) {
			t.Errorf("%s: got %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestQueryPriceSortMixedKinds(t *testing.T) {
	items := []model.Listable{
		&model.Business{ID: "b1", Name: "Shop"},
		&model.Product{ID: "p1", Name: "Dear", Price: 90},
		&model.Business{ID: "b2", Name: "Cafe"},
		&model.Product{ID: "p2", Name: "Cheap", Price: 10},
	}
	got := ids(Query(items, Spec{SortKey: SortPriceLow}))
	want := []string{"p2", "p1", "b1", "b2"}
	if !equalIDs(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestQueryIdempotent(t *testing.T) {
	items := append(sampleProducts(), sampleBusinesses()...)
	for _, key := range []SortKey{SortRelevant, SortRating, SortPopular, SortNewest, SortPriceLow, SortPriceHigh, SortAlphabetical, SortMostReviews, "banana"} {
		spec := Spec{Search: "e", SortKey: key}
		once := Query(items, spec)
		twice := Query(once, spec)
		if !equalIDs(ids(once), ids(twice)) {
			t.Errorf("sort %q: not idempotent: %v vs %v", key, ids(once), ids(twice))
		}
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	items := sampleProducts()
	before := ids(items)
	_ = Query(items, Spec{SortKey: SortPriceHigh})
	if !equalIDs(ids(items), before) {
		t.Errorf("input reordered: %v", ids(items))
	}
}

func TestRunCounts(t *testing.T) {
	res := Run(sampleProducts(), Spec{InStockOnly: true})
	if res.Total != 6 || res.Matched != 5 || len(res.Items) != 5 {
		t.Errorf("Total=%d Matched=%d len=%d; want 6, 5, 5", res.Total, res.Matched, len(res.Items))
	}
}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		in    SortKey
		want  SortKey
		known bool
	}{
		{"", SortRelevant, true},
		{"RATING", SortRating, true},
		{"nearest", SortRelevant, false},
	}
	for _, tt := range tests {
		got, known := ResolveSort(tt.in)
		if got != tt.want || known != tt.known {
			t.Errorf("ResolveSort(%q) = %q, %v; want %q, %v", tt.in, got, known, tt.want, tt.known)
		}
	}
}
