package query

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

// Result is the outcome of Run. Sort is the ordering actually applied;
// Fallback is set when the requested key was not recognised.
type Result struct {
	Items    []model.Listable
	Total    int
	Matched  int
	Sort     SortKey
	Fallback bool
}

// Query filters items with BuildPredicate(spec) and orders the matches by
// spec.SortKey. The input slice is left untouched.
func Query(items []model.Listable, spec Spec) []model.Listable {
	return Run(items, spec).Items
}

func Run(items []model.Listable, spec Spec) Result {
	pred := BuildPredicate(spec)

	out := make([]model.Listable, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}

	key, known := ResolveSort(spec.SortKey)
	if less := comparator(key); less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	return Result{
		Items:    out,
		Total:    len(items),
		Matched:  len(out),
		Sort:     key,
		Fallback: !known,
	}
}

// ResolveSort normalises key. Empty resolves to SortRelevant; unknown keys
// resolve to SortRelevant with known=false.
func ResolveSort(key SortKey) (resolved SortKey, known bool) {
	k := SortKey(strings.ToLower(strings.TrimSpace(string(key))))
	switch k {
	case "":
		return SortRelevant, true
	case SortRelevant, SortRating, SortHighestRated, SortPopular, SortNewest,
		SortPriceLow, SortPriceHigh, SortAlphabetical, SortMostReviews:
		return k, true
	}
	return SortRelevant, false
}

type lessFunc func(a, b model.Listable) bool

// comparator returns nil for SortRelevant, which keeps input order.
func comparator(key SortKey) lessFunc {
	switch key {
	case SortRating, SortHighestRated:
		return func(a, b model.Listable) bool {
			ra, rb := rating(a), rating(b)
			if ra != rb {
				return ra > rb
			}
			return reviews(a) > reviews(b)
		}
	case SortPopular:
		return func(a, b model.Listable) bool { return popularity(a) > popularity(b) }
	case SortMostReviews:
		return func(a, b model.Listable) bool { return reviews(a) > reviews(b) }
	case SortNewest:
		return func(a, b model.Listable) bool {
			ta, tb := model.ListedAt(a), model.ListedAt(b)
			if ta.IsZero() != tb.IsZero() {
				return !ta.IsZero()
			}
			return ta.After(tb)
		}
	case SortPriceLow:
		return byPrice(func(pa, pb float64) bool { return pa < pb })
	case SortPriceHigh:
		return byPrice(func(pa, pb float64) bool { return pa > pb })
	case SortAlphabetical:
		caser := cases.Fold()
		return func(a, b model.Listable) bool {
			fa, _ := fieldsOf(a)
			fb, _ := fieldsOf(b)
			return caser.String(fa.name) < caser.String(fb.name)
		}
	}
	return nil
}

// byPrice puts priced items first; items without a price keep their order after them.
func byPrice(less func(pa, pb float64) bool) lessFunc {
	return func(a, b model.Listable) bool {
		pa, okA := price(a)
		pb, okB := price(b)
		if okA != okB {
			return okA
		}
		if !okA {
			return false
		}
		return less(pa, pb)
	}
}

func rating(item model.Listable) float64 {
	switch v := item.(type) {
	case *model.Business:
		return v.Rating
	case *model.Product:
		return v.Rating
	}
	return 0
}

func reviews(item model.Listable) int {
	switch v := item.(type) {
	case *model.Business:
		return v.ReviewCount
	case *model.Product:
		return v.ReviewCount
	}
	return 0
}

// popularity is followers for a business and review count for a product.
func popularity(item model.Listable) int {
	switch v := item.(type) {
	case *model.Business:
		return v.Followers
	case *model.Product:
		return v.ReviewCount
	}
	return 0
}

func price(item model.Listable) (float64, bool) {
	if p, ok := item.(*model.Product); ok {
		return p.Price, true
	}
	return 0, false
}
