package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

// Predicate reports whether an item belongs in the result.
type Predicate func(item model.Listable) bool

type textFields struct {
	name        string
	description string
	category    string
	location    string
}

// fieldsOf returns false for anything other than a non-nil *Business or *Product.
func fieldsOf(item model.Listable) (textFields, bool) {
	switch v := item.(type) {
	case *model.Business:
		if v == nil {
			return textFields{}, false
		}
		return textFields{v.Name, v.Description, v.Category, v.Location}, true
	case *model.Product:
		if v == nil {
			return textFields{}, false
		}
		return textFields{v.Name, v.Description, v.Category, v.Location}, true
	}
	return textFields{}, false
}

// fold normalises s for case-insensitive substring matching. A Caser is
// stateful, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// criterion folds a user supplied filter value; empty and "all" disable it.
func criterion(s string) string {
	s = fold(strings.TrimSpace(s))
	if s == model.CategoryAll {
		return ""
	}
	return s
}

// BuildPredicate combines the criteria of spec with logical AND. Criteria
// that are absent, or that do not apply to an item's kind, always pass.
func BuildPredicate(spec Spec) Predicate {
	var preds []Predicate

	if search := fold(strings.TrimSpace(spec.Search)); search != "" {
		preds = append(preds, matchText(search))
	}
	if category := criterion(spec.Category); category != "" {
		preds = append(preds, matchField(category, func(f textFields) string { return f.category }))
	}
	if location := criterion(spec.Location); location != "" {
		preds = append(preds, matchField(location, func(f textFields) string { return f.location }))
	}
	if spec.OnlyOpen {
		preds = append(preds, businessFlag(func(b *model.Business) bool { return b.IsOpen }))
	}
	if spec.OnlyVerified {
		preds = append(preds, businessFlag(func(b *model.Business) bool { return b.IsVerified }))
	}
	if spec.InStockOnly {
		preds = append(preds, productFlag(func(p *model.Product) bool { return p.InStock }))
	}
	if spec.PriceRange.Valid() {
		r := *spec.PriceRange
		preds = append(preds, productFlag(func(p *model.Product) bool { return r.Contains(p.Price) }))
	}

	return func(item model.Listable) bool {
		if _, ok := fieldsOf(item); !ok {
			return false
		}
		for _, pred := range preds {
			if !pred(item) {
				return false
			}
		}
		return true
	}
}

func matchText(needle string) Predicate {
	return func(item model.Listable) bool {
		f, _ := fieldsOf(item)
		return strings.Contains(fold(f.name), needle) ||
			strings.Contains(fold(f.description), needle) ||
			strings.Contains(fold(f.category), needle)
	}
}

func matchField(needle string, field func(textFields) string) Predicate {
	return func(item model.Listable) bool {
		f, _ := fieldsOf(item)
		return strings.Contains(fold(field(f)), needle)
	}
}

func businessFlag(flag func(*model.Business) bool) Predicate {
	return func(item model.Listable) bool {
		b, ok := item.(*model.Business)
		return !ok || flag(b)
	}
}

func productFlag(flag func(*model.Product) bool) Predicate {
	return func(item model.Listable) bool {
		p, ok := item.(*model.Product)
		return !ok || flag(p)
	}
}
