package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

// MemoryRepository serves the catalog fixtures. Callers get copies, so the
// catalog itself is never modified.
type MemoryRepository struct {
	businesses []*model.Business
	products   []*model.Product
}

func NewMemoryRepository(c *fixture.Catalog) *MemoryRepository {
	return &MemoryRepository{businesses: c.Businesses, products: c.Products}
}

func (r *MemoryRepository) Businesses(ctx context.Context) ([]*model.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*model.Business, len(r.businesses))
	for i, b := range r.businesses {
		out[i] = copyBusiness(b)
	}
	return out, nil
}

func (r *MemoryRepository) Products(ctx context.Context) ([]*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*model.Product, len(r.products))
	for i, p := range r.products {
		out[i] = copyProduct(p)
	}
	return out, nil
}

func (r *MemoryRepository) BusinessByID(ctx context.Context, id string) (*model.Business, error) {
	for _, b := range r.businesses {
		if b.ID == id {
			return copyBusiness(b), nil
		}
	}
	return nil, errors.Wrapf(listing.ErrNotFound, "business %q", id)
}

func (r *MemoryRepository) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return copyProduct(p), nil
		}
	}
	return nil, errors.Wrapf(listing.ErrNotFound, "product %q", id)
}

func copyBusiness(b *model.Business) *model.Business {
	c := *b
	return &c
}

func copyProduct(p *model.Product) *model.Product {
	c := *p
	if p.OriginalPrice != nil {
		orig := *p.OriginalPrice
		c.OriginalPrice = &orig
	}
	return &c
}
