package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ListProducts fetches the full product catalog. Fetched entries refresh
// the product cache when one is configured.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err := p.validate(); err != nil {
			return nil, errors.Join(ErrInvalidPayload, err)
		}
	}

	if c.products != nil {
		for _, p := range products {
			c.products.Put(p.ID, p)
		}
	}

	return products, nil
}

// GetProduct fetches a single product by id, serving from the product cache
// when possible.
func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	if c.products != nil {
		if product, ok := c.products.Get(id); ok {
			return product, nil
		}
	}

	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &product); err != nil {
		return Product{}, err
	}

	if c.products != nil {
		c.products.Put(product.ID, product)
	}

	return product, nil
}

// CreateProduct creates a new catalog entry. Requires an admin bearer token.
func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (Product, error) {
	var product Product
	if token == "" {
		return product, ErrMissingToken
	}
	if err := in.Validate(); err != nil {
		return product, err
	}

	if err := c.do(ctx, http.MethodPost, "/products", token, in, &product); err != nil {
		return Product{}, err
	}

	if c.products != nil {
		c.products.Put(product.ID, product)
	}

	return product, nil
}

// UpdateProduct replaces the catalog entry with id. Requires an admin bearer token.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in ProductInput) (Product, error) {
	var product Product
	if token == "" {
		return product, ErrMissingToken
	}
	if err := in.Validate(); err != nil {
		return product, err
	}

	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), token, in, &product); err != nil {
		// The entry may have changed server-side even on failure paths like
		// a timeout, so stale cache entries are dropped either way.
		if c.products != nil {
			c.products.Remove(id)
		}
		return Product{}, err
	}

	if c.products != nil {
		c.products.Put(product.ID, product)
	}

	return product, nil
}

// DeleteProduct removes the catalog entry with id. Requires an admin bearer token.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	if token == "" {
		return ErrMissingToken
	}

	if c.products != nil {
		c.products.Remove(id)
	}

	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), token, nil, nil)
}
