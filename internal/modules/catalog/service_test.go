package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsFallbackOnly(t *testing.T) {
	s := NewService(nil, nil)

	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "gitislife-sticker-pack", products[0].ID)
}

func TestGetProduct(t *testing.T) {
	s := NewService(nil, nil)

	p, err := s.GetProduct(context.Background(), "git-is-life-tee")
	require.NoError(t, err)
	assert.Equal(t, "Git is Life T-Shirt", p.Name)
	assert.Equal(t, "29.99", p.DisplayPrice())
	assert.Equal(t, []string{"S", "M", "L", "XL", "2XL"}, p.Sizes)

	_, err = s.GetProduct(context.Background(), "missing")
	assert.Error(t, err)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Unisex Tee", baseName("Unisex Tee - Black / M"))
	assert.Equal(t, "Sticker Pack", baseName("Sticker Pack"))
}
