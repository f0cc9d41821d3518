package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ultrapopular/internal/domain"
	"ultrapopular/internal/notify"
	"ultrapopular/internal/services"
)

func TestCartService_AddUnknownProduct(t *testing.T) {
	f := newFixture(t, nil)
	sess := domain.NewSession()
	feed := &notify.Feed{}

	_, err := f.carts.AddByID(sess, "nope", feed)
	require.Error(t, err)
	assert.Equal(t, services.KindProductNotFound, services.KindOf(err))
	assert.True(t, sess.Cart.Empty())
	assert.Empty(t, feed.Notices())
}

func TestCartService_RemoveAlwaysNotifies(t *testing.T) {
	f := newFixture(t, nil)
	sess := domain.NewSession()
	feed := &notify.Feed{}

	f.carts.Remove(sess, "pampers-1", feed)
	assert.Equal(t, []notify.Notice{{Kind: notify.Success, Text: "Produto removido do carrinho!"}}, feed.Notices())
}

func TestCartService_SetQuantity(t *testing.T) {
	f := newFixture(t, nil)
	sess := domain.NewSession()
	_, err := f.carts.AddByID(sess, "huggies-1", notify.Discard)
	require.NoError(t, err)

	feed := &notify.Feed{}
	f.carts.SetQuantity(sess, "huggies-1", 4, feed)
	assert.Equal(t, 4, sess.Cart.Quantity("huggies-1"))
	assert.Empty(t, feed.Notices())

	f.carts.SetQuantity(sess, "dorflex-1", 2, feed)
	assert.Equal(t, 1, sess.Cart.Len(), "no line is created for an absent product")

	f.carts.SetQuantity(sess, "huggies-1", 0, feed)
	assert.True(t, sess.Cart.Empty())
	assert.Equal(t, []notify.Notice{{Kind: notify.Success, Text: "Produto removido do carrinho!"}}, feed.Notices())
}

func TestCatalogService_SuggestStores(t *testing.T) {
	f := newFixture(t, nil)

	all, err := f.catalog.SuggestStores("")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	caxias, err := f.catalog.SuggestStores("duque de caxias")
	require.NoError(t, err)
	require.Len(t, caxias, 2)
	assert.Equal(t, "ultra-jardim-primavera", caxias[0].ID)

	none, err := f.catalog.SuggestStores("Niterói")
	require.NoError(t, err)
	assert.Empty(t, none)
}
