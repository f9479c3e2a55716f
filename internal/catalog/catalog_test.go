package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwalk/aisle-engine/internal/catalog"
	"github.com/shopwalk/aisle-engine/internal/mocks"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/types"
)

func TestResolveGroup(t *testing.T) {
	tests := []struct {
		name             string
		product          *catalog.Product
		categoryName     *string
		expectedGroup    *string
		expectedSubgroup *string
	}{
		{
			name:             "catalog group and sub-group",
			product:          &catalog.Product{DemandGroup: types.StringPtr("Dairy"), DemandSubGroup: types.StringPtr("Milk")},
			categoryName:     types.StringPtr("Chilled"),
			expectedGroup:    types.StringPtr("Dairy"),
			expectedSubgroup: types.StringPtr("Milk"),
		},
		{
			name:          "catalog group without sub-group",
			product:       &catalog.Product{DemandGroup: types.StringPtr("Dairy"), DemandSubGroup: types.StringPtr("")},
			expectedGroup: types.StringPtr("Dairy"),
		},
		{
			name:          "blank catalog group falls back to category",
			product:       &catalog.Product{DemandGroup: types.StringPtr(""), DemandSubGroup: types.StringPtr("Milk")},
			categoryName:  types.StringPtr("Chilled"),
			expectedGroup: types.StringPtr("Chilled"),
		},
		{
			name:          "free-text entry uses category",
			categoryName:  types.StringPtr("Party"),
			expectedGroup: types.StringPtr("Party"),
		},
		{
			name: "nothing known",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, subgroup := catalog.ResolveGroup(tt.product, tt.categoryName)
			assert.Equal(t, tt.expectedGroup, group)
			assert.Equal(t, tt.expectedSubgroup, subgroup)
		})
	}
}

func TestStoreCatalog_GetProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	c := catalog.NewStoreCatalog(st)

	st.EXPECT().
		GetProductsByIDs(gomock.Any(), []string{"p-oat", "p-missing"}).
		Return([]schema.Product{{ID: "p-oat", Name: "Oat milk", DemandGroup: types.StringPtr("Dairy")}}, nil)

	products, err := c.GetProducts(context.Background(), []string{"p-oat", "p-missing"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Oat milk", products["p-oat"].Name)
	assert.Equal(t, "Dairy", *products["p-oat"].DemandGroup)

	// No ids, no query
	products, err = c.GetProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)

	st.EXPECT().GetProductsByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = c.GetProducts(context.Background(), []string{"p-oat"})
	assert.Error(t, err)
}

func TestStoreCatalog_GetCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	c := catalog.NewStoreCatalog(st)

	st.EXPECT().GetCategories(gomock.Any()).Return([]schema.Category{
		{ID: 1, Name: "Produce", DefaultSortPosition: 1},
		{ID: 2, Name: "Bakery", DefaultSortPosition: 2},
	}, nil)

	categories, err := c.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Category{
		{ID: 1, Name: "Produce", DefaultSortPosition: 1},
		{ID: 2, Name: "Bakery", DefaultSortPosition: 2},
	}, categories)
}
