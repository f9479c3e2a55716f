package listorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwalk/aisle-engine/internal/catalog"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/listorder"
	"github.com/shopwalk/aisle-engine/internal/mocks"
	"github.com/shopwalk/aisle-engine/internal/ordering"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/types"
)

type testSorterMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	catalog  *mocks.MockCatalog
	resolver *mocks.MockResolver
	sorter   listorder.Sorter
}

func setupTestSorter(t *testing.T) *testSorterMocks {
	ctrl := gomock.NewController(t)
	tm := &testSorterMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		catalog:  mocks.NewMockCatalog(ctrl),
		resolver: mocks.NewMockResolver(ctrl),
	}
	tm.sorter = listorder.NewSorter(tm.store, tm.catalog, tm.resolver)
	return tm
}

func tearDownTestSorter(tm *testSorterMocks) {
	tm.ctrl.Finish()
}

func TestShoppingOrder(t *testing.T) {
	tm := setupTestSorter(t)
	defer tearDownTestSorter(tm)

	listID := uuid.New()
	list := &schema.ShoppingList{ID: listID, UserID: "user-1", StoreID: types.StringPtr("store-1"), Status: schema.ListStatusActive}
	items := []schema.ListItem{
		{ID: 1, ListID: listID, ProductID: types.StringPtr("p-whole"), Name: "Whole milk", CategoryID: types.Int64Ptr(3), SortPosition: 0},
		{ID: 2, ListID: listID, ProductID: types.StringPtr("p-bread"), Name: "Bread", CategoryID: types.Int64Ptr(2), SortPosition: 1},
	}

	tm.store.EXPECT().GetList(gomock.Any(), listID).Return(list, nil)
	tm.store.EXPECT().GetListItems(gomock.Any(), listID).Return(items, nil)
	tm.catalog.EXPECT().
		GetProducts(gomock.Any(), []string{"p-whole", "p-bread"}).
		Return(map[string]catalog.Product{
			"p-whole": {ID: "p-whole", DemandGroup: types.StringPtr("Dairy"), DemandSubGroup: types.StringPtr("Milk")},
			"p-bread": {ID: "p-bread", DemandGroup: types.StringPtr("Bakery"), DemandSubGroup: types.StringPtr("Bread")},
		}, nil)
	tm.catalog.EXPECT().GetCategories(gomock.Any()).Return([]catalog.Category{
		{ID: 2, Name: "Bakery", DefaultSortPosition: 2},
		{ID: 3, Name: "Dairy", DefaultSortPosition: 3},
	}, nil)
	tm.resolver.EXPECT().
		ResolveHierarchicalOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input ordering.HierarchyInput) (*ordering.HierarchicalOrder, error) {
			assert.Equal(t, "store-1", *input.StoreID)
			assert.Equal(t, []string{"Dairy", "Bakery"}, input.Groups)
			assert.Equal(t, []string{"Bakery", "Dairy"}, input.DefaultGroupOrder)
			return &ordering.HierarchicalOrder{
				GroupOrder:    []string{"Dairy", "Bakery"},
				SubgroupOrder: map[string][]string{"Dairy": {"Milk"}, "Bakery": {"Bread"}},
				ProductOrder: map[domain.Scope][]string{
					domain.ProductScope("Dairy", "Milk"):   {"p-whole"},
					domain.ProductScope("Bakery", "Bread"): {"p-bread"},
				},
			}, nil
		})

	result, err := tm.sorter.ShoppingOrder(context.Background(), listID, nil)
	require.NoError(t, err)
	assert.Equal(t, listID, result.ListID)
	assert.Equal(t, "store-1", *result.StoreID)
	require.Len(t, result.Sections, 2)
	assert.Equal(t, "Dairy", *result.Sections[0].Group)
	assert.Equal(t, "Whole milk", result.Sections[0].Items[0].Name)
	assert.Equal(t, "Bakery", *result.Sections[1].Group)
}

func TestShoppingOrder_StoreOverride(t *testing.T) {
	tm := setupTestSorter(t)
	defer tearDownTestSorter(tm)

	listID := uuid.New()
	tm.store.EXPECT().
		GetList(gomock.Any(), listID).
		Return(&schema.ShoppingList{ID: listID, StoreID: types.StringPtr("store-1")}, nil)
	tm.store.EXPECT().GetListItems(gomock.Any(), listID).Return(nil, nil)
	tm.catalog.EXPECT().GetProducts(gomock.Any(), gomock.Nil()).Return(map[string]catalog.Product{}, nil)
	tm.catalog.EXPECT().GetCategories(gomock.Any()).Return(nil, nil)
	tm.resolver.EXPECT().
		ResolveHierarchicalOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input ordering.HierarchyInput) (*ordering.HierarchicalOrder, error) {
			assert.Equal(t, "store-2", *input.StoreID)
			return &ordering.HierarchicalOrder{}, nil
		})

	result, err := tm.sorter.ShoppingOrder(context.Background(), listID, types.StringPtr("store-2"))
	require.NoError(t, err)
	assert.Empty(t, result.Sections)
}

func TestShoppingOrder_ListNotFound(t *testing.T) {
	tm := setupTestSorter(t)
	defer tearDownTestSorter(tm)

	tm.store.EXPECT().GetList(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := tm.sorter.ShoppingOrder(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestShoppingOrder_CatalogError(t *testing.T) {
	tm := setupTestSorter(t)
	defer tearDownTestSorter(tm)

	listID := uuid.New()
	tm.store.EXPECT().GetList(gomock.Any(), listID).Return(&schema.ShoppingList{ID: listID}, nil)
	tm.store.EXPECT().GetListItems(gomock.Any(), listID).Return(nil, nil)
	tm.catalog.EXPECT().GetProducts(gomock.Any(), gomock.Any()).Return(nil, errors.New("catalog down"))

	_, err := tm.sorter.ShoppingOrder(context.Background(), listID, nil)
	assert.Error(t, err)
}
