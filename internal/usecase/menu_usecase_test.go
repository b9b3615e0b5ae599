package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
	"canteen/internal/usecase"
)

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, itemID int64) (model.MenuItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) ListPopular(ctx context.Context, limit int) ([]model.MenuItem, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) Create(ctx context.Context, in repo.MenuItemInput) (model.MenuItem, error) {
	args := m.Called(ctx, in)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) Update(ctx context.Context, itemID int64, in repo.MenuItemInput) (model.MenuItem, error) {
	args := m.Called(ctx, itemID, in)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) Delete(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func menuFixture() []model.MenuItem {
	return []model.MenuItem{
		{ItemID: 1, Name: "Pork Sisig", Description: "with egg", Price: 50, CategoryID: 1, CanteenID: 1, IsAvailable: true},
		{ItemID: 2, Name: "Chicken Adobo", Price: 60, CategoryID: 1, CanteenID: 2, IsAvailable: true},
		{ItemID: 3, Name: "Halo-Halo", Price: 45, CategoryID: 2, CanteenID: 1, IsAvailable: false},
	}
}

func TestBrowse_NoFilterReturnsAll(t *testing.T) {
	menuRepo := &MenuRepoMock{}
	u := usecase.NewMenuUsecase(menuRepo, testLogger())
	menuRepo.On("List", mock.Anything).Return(menuFixture(), nil)

	items, err := u.Browse(context.Background(), usecase.MenuFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestBrowse_Filters(t *testing.T) {
	menuRepo := &MenuRepoMock{}
	u := usecase.NewMenuUsecase(menuRepo, testLogger())
	menuRepo.On("List", mock.Anything).Return(menuFixture(), nil)
	ctx := context.Background()

	items, err := u.Browse(ctx, usecase.MenuFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = u.Browse(ctx, usecase.MenuFilter{CategoryID: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ItemID)

	items, err = u.Browse(ctx, usecase.MenuFilter{CanteenID: 1, AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ItemID)
}

func TestBrowse_QueryMatchesNameAndDescription(t *testing.T) {
	menuRepo := &MenuRepoMock{}
	u := usecase.NewMenuUsecase(menuRepo, testLogger())
	menuRepo.On("List", mock.Anything).Return(menuFixture(), nil)
	ctx := context.Background()

	items, err := u.Browse(ctx, usecase.MenuFilter{Query: "  SISIG "})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ItemID)

	// 説明文にも当てる
	items, err = u.Browse(ctx, usecase.MenuFilter{Query: "egg"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ItemID)
}

func TestPopular_DefaultLimit(t *testing.T) {
	menuRepo := &MenuRepoMock{}
	u := usecase.NewMenuUsecase(menuRepo, testLogger())
	menuRepo.On("ListPopular", mock.Anything, 4).Return(menuFixture()[:2], nil)

	items, err := u.Popular(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	menuRepo.AssertExpectations(t)
}

func TestMenuCreate_ValidatesInput(t *testing.T) {
	menuRepo := &MenuRepoMock{}
	u := usecase.NewMenuUsecase(menuRepo, testLogger())
	ctx := context.Background()

	for _, in := range []repo.MenuItemInput{
		{Name: "", Price: 50},
		{Name: "   ", Price: 50},
		{Name: "Sisig", Price: 0},
		{Name: "Sisig", Price: -1},
	} {
		_, err := u.Create(ctx, in)
		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, 400, he.Status)
	}
	menuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuDelete_InvalidID(t *testing.T) {
	menuRepo := &MenuRepoMock{}
	u := usecase.NewMenuUsecase(menuRepo, testLogger())

	err := u.Delete(context.Background(), 0)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)
	menuRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
