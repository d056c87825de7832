package service

import (
	"context"
	"testing"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShoesServiceForTest(t *testing.T) (*ShoesService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t)
	svc := NewShoesService(
		repository.NewShoesRepository(db),
		repository.NewShoesVariantRepository(db),
		repository.NewCartRepository(db),
		repository.NewCategoryRepository(db),
	)
	return svc, db
}

func TestSearchShoesClampsPageAndBuildsSummary(t *testing.T) {
	svc, db := newShoesServiceForTest(t)
	old, _ := createTestShoesWithVariant(t, db, "Alpha", 400000, "40", "Red", 0)
	require.NoError(t, db.Model(old).Update("created_at", time.Now().AddDate(0, 0, -30)).Error)
	fresh, _ := createTestShoesWithVariant(t, db, "Beta", 500000, "41", "Blue", 3)
	require.NoError(t, db.Create(&models.ShoesImage{ShoesID: fresh.ID, URL: "https://img/beta-1.jpg"}).Error)
	require.NoError(t, db.Create(&models.ShoesImage{ShoesID: fresh.ID, URL: "https://img/beta-thumb.jpg", IsThumbnail: true, SortOrder: 1}).Error)

	page, err := svc.SearchShoes(repository.ShoesListFilter{Page: 9, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Beta", page.Items[0].Name)
	assert.Equal(t, "https://img/beta-thumb.jpg", page.Items[0].Thumbnail)
	assert.True(t, page.Items[0].IsNew)
	assert.False(t, page.Items[0].OutOfStock)

	page, err = svc.SearchShoes(repository.ShoesListFilter{Page: 1, PageSize: 1, Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alpha", page.Items[0].Name)
	assert.Equal(t, constants.PlaceholderThumbnailURL, page.Items[0].Thumbnail)
	assert.True(t, page.Items[0].OutOfStock)
	assert.False(t, page.Items[0].IsNew)
}

func TestSuggestionsMinimumLength(t *testing.T) {
	svc, db := newShoesServiceForTest(t)
	createTestShoesWithVariant(t, db, "Hunter Street", 400000, "40", "Red", 1)

	got, err := svc.Suggestions("h")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Suggestions("hun")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hunter Street"}, got)
}

func TestGetShoesDetail(t *testing.T) {
	svc, db := newShoesServiceForTest(t)
	category := &models.Category{Name: "running", DisplayName: "Running"}
	require.NoError(t, db.Create(category).Error)
	shoes, _ := createTestShoesWithVariant(t, db, "Hunter", 500000, "42", "Black", 2)
	require.NoError(t, db.Model(shoes).Update("category_id", category.ID).Error)
	require.NoError(t, db.Create(&models.ShoesVariant{ShoesID: shoes.ID, Size: "43", Color: "Black", Stock: 1}).Error)
	sibling, _ := createTestShoesWithVariant(t, db, "Runner", 300000, "40", "White", 5)
	require.NoError(t, db.Model(sibling).Update("category_id", category.ID).Error)

	detail, err := svc.GetShoesDetail(context.Background(), shoes.ID)
	require.NoError(t, err)
	assert.Equal(t, "Running", detail.CategoryName)
	assert.Equal(t, []string{constants.PlaceholderImageURL}, detail.Images)
	assert.Equal(t, []string{"42", "43"}, detail.Sizes)
	assert.Equal(t, []string{"Black"}, detail.Colors)
	assert.Equal(t, 3, detail.TotalStock)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "Runner", detail.Related[0].Name)

	_, err = svc.GetShoesDetail(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrShoesNotFound)
}

func TestShoesDetailWithoutCategory(t *testing.T) {
	svc, db := newShoesServiceForTest(t)
	shoes, _ := createTestShoesWithVariant(t, db, "Hunter", 500000, "42", "Black", 2)
	detail, err := svc.GetShoesDetail(context.Background(), shoes.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultCategoryName, detail.CategoryName)
	assert.Empty(t, detail.Related)
}

func TestCreateUpdateDeleteShoes(t *testing.T) {
	svc, db := newShoesServiceForTest(t)
	user := createTestUser(t, db, "buyer@example.com")

	created, err := svc.CreateShoes(ShoesInput{
		Name:      "Hunter X",
		Brand:     "Biti's",
		Type:      "for_male",
		BasePrice: decimal.NewFromInt(790000),
		Images:    []ShoesImageInput{{URL: "https://img/a.jpg", IsThumbnail: true}},
		Variants:  []ShoesVariantInput{{Size: "42", Color: "Black", Stock: 5}, {Size: "43", Color: "Black", Stock: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ShoesTypeMale, created.Type)
	require.Len(t, created.Variants, 2)
	require.Len(t, created.Images, 1)

	updated, err := svc.UpdateShoes(context.Background(), created.ID, ShoesInput{
		Name:      "Hunter X2",
		BasePrice: decimal.NewFromInt(800000),
		Variants:  []ShoesVariantInput{{Size: "42", Color: "black", Stock: 99}, {Size: "44", Color: "Black", Stock: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hunter X2", updated.Name)
	assert.Len(t, updated.Variants, 3)
	assert.Len(t, updated.Images, 1)

	createTestCartItem(t, db, user.ID, created.Variants[0].ID, 1, 790000)
	require.NoError(t, svc.DeleteShoes(context.Background(), created.ID))
	assert.Equal(t, int64(0), countRows(t, db, &models.Shoes{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.ShoesVariant{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.ShoesImage{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.CartItem{}))

	assert.ErrorIs(t, svc.DeleteShoes(context.Background(), created.ID), ErrShoesNotFound)
}

func TestCreateShoesValidation(t *testing.T) {
	svc, _ := newShoesServiceForTest(t)
	_, err := svc.CreateShoes(ShoesInput{Name: " "})
	assert.ErrorIs(t, err, ErrShoesNameRequired)
	_, err = svc.CreateShoes(ShoesInput{Name: "A", BasePrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrShoesPriceInvalid)
	_, err = svc.CreateShoes(ShoesInput{Name: "A", Type: "KIDS"})
	assert.ErrorIs(t, err, ErrShoesTypeInvalid)
	missing := uint(77)
	_, err = svc.CreateShoes(ShoesInput{Name: "A", CategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
