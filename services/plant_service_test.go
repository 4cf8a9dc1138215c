package services

import (
	"context"
	"encoding/hex"
	"errors"
	"plantie/dto"
	"plantie/models"
	"plantie/repositories"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const ficusURL = "https://example.com/img/ficus.png"

func TestDecodePlantImage(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected *string
	}{
		{name: "nil", raw: nil, expected: nil},
		{name: "empty", raw: []byte{}, expected: nil},
		{name: "hex text", raw: []byte(hex.EncodeToString([]byte(ficusURL))), expected: strPtr(ficusURL)},
		{name: "raw url bytes", raw: []byte(ficusURL), expected: strPtr(ficusURL)},
		{name: "invalid utf-8 is replaced", raw: []byte{0xff, 'a'}, expected: strPtr("\uFFFDa")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodePlantImage(tt.raw))
		})
	}
}

func TestEncodePlantImage_RoundTrip(t *testing.T) {
	assert.Nil(t, EncodePlantImage(""))
	assert.Nil(t, DecodePlantImage(EncodePlantImage("")))

	for _, url := range []string{ficusURL, "cafe", "ab12", "0000", "slika čempresa.png"} {
		t.Run(url, func(t *testing.T) {
			assert.Equal(t, []byte(hex.EncodeToString([]byte(url))), EncodePlantImage(url))
			assert.Equal(t, strPtr(url), DecodePlantImage(EncodePlantImage(url)))
		})
	}
}

func TestPlantService_Search(t *testing.T) {
	tests := []struct {
		name          string
		query         dto.PlantSearchQuery
		expectFilters int
	}{
		{name: "no query", query: dto.PlantSearchQuery{}, expectFilters: 0},
		{name: "term without flags", query: dto.PlantSearchQuery{Term: "fic"}, expectFilters: 0},
		{name: "flag must be literal true", query: dto.PlantSearchQuery{Term: "fic", ByName: "1"}, expectFilters: 0},
		{name: "by name", query: dto.PlantSearchQuery{Term: "fic", ByName: "true"}, expectFilters: 1},
		{name: "by name and category", query: dto.PlantSearchQuery{Term: "fic", ByName: "true", ByCategory: "true"}, expectFilters: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPlantRepository)
			mockRepo.On("Search", mock.Anything, mock.MatchedBy(func(filters []repositories.PlantFilter) bool {
				return len(filters) == tt.expectFilters
			})).Return([]models.Plant{
				{Code: 1, Name: "Ficus", Image: []byte(hex.EncodeToString([]byte(ficusURL)))},
				{Code: 2, Name: "Monstera"},
			}, nil)

			plants, err := NewPlantService(mockRepo).Search(context.Background(), tt.query)
			require.NoError(t, err)
			require.Len(t, plants, 2)
			assert.Equal(t, strPtr(ficusURL), plants[0].ImageURL)
			assert.Nil(t, plants[1].ImageURL)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPlantService_Search_StoreFailure(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	mockRepo.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("broken pipe"))

	_, err := NewPlantService(mockRepo).Search(context.Background(), dto.PlantSearchQuery{})
	assert.ErrorContains(t, err, "broken pipe")
}

func TestPlantService_FindByName(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	mockRepo.On("FindByName", mock.Anything, "Ficus").Return(&models.Plant{Code: 1, Name: "Ficus", Image: []byte(ficusURL)}, nil)
	mockRepo.On("FindByName", mock.Anything, "Nema").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByName", mock.Anything, "Kvar").Return(nil, errors.New("i/o timeout"))
	service := NewPlantService(mockRepo)
	ctx := context.Background()

	plant, err := service.FindByName(ctx, "Ficus")
	require.NoError(t, err)
	assert.Equal(t, strPtr(ficusURL), plant.ImageURL)

	_, err = service.FindByName(ctx, "Nema")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.FindByName(ctx, "Kvar")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPlantService_Create(t *testing.T) {
	price := decimal.RequireFromString("12.5")
	mockRepo := new(MockPlantRepository)
	mockRepo.On("Create", mock.Anything, models.Plant{
		Name:        "Ficus",
		Kind:        "Sobna",
		Description: "opis",
		Quantity:    3,
		Price:       price,
		Image:       []byte(hex.EncodeToString([]byte(ficusURL))),
	}).Return(&models.Plant{Code: 9, Name: "Ficus", Image: []byte(hex.EncodeToString([]byte(ficusURL)))}, nil)

	created, err := NewPlantService(mockRepo).Create(context.Background(), dto.CreatePlantInput{
		Name:        "Ficus",
		Kind:        "Sobna",
		Description: "opis",
		Quantity:    3,
		Price:       price,
		ImageURL:    ficusURL,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), created.Code)
	assert.Equal(t, strPtr(ficusURL), created.ImageURL)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_Delete_UnknownCodeSucceeds(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	mockRepo.On("Delete", mock.Anything, uint(42)).Return(gorm.ErrRecordNotFound)

	assert.NoError(t, NewPlantService(mockRepo).Delete(context.Background(), 42))
	mockRepo.AssertExpectations(t)
}

func strPtr(s string) *string {
	return &s
}
