package resolve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkuiper/photos-export/internal/repository/mocks"
	"github.com/rkuiper/photos-export/internal/resolve"
)

func TestPlaceResolver_MostSpecific(t *testing.T) {
	ctx := context.Background()

	placesRepo := &mocks.PlaceRepository{}
	placesRepo.On("NamesForPhoto", ctx, int64(11), true).
		Return([]string{"Jordaan", "Amsterdam", "Netherlands"}, nil)

	r := resolve.NewPlaceResolver(placesRepo)
	name, err := r.Resolve(ctx, 11, false)
	require.NoError(t, err)
	require.Equal(t, "Jordaan", name)
}

func TestPlaceResolver_Hierarchy(t *testing.T) {
	ctx := context.Background()

	placesRepo := &mocks.PlaceRepository{}
	placesRepo.On("NamesForPhoto", ctx, int64(11), false).
		Return([]string{"Netherlands", "Amsterdam", "Jordaan"}, nil)

	r := resolve.NewPlaceResolver(placesRepo)
	name, err := r.Resolve(ctx, 11, true)
	require.NoError(t, err)
	require.Equal(t, "Netherlands, Amsterdam, Jordaan", name)
}

func TestPlaceResolver_NoPlaceIsEmptyNotError(t *testing.T) {
	ctx := context.Background()

	placesRepo := &mocks.PlaceRepository{}
	placesRepo.On("NamesForPhoto", ctx, int64(11), true).Return([]string{}, nil)

	r := resolve.NewPlaceResolver(placesRepo)
	name, err := r.Resolve(ctx, 11, false)
	require.NoError(t, err)
	require.Empty(t, name)
}

func TestPlaceResolver_LookupError(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("db gone")

	placesRepo := &mocks.PlaceRepository{}
	placesRepo.On("NamesForPhoto", ctx, int64(11), true).Return(nil, wantErr)

	r := resolve.NewPlaceResolver(placesRepo)
	_, err := r.Resolve(ctx, 11, false)
	require.ErrorIs(t, err, wantErr)
}
