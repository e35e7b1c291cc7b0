package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rkuiper/photos-export/internal/library"
)

// PhotoRepository is a mock for repository.PhotoRepository.
type PhotoRepository struct {
	mock.Mock

	// Photos is streamed through fn when Stream is not explicitly mocked
	// with an error.
	Photos []library.Photo
}

func (m *PhotoRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *PhotoRepository) Stream(ctx context.Context, fn func(library.Photo) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	for _, p := range m.Photos {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

// PlaceRepository is a mock for repository.PlaceRepository.
type PlaceRepository struct {
	mock.Mock
}

func (m *PlaceRepository) NamesForPhoto(ctx context.Context, versionModelID int64, mostSpecificFirst bool) ([]string, error) {
	args := m.Called(ctx, versionModelID, mostSpecificFirst)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

// FaceRepository is a mock for repository.FaceRepository.
type FaceRepository struct {
	mock.Mock
}

func (m *FaceRepository) NamesForPhoto(ctx context.Context, photoUUID string) ([]string, error) {
	args := m.Called(ctx, photoUUID)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}
