package rating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critica/internal/domain/entity"
	domainerrors "critica/internal/domain/errors"
	"critica/internal/errors"
)

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		wantErr bool
	}{
		{name: "lower bound", score: 0, wantErr: false},
		{name: "upper bound", score: 10, wantErr: false},
		{name: "middle", score: 5, wantErr: false},
		{name: "below range", score: -1, wantErr: true},
		{name: "above range", score: 11, wantErr: true},
		{name: "far below", score: -100, wantErr: true},
		{name: "far above", score: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScore(tt.score)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidScore))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateReleaseYear(t *testing.T) {
	const currentYear = 2026

	assert.NoError(t, ValidateReleaseYear(0, currentYear))
	assert.NoError(t, ValidateReleaseYear(currentYear, currentYear))
	assert.NoError(t, ValidateReleaseYear(1925, currentYear))

	assert.Error(t, ValidateReleaseYear(currentYear+1, currentYear))
	assert.Error(t, ValidateReleaseYear(-1, currentYear))
}

func TestEnsureSingleReview(t *testing.T) {
	author := uuid.New()
	other := uuid.New()
	existing := []*entity.Review{
		{ID: uuid.New(), AuthorID: other, Score: 7},
	}

	assert.NoError(t, EnsureSingleReview(author, nil))
	assert.NoError(t, EnsureSingleReview(author, existing))

	existing = append(existing, &entity.Review{ID: uuid.New(), AuthorID: author, Score: 3})
	err := EnsureSingleReview(author, existing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))

	// The other author is still free to submit a first review.
	assert.NoError(t, EnsureSingleReview(uuid.New(), existing))
}

func TestAverage(t *testing.T) {
	// No reviews is nil, not zero.
	assert.Nil(t, Average(nil))
	assert.Nil(t, Average([]int{}))

	got := Average([]int{6, 8, 10})
	require.NotNil(t, got)
	assert.InDelta(t, 8.0, *got, 1e-9)

	// A single zero score is distinguishable from the empty case.
	got = Average([]int{0})
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)

	got = Average([]int{7, 8})
	require.NotNil(t, got)
	assert.InDelta(t, 7.5, *got, 1e-9)
}
