package project

import (
	"context"
	"testing"
	"time"

	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock() *shared.FixedClock {
	return &shared.FixedClock{Instant: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func TestSectionUpdateService_UpdateSection(t *testing.T) {
	ctx := context.Background()

	t.Run("commits recognised fields plus last_updated_at in one write", func(t *testing.T) {
		repo := new(MockProjectRepository)
		clock := fixedClock()
		service := NewSectionUpdateService(repo, clock)

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		var captured map[string]any
		repo.On("UpdateFields", ctx, stored.ID, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(map[string]any)
			}).
			Return(nil)

		result, err := service.UpdateSection(ctx, stored.ID, "commercial", map[string]any{
			"offer_agreed_date": "2025-01-10",
			"probability":       float64(60),
			"landlord_name":     "Crown Estates",
			"unknown_field":     "ignored",
		})

		require.NoError(t, err)
		assert.Equal(t, "commercial", result.Section)
		assert.Equal(t, []string{"landlord_name", "offer_agreed_date", "probability"}, result.UpdatedFields)

		require.Len(t, captured, 4)
		assert.Equal(t, clock.Instant, captured["last_updated_at"])
		assert.Equal(t, 60, captured["probability"])
		assert.NotContains(t, captured, "unknown_field")
		repo.AssertNumberOfCalls(t, "UpdateFields", 1)
	})

	t.Run("blank string clears a field", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		var captured map[string]any
		repo.On("UpdateFields", ctx, stored.ID, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(map[string]any)
			}).
			Return(nil)

		_, err := service.UpdateSection(ctx, stored.ID, "commercial", map[string]any{
			"offer_agreed_date": "",
		})

		require.NoError(t, err)
		require.Contains(t, captured, "offer_agreed_date")
		assert.Nil(t, captured["offer_agreed_date"])
	})

	t.Run("blank sign-off flag clears to TBC, not null", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		var captured map[string]any
		repo.On("UpdateFields", ctx, stored.ID, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(map[string]any)
			}).
			Return(nil)

		_, err := service.UpdateSection(ctx, stored.ID, "design", map[string]any{
			"design_signed_off": "",
		})

		require.NoError(t, err)
		// The column rejects NULL; the committed delta must carry the default
		assert.Equal(t, "TBC", captured["design_signed_off"])
	})

	t.Run("aggregates every validation failure and writes nothing", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		_, err := service.UpdateSection(ctx, stored.ID, "commercial", map[string]any{
			"probability":       150,
			"offer_agreed_date": "not a date",
			"landlord_name":     "Valid Name",
		})

		var validation *shared.ValidationErrors
		require.ErrorAs(t, err, &validation)
		assert.Len(t, validation.Fields, 2)
		assert.Equal(t, "must be between 0 and 100", validation.Fields["probability"])
		assert.Equal(t, "must be a valid date", validation.Fields["offer_agreed_date"])
		repo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("payload with no recognised keys is a no-op error", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		_, err := service.UpdateSection(ctx, stored.ID, "design", map[string]any{
			"lease_per_annum": 1000,
			"garbage":         true,
		})

		assert.ErrorIs(t, err, shared.ErrNothingToUpdate)
		repo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("empty payload is a no-op error", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		_, err := service.UpdateSection(ctx, stored.ID, "build", map[string]any{})
		assert.ErrorIs(t, err, shared.ErrNothingToUpdate)
	})

	t.Run("missing project is reported before payload problems", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.UpdateSection(ctx, id, "commercial", map[string]any{
			"probability": 150,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown section", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		_, err := service.UpdateSection(ctx, uuid.New(), "finance", map[string]any{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNKNOWN_SECTION", domainErr.Code)
		repo.AssertNotCalled(t, "FindByID")
	})

	t.Run("sections never write each other's columns", func(t *testing.T) {
		repo := new(MockProjectRepository)
		service := NewSectionUpdateService(repo, fixedClock())

		stored := newStoredProject()
		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		var captured map[string]any
		repo.On("UpdateFields", ctx, stored.ID, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(map[string]any)
			}).
			Return(nil)

		_, err := service.UpdateSection(ctx, stored.ID, "marketing", map[string]any{
			"media_owner_id":   uuid.New().String(),
			"build_start_date": "2025-06-01",
		})

		require.NoError(t, err)
		assert.Contains(t, captured, "media_owner_id")
		assert.NotContains(t, captured, "build_start_date")
	})
}
