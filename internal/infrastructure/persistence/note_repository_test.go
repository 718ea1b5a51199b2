package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devtrack/backend/internal/infrastructure/persistence/models"
)

func setupNoteTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.NoteModel{}, &models.TenderOfferModel{})
	require.NoError(t, err)

	return db
}

func TestNoteRepository(t *testing.T) {
	db := setupNoteTestDB(t)
	repo := NewGormNoteRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	authorID := uuid.New()

	t.Run("creates and lists notes newest first", func(t *testing.T) {
		older, err := project.NewNote(projectID, authorID, "Landlord verbally agreed terms")
		require.NoError(t, err)
		older.CreatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Create(ctx, older))

		newer, err := project.NewNote(projectID, authorID, "Heads of terms issued")
		require.NoError(t, err)
		newer.CreatedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Create(ctx, newer))

		notes, err := repo.ListForProject(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "Heads of terms issued", notes[0].Body)
		assert.Equal(t, "Landlord verbally agreed terms", notes[1].Body)
	})

	t.Run("notes for other projects are excluded", func(t *testing.T) {
		notes, err := repo.ListForProject(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestTenderOfferRepository(t *testing.T) {
	db := setupNoteTestDB(t)
	repo := NewGormTenderOfferRepository(db)
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("creates and lists offers highest first", func(t *testing.T) {
		low, err := project.NewTenderOffer(projectID, "Apex Media", decimal.NewFromInt(400), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, low))

		high, err := project.NewTenderOffer(projectID, "Brightside Outdoor", decimal.NewFromInt(850), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, high))

		offers, err := repo.ListForProject(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, offers, 2)
		assert.Equal(t, "Brightside Outdoor", offers[0].Bidder)
		assert.True(t, offers[0].Amount.GreaterThan(offers[1].Amount))
	})
}
