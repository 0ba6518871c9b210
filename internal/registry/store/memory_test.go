package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"murima/internal/registry/models"
	dErrors "murima/pkg/domain-errors"
	"murima/pkg/platform/sentinel"
	"murima/pkg/requestcontext"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newBusiness(name string) *models.Business {
	return &models.Business{
		Name:      name,
		OwnerName: "Owner of " + name,
		Status:    models.StatusActive,
		Ownership: models.OwnershipYouth,
		Phone:     "+250788000000",
		Province:  "Eastern",
		District:  "Kayonza",
		Production: []models.ProductionItem{
			{ID: 1, Name: "Maize", Quantity: 10, Unit: "kg"},
		},
	}
}

// TestCreationAndLookups verifies ID assignment, timestamps, and retrieval.
func (s *MemoryStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds by ID", func() {
		b := s.newBusiness("Kaze Agro")
		s.Require().NoError(s.store.Create(s.ctx, b))
		s.Equal(int64(1), b.ID)
		s.Equal(requestcontext.Now(s.ctx), b.CreatedAt)
		s.Equal(b.CreatedAt, b.UpdatedAt)

		found, err := s.store.GetByID(s.ctx, b.ID)
		s.Require().NoError(err)
		s.Equal("Kaze Agro", found.Name)
	})

	s.Run("assigns monotonically increasing IDs", func() {
		first := s.newBusiness("First")
		second := s.newBusiness("Second")
		s.Require().NoError(s.store.Create(s.ctx, first))
		s.Require().NoError(s.store.Create(s.ctx, second))
		s.Greater(second.ID, first.ID)
	})

	s.Run("never reuses a deleted ID", func() {
		b := s.newBusiness("Ephemeral")
		s.Require().NoError(s.store.Create(s.ctx, b))
		deleted := b.ID
		s.Require().NoError(s.store.Delete(s.ctx, deleted))

		next := s.newBusiness("Next")
		s.Require().NoError(s.store.Create(s.ctx, next))
		s.Greater(next.ID, deleted)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.GetByID(s.ctx, 9999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects invalid record", func() {
		b := s.newBusiness("No Owner")
		b.OwnerName = " "
		err := s.store.Create(s.ctx, b)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

// TestUpdate verifies CreatedAt immutability and UpdatedAt refresh.
func (s *MemoryStoreSuite) TestUpdate() {
	s.Run("preserves CreatedAt and refreshes UpdatedAt", func() {
		b := s.newBusiness("Original")
		s.Require().NoError(s.store.Create(s.ctx, b))
		created := b.CreatedAt

		later := requestcontext.WithTime(context.Background(), created.Add(time.Hour))
		b.Name = "Renamed"
		b.CreatedAt = time.Time{} // callers cannot override it
		s.Require().NoError(s.store.Update(later, b))

		found, err := s.store.GetByID(s.ctx, b.ID)
		s.Require().NoError(err)
		s.Equal("Renamed", found.Name)
		s.Equal(created, found.CreatedAt)
		s.Equal(created.Add(time.Hour), found.UpdatedAt)
	})

	s.Run("returns ErrNotFound for unknown record", func() {
		b := s.newBusiness("Ghost")
		b.ID = 4242
		s.Require().ErrorIs(s.store.Update(s.ctx, b), sentinel.ErrNotFound)
	})
}

// TestDelete verifies removal semantics.
func (s *MemoryStoreSuite) TestDelete() {
	s.Run("deletes an existing record", func() {
		b := s.newBusiness("Doomed")
		s.Require().NoError(s.store.Create(s.ctx, b))
		s.Require().NoError(s.store.Delete(s.ctx, b.ID))

		_, err := s.store.GetByID(s.ctx, b.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound for unknown record", func() {
		s.Require().ErrorIs(s.store.Delete(s.ctx, 777), sentinel.ErrNotFound)
	})
}

// TestSnapshotIsolation verifies All returns copies ordered by ID and that
// mutating a snapshot never leaks back into the store.
func (s *MemoryStoreSuite) TestSnapshotIsolation() {
	s.Run("All is ordered by ID", func() {
		for _, name := range []string{"C", "A", "B"} {
			s.Require().NoError(s.store.Create(s.ctx, s.newBusiness(name)))
		}
		all, err := s.store.All(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal([]string{"C", "A", "B"}, []string{all[0].Name, all[1].Name, all[2].Name})
	})

	s.Run("snapshot mutations do not reach the store", func() {
		b := s.newBusiness("Stable")
		s.Require().NoError(s.store.Create(s.ctx, b))

		all, err := s.store.All(s.ctx)
		s.Require().NoError(err)
		all[0].Name = "Tampered"
		all[0].Production[0].Name = "Tampered crop"

		found, err := s.store.GetByID(s.ctx, b.ID)
		s.Require().NoError(err)
		s.Equal("Stable", found.Name)
		s.Equal("Maize", found.Production[0].Name)
	})
}

// TestSeedDemo verifies the demo dataset loads cleanly into an empty store.
func (s *MemoryStoreSuite) TestSeedDemo() {
	s.Require().NoError(SeedDemo(s.ctx, s.store))

	all, err := s.store.All(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(all)
	for _, b := range all {
		s.Require().NoError(b.Validate())
	}
}
