package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New(model.CategoryRecord{Category: "colors", Words: []string{"red", "blue"}})
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadCategories() {
	records, err := s.storage.LoadCategories(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.CategoryRecord{{Category: "colors", Words: []string{"red", "blue"}}}, records)
}

func (s *StorageSuite) TestLoadReturnsCopies() {
	records, _ := s.storage.LoadCategories(s.ctx)
	records[0].Words[0] = "green"

	again, _ := s.storage.LoadCategories(s.ctx)
	s.Equal("red", again[0].Words[0])
}

func (s *StorageSuite) TestSaveReplacesContents() {
	err := s.storage.SaveCategories(s.ctx, []model.CategoryRecord{
		{Category: "fruit", Words: []string{"pear"}},
	})
	s.Require().NoError(err)

	records, err := s.storage.LoadCategories(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("fruit", records[0].Category)
}

func (s *StorageSuite) TestEmptyStorage() {
	records, err := New().LoadCategories(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}
