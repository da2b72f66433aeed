package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/catalog-service/internal/domain"
	"github.com/catalog-service/internal/domain/repository"
	"github.com/catalog-service/internal/pkg/errors"
	"github.com/catalog-service/internal/repository/postgres"
	"github.com/catalog-service/internal/repository/postgres/testhelpers"
)

// ItemRepositoryTestSuite тестирует все методы ItemRepository
type ItemRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.ItemRepository
	source repository.StatsSourceRepository
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *ItemRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.repo = postgres.NewItemRepository(db)
	s.source = postgres.NewStatsSource(db)
	s.ctx = context.Background()
}

// SetupTest очищает и заполняет таблицу перед каждым тестом
func (s *ItemRepositoryTestSuite) SetupTest() {
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err)

	fixtures := []struct {
		name     string
		category string
		price    float64
	}{
		{"Keyboard", "Electronics", 49.99},
		{"Monitor", "Electronics", 199.00},
		{"Mug", "Kitchen", 9.50},
		{"Kettle", "Kitchen", 35.00},
		{"Novel", "Books", 14.99},
	}
	for _, f := range fixtures {
		_, err := testhelpers.SeedItem(s.testDB.DB.DB, f.name, f.category, f.price)
		s.NoError(err)
	}
}

func (s *ItemRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *ItemRepositoryTestSuite) TestList_Pagination() {
	items, total, err := s.repo.List(s.ctx, domain.ItemFilter{Page: 1, Limit: 2})
	s.NoError(err)
	s.Equal(5, total)
	s.Len(items, 2)

	second, _, err := s.repo.List(s.ctx, domain.ItemFilter{Page: 2, Limit: 2})
	s.NoError(err)
	s.Len(second, 2)
	s.NotEqual(items[0].ID, second[0].ID)

	last, _, err := s.repo.List(s.ctx, domain.ItemFilter{Page: 3, Limit: 2})
	s.NoError(err)
	s.Len(last, 1)
}

func (s *ItemRepositoryTestSuite) TestList_SearchByName() {
	items, total, err := s.repo.List(s.ctx, domain.ItemFilter{Query: "keyb", Page: 1, Limit: 10})
	s.NoError(err)
	s.Equal(1, total)
	s.Len(items, 1)
	s.Equal("Keyboard", items[0].Name)
}

func (s *ItemRepositoryTestSuite) TestList_FilterByCategories() {
	items, total, err := s.repo.List(s.ctx, domain.ItemFilter{
		Categories: []string{"Kitchen", "Books"},
		Page:       1,
		Limit:      10,
	})
	s.NoError(err)
	s.Equal(3, total)
	s.Len(items, 3)
	for _, item := range items {
		s.Contains([]string{"Kitchen", "Books"}, item.Category)
	}
}

func (s *ItemRepositoryTestSuite) TestGetByID() {
	id, err := testhelpers.SeedItem(s.testDB.DB.DB, "Lamp", "Home", 25.00)
	s.NoError(err)

	item, err := s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal("Lamp", item.Name)
	s.Equal("Home", item.Category)
	s.Equal(25.00, item.Price)
	s.False(item.CreatedAt.IsZero())
}

func (s *ItemRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 999999)
	s.Equal(errors.ErrItemNotFound, err)
}

func (s *ItemRepositoryTestSuite) TestCreate() {
	item := &domain.Item{Name: "Chair", Category: "Home", Price: 75.50}
	err := s.repo.Create(s.ctx, item)
	s.NoError(err)
	s.NotZero(item.ID)
	s.False(item.CreatedAt.IsZero())

	stored, err := s.repo.GetByID(s.ctx, item.ID)
	s.NoError(err)
	s.Equal("Chair", stored.Name)
}

func (s *ItemRepositoryTestSuite) TestCategories() {
	categories, err := s.repo.Categories(s.ctx)
	s.NoError(err)
	s.Equal([]string{"Books", "Electronics", "Kitchen"}, categories)
}

func (s *ItemRepositoryTestSuite) TestCurrentVersion_ChangesOnInsert() {
	before, err := s.source.CurrentVersion(s.ctx)
	s.NoError(err)

	// Без изменений токен стабилен
	again, err := s.source.CurrentVersion(s.ctx)
	s.NoError(err)
	s.Equal(before, again)

	_, err = testhelpers.SeedItem(s.testDB.DB.DB, "Poster", "Home", 5.00)
	s.NoError(err)

	after, err := s.source.CurrentVersion(s.ctx)
	s.NoError(err)
	s.NotEqual(before, after)
}

func (s *ItemRepositoryTestSuite) TestReadAll() {
	items, err := s.source.ReadAll(s.ctx)
	s.NoError(err)
	s.Len(items, 5)

	// Отсортированы по id
	for i := 1; i < len(items); i++ {
		s.Less(items[i-1].ID, items[i].ID)
	}
}

func TestItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}
