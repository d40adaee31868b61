package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/repository/postgres"
	"github.com/service-directory/internal/repository/postgres/testhelpers"
)

// DivisionRepositorySuite tests the division repository with a real database
type DivisionRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.DivisionRepository
	ctx    context.Context

	provinceID int64
	districtID int64
	wardID     int64
}

func (s *DivisionRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplySchema(s.testDB.DB, "../../../scripts/schema.sql")
	s.Require().NoError(err)

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.repo = postgres.NewDivisionRepository(db)
}

func (s *DivisionRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *DivisionRepositorySuite) SetupTest() {
	s.ctx = context.Background()

	err := testhelpers.Truncate(s.testDB.DB, "administrative_divisions")
	s.Require().NoError(err)

	province := s.createDivision("Hanoi", "province", 1, nil, "VN")
	s.provinceID = province.ID
	district := s.createDivision("Hoan Kiem", "district", 2, &province.ID, "VN")
	s.districtID = district.ID
	ward := s.createDivision("Trang Tien", "ward", 3, &district.ID, "VN")
	s.wardID = ward.ID

	// Second root so the root filter has more than one row
	s.createDivision("Da Nang", "province", 1, nil, "VN")
	// Other-country row that no VN query may return
	s.createDivision("Bangkok", "province", 1, nil, "TH")
}

func (s *DivisionRepositorySuite) createDivision(name, divType string, level int, parentID *int64, country string) *domain.AdministrativeDivision {
	division := &domain.AdministrativeDivision{
		Name: name, Type: divType, Level: level,
		ParentID: parentID, CountryCode: country,
	}
	s.Require().NoError(s.repo.Create(s.ctx, division))
	s.Require().NotZero(division.ID)
	return division
}

func names(divisions []*domain.AdministrativeDivision) []string {
	out := make([]string, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, d.Name)
	}
	return out
}

func (s *DivisionRepositorySuite) TestList_NoFilterReturnsAll() {
	divisions, err := s.repo.List(s.ctx, "VN", nil)
	s.NoError(err)
	s.Equal([]string{"Da Nang", "Hanoi", "Hoan Kiem", "Trang Tien"}, names(divisions))
}

func (s *DivisionRepositorySuite) TestList_RootFilter() {
	roots, err := s.repo.List(s.ctx, "VN", domain.RootDivisions())
	s.NoError(err)
	s.Equal([]string{"Da Nang", "Hanoi"}, names(roots))
	for _, d := range roots {
		s.Nil(d.ParentID)
	}
}

func (s *DivisionRepositorySuite) TestList_ChildrenFilter() {
	children, err := s.repo.List(s.ctx, "VN", domain.ChildrenOf(s.provinceID))
	s.NoError(err)
	s.Equal([]string{"Hoan Kiem"}, names(children))
	s.Require().NotNil(children[0].ParentID)
	s.Equal(s.provinceID, *children[0].ParentID)

	// Roots and the child sets of every root partition the forest by level
	all, err := s.repo.List(s.ctx, "VN", nil)
	s.NoError(err)
	roots, err := s.repo.List(s.ctx, "VN", domain.RootDivisions())
	s.NoError(err)
	s.Greater(len(all), len(roots))
	s.Less(len(children), len(all))
}

func (s *DivisionRepositorySuite) TestListByLevel() {
	wards, err := s.repo.ListByLevel(s.ctx, "VN", 3)
	s.NoError(err)
	s.Equal([]string{"Trang Tien"}, names(wards))
	s.Equal(3, wards[0].Level)
}

func (s *DivisionRepositorySuite) TestFindByIDs() {
	divisions, err := s.repo.FindByIDs(s.ctx, []int64{s.provinceID, s.wardID})
	s.NoError(err)
	s.Len(divisions, 2)

	// Empty input short-circuits without touching the database
	divisions, err = s.repo.FindByIDs(s.ctx, nil)
	s.NoError(err)
	s.Empty(divisions)
}

func (s *DivisionRepositorySuite) TestSearch() {
	divisions, err := s.repo.Search(s.ctx, "VN", "hoan", "", 10)
	s.NoError(err)
	s.Equal([]string{"Hoan Kiem"}, names(divisions))

	divisions, err = s.repo.Search(s.ctx, "VN", "a", "province", 10)
	s.NoError(err)
	s.Equal([]string{"Da Nang", "Hanoi"}, names(divisions))
}

func (s *DivisionRepositorySuite) TestCreate_RejectsMissingParent() {
	missing := int64(999999)
	err := s.repo.Create(s.ctx, &domain.AdministrativeDivision{
		Name: "Nowhere", Type: "district", Level: 2,
		ParentID: &missing, CountryCode: "VN",
	})
	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.ErrInvalidRequest.Code, appErr.Code)
}

func (s *DivisionRepositorySuite) TestCreate_RejectsCrossCountryParent() {
	err := s.repo.Create(s.ctx, &domain.AdministrativeDivision{
		Name: "Chatuchak", Type: "district", Level: 2,
		ParentID: &s.provinceID, CountryCode: "TH",
	})
	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.ErrInvalidRequest.Code, appErr.Code)
}

func (s *DivisionRepositorySuite) TestCreate_RejectsLevelGap() {
	err := s.repo.Create(s.ctx, &domain.AdministrativeDivision{
		Name: "Skip Ward", Type: "ward", Level: 3,
		ParentID: &s.provinceID, CountryCode: "VN",
	})
	s.Require().Error(err)
}

func (s *DivisionRepositorySuite) TestCreate_RejectsDeepRoot() {
	err := s.repo.Create(s.ctx, &domain.AdministrativeDivision{
		Name: "Floating District", Type: "district", Level: 2, CountryCode: "VN",
	})
	s.Require().Error(err)
}

func TestDivisionRepositorySuite(t *testing.T) {
	suite.Run(t, new(DivisionRepositorySuite))
}
