package service_test

import (
	"context"
	"testing"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/repository"
	"eperson-backend/internal/service"
	"eperson-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// GroupServiceSQLiteTestSuite runs GroupService on real repositories backed by sqlite
type GroupServiceSQLiteTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repos         *repository.Repositories
	groups        *service.GroupService
	epersons      *service.EPersonService
}

func TestGroupServiceSQLite(t *testing.T) {
	suite.Run(t, new(GroupServiceSQLiteTestSuite))
}

func (suite *GroupServiceSQLiteTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupSQLiteTestSuite(suite.T())
	suite.ctx = context.Background()

	db := suite.baseTestSuite.DB
	v := validator.New()
	suite.repos = repository.NewRepositories(db)
	suite.groups = service.NewGroupService(suite.repos, repository.NewGormTransactor(db, suite.repos), v,
		[]string{"dc.title", "dc.description"})
	suite.epersons = service.NewEPersonService(suite.repos.EPeople, v)
}

func (suite *GroupServiceSQLiteTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *GroupServiceSQLiteTestSuite) createGroup(name string) uuid.UUID {
	group, err := suite.groups.Create(suite.ctx, &service.CreateGroupRequest{Name: name})
	suite.Require().NoError(err)
	return group.ID
}

func (suite *GroupServiceSQLiteTestSuite) createEPerson(email string) uuid.UUID {
	eperson, err := suite.epersons.Create(suite.ctx, &service.CreateEPersonRequest{Email: email})
	suite.Require().NoError(err)
	return eperson.ID
}

func (suite *GroupServiceSQLiteTestSuite) cacheRows() []models.Group2GroupCache {
	rows, err := suite.repos.Cache.GetAll(suite.ctx)
	suite.Require().NoError(err)
	return rows
}

// TestCreateMirrorsMetadata tests that the name and description land in metadata
func (suite *GroupServiceSQLiteTestSuite) TestCreateMirrorsMetadata() {
	created, err := suite.groups.Create(suite.ctx, &service.CreateGroupRequest{
		Name:        "Reviewers",
		Description: "Reviews incoming submissions",
	})
	suite.Require().NoError(err)

	details, err := suite.groups.GetByID(suite.ctx, created.ID)
	suite.NoError(err)
	suite.Equal([]string{"Reviewers"}, details.Metadata["dc.title"])
	suite.Equal([]string{"Reviews incoming submissions"}, details.Metadata["dc.description"])

	found, err := suite.groups.GetByMetadata(suite.ctx, "dc.title", "Reviewers")
	suite.NoError(err)
	suite.Equal(created.ID, found.ID)

	_, err = suite.groups.Create(suite.ctx, &service.CreateGroupRequest{Name: "Reviewers"})
	suite.ErrorIs(err, apperrors.ErrGroupExists)
}

// TestSearchByDescription tests that every configured search field is consulted
func (suite *GroupServiceSQLiteTestSuite) TestSearchByDescription() {
	_, err := suite.groups.Create(suite.ctx, &service.CreateGroupRequest{Name: "Alpha", Description: "handles curation"})
	suite.Require().NoError(err)
	suite.createGroup("Curators")
	suite.createGroup("Bravo")

	result, err := suite.groups.Search(suite.ctx, "CURAT", 1, 10)
	suite.NoError(err)
	suite.Equal(int64(2), result.Total)
	suite.Require().Len(result.Groups, 2)
	suite.Equal("Alpha", result.Groups[0].Name)
	suite.Equal("Curators", result.Groups[1].Name)
}

// TestRenameUpdatesTitle tests that renaming keeps dc.title in step
func (suite *GroupServiceSQLiteTestSuite) TestRenameUpdatesTitle() {
	id := suite.createGroup("Before")

	renamed, err := suite.groups.Rename(suite.ctx, id, &service.UpdateGroupRequest{Name: "After"})
	suite.NoError(err)
	suite.Equal("After", renamed.Name)

	details, err := suite.groups.GetByID(suite.ctx, id)
	suite.NoError(err)
	suite.Equal([]string{"After"}, details.Metadata["dc.title"])
}

// TestNestingMaintainsCache tests the closure across add, remove and delete
func (suite *GroupServiceSQLiteTestSuite) TestNestingMaintainsCache() {
	a := suite.createGroup("A")
	b := suite.createGroup("B")
	c := suite.createGroup("C")

	suite.Require().NoError(suite.groups.AddSubgroup(suite.ctx, a, b))
	suite.Require().NoError(suite.groups.AddSubgroup(suite.ctx, b, c))
	suite.ElementsMatch([]models.Group2GroupCache{
		{ParentID: a, ChildID: b},
		{ParentID: a, ChildID: c},
		{ParentID: b, ChildID: c},
	}, suite.cacheRows())

	suite.Require().NoError(suite.groups.RemoveSubgroup(suite.ctx, b, c))
	suite.Equal([]models.Group2GroupCache{{ParentID: a, ChildID: b}}, suite.cacheRows())

	suite.Require().NoError(suite.groups.AddSubgroup(suite.ctx, b, c))
	suite.Require().NoError(suite.groups.Delete(suite.ctx, b))
	suite.Empty(suite.cacheRows())

	pairs, err := suite.groups.GetGroup2GroupResults(suite.ctx)
	suite.NoError(err)
	suite.Empty(pairs)
}

// TestNestingRejectsCycles tests that no loop can be created
func (suite *GroupServiceSQLiteTestSuite) TestNestingRejectsCycles() {
	a := suite.createGroup("A")
	b := suite.createGroup("B")
	c := suite.createGroup("C")
	suite.Require().NoError(suite.groups.AddSubgroup(suite.ctx, a, b))
	suite.Require().NoError(suite.groups.AddSubgroup(suite.ctx, b, c))

	suite.ErrorIs(suite.groups.AddSubgroup(suite.ctx, c, a), apperrors.ErrGroupCycle)
	suite.ErrorIs(suite.groups.AddSubgroup(suite.ctx, b, a), apperrors.ErrGroupCycle)
	suite.ErrorIs(suite.groups.AddSubgroup(suite.ctx, a, a), apperrors.ErrGroupCycle)
	suite.ErrorIs(suite.groups.AddSubgroup(suite.ctx, a, b), apperrors.ErrSubgroupAlreadyAssigned)

	// a shortcut edge is fine
	suite.NoError(suite.groups.AddSubgroup(suite.ctx, a, c))
	suite.Len(suite.cacheRows(), 3)
}

// TestInheritedMembership tests membership through nested groups
func (suite *GroupServiceSQLiteTestSuite) TestInheritedMembership() {
	admins := suite.createGroup("Administrator")
	staff := suite.createGroup("Staff")
	eperson := suite.createEPerson("Someone@Example.org")

	suite.Require().NoError(suite.groups.AddMember(suite.ctx, staff, eperson))

	member, err := suite.groups.IsMember(suite.ctx, "Administrator", eperson)
	suite.NoError(err)
	suite.False(member)

	suite.Require().NoError(suite.groups.AddSubgroup(suite.ctx, admins, staff))

	member, err = suite.groups.IsMember(suite.ctx, "Administrator", eperson)
	suite.NoError(err)
	suite.True(member)

	direct, err := suite.groups.ListByEPerson(suite.ctx, eperson)
	suite.NoError(err)
	suite.Require().Len(direct, 1)
	suite.Equal(staff, direct[0].ID)

	empty, err := suite.groups.GetEmptyGroups(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(empty, 1)
	suite.Equal(admins, empty[0].ID)

	suite.Require().NoError(suite.groups.RemoveMember(suite.ctx, staff, eperson))

	member, err = suite.groups.IsMember(suite.ctx, "Administrator", eperson)
	suite.NoError(err)
	suite.False(member)
}

// TestDeletePermanentGroup tests that permanent groups survive delete
func (suite *GroupServiceSQLiteTestSuite) TestDeletePermanentGroup() {
	created, err := suite.groups.Create(suite.ctx, &service.CreateGroupRequest{Name: "Anonymous", Permanent: true})
	suite.Require().NoError(err)

	suite.ErrorIs(suite.groups.Delete(suite.ctx, created.ID), apperrors.ErrPermanentGroup)

	count, err := suite.groups.Count(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}
