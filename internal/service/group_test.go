package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/mocks"
	"eperson-backend/internal/repository"
	"eperson-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const maxTestPageSize = 100

// GroupServiceTestSuite defines the test suite for GroupService
type GroupServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockGroups   *mocks.MockGroupRepositoryInterface
	mockCache    *mocks.MockGroup2GroupCacheRepositoryInterface
	mockEPeople  *mocks.MockEPersonRepositoryInterface
	mockMetadata *mocks.MockMetadataRepositoryInterface
	mockTx       *mocks.MockTransactor
	groupService *service.GroupService
	titleField   *models.MetadataField
}

// SetupTest sets up the test suite
func (suite *GroupServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroups = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockCache = mocks.NewMockGroup2GroupCacheRepositoryInterface(suite.ctrl)
	suite.mockEPeople = mocks.NewMockEPersonRepositoryInterface(suite.ctrl)
	suite.mockMetadata = mocks.NewMockMetadataRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTransactor(suite.ctrl)

	repos := &repository.Repositories{
		Groups:   suite.mockGroups,
		Cache:    suite.mockCache,
		EPeople:  suite.mockEPeople,
		Metadata: suite.mockMetadata,
	}

	// Transactions run straight through on the mocked repositories
	suite.mockTx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repositories) error) error {
			return fn(repos)
		}).
		AnyTimes()

	suite.titleField = &models.MetadataField{ID: 1, Element: "title", Schema: models.MetadataSchema{ShortID: "dc"}}
	suite.groupService = service.NewGroupService(repos, suite.mockTx, validator.New(), []string{"dc.title"})
}

// TearDownTest cleans up after each test
func (suite *GroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a group
func (suite *GroupServiceTestSuite) TestCreateGroup() {
	groupID := uuid.New()
	req := &service.CreateGroupRequest{Name: "Administrators"}

	suite.mockGroups.EXPECT().
		FindByName(gomock.Any(), "Administrators").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockGroups.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, group *models.Group) error {
			group.ID = groupID
			return nil
		}).
		Times(1)
	suite.mockMetadata.EXPECT().
		FindFieldByName(gomock.Any(), "dc.title").
		Return(suite.titleField, nil).
		Times(1)
	suite.mockMetadata.EXPECT().
		SetValue(gomock.Any(), groupID, suite.titleField, "Administrators").
		Return(nil).
		Times(1)

	response, err := suite.groupService.Create(suite.ctx, req)

	suite.NoError(err)
	suite.Equal(groupID, response.ID)
	suite.Equal("Administrators", response.Name)
	suite.False(response.Permanent)
}

// TestCreateGroupDuplicateName tests that a second group with the same name is refused
func (suite *GroupServiceTestSuite) TestCreateGroupDuplicateName() {
	suite.mockGroups.EXPECT().
		FindByName(gomock.Any(), "Anonymous").
		Return(&models.Group{Name: "Anonymous"}, nil).
		Times(1)

	response, err := suite.groupService.Create(suite.ctx, &service.CreateGroupRequest{Name: "Anonymous"})

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrGroupExists)
	suite.True(apperrors.IsConflict(err))
}

// TestCreateGroupValidationError tests creating a group without a name
func (suite *GroupServiceTestSuite) TestCreateGroupValidationError() {
	response, err := suite.groupService.Create(suite.ctx, &service.CreateGroupRequest{})

	suite.Nil(response)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestGetByIDNotFound tests that a missing group maps to ErrGroupNotFound
func (suite *GroupServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockGroups.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.groupService.GetByID(suite.ctx, id)

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)
	suite.True(apperrors.IsNotFound(err))
}

// TestGetByIDWithDetails tests that members, subgroups and metadata are collected
func (suite *GroupServiceTestSuite) TestGetByIDWithDetails() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Staff"}
	member := models.EPerson{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@example.org"}
	sub := models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Editors"}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockGroups.EXPECT().GetMembers(gomock.Any(), group).Return([]models.EPerson{member}, nil)
	suite.mockGroups.EXPECT().GetSubgroups(gomock.Any(), group).Return([]models.Group{sub}, nil)
	suite.mockMetadata.EXPECT().GetValues(gomock.Any(), group.ID).Return([]models.MetadataValue{
		{TextValue: "Staff", MetadataField: *suite.titleField},
	}, nil)

	details, err := suite.groupService.GetByID(suite.ctx, group.ID)

	suite.NoError(err)
	suite.Equal("Staff", details.Name)
	suite.Len(details.Members, 1)
	suite.Equal("a@example.org", details.Members[0].Email)
	suite.Len(details.Subgroups, 1)
	suite.Equal(sub.ID, details.Subgroups[0].ID)
	suite.Equal([]string{"Staff"}, details.Metadata["dc.title"])
}

// TestSearchPaging tests that page and page size become offset and limit
func (suite *GroupServiceTestSuite) TestSearchPaging() {
	fields := []models.MetadataField{*suite.titleField}
	groups := []models.Group{{Name: "Admin group"}}

	suite.mockMetadata.EXPECT().FindFieldByName(gomock.Any(), "dc.title").Return(suite.titleField, nil)
	suite.mockGroups.EXPECT().Search(gomock.Any(), "admin", fields, 10, 10).Return(groups, nil)
	suite.mockGroups.EXPECT().SearchResultCount(gomock.Any(), "admin", fields).Return(int64(11), nil)

	result, err := suite.groupService.Search(suite.ctx, " admin ", 2, 10)

	suite.NoError(err)
	suite.Equal(int64(11), result.Total)
	suite.Equal(2, result.Page)
	suite.Equal(10, result.PageSize)
	suite.Len(result.Groups, 1)
}

// TestSearchDefaultPaging tests the fallback for out of range paging parameters
func (suite *GroupServiceTestSuite) TestSearchDefaultPaging() {
	fields := []models.MetadataField{*suite.titleField}

	suite.mockMetadata.EXPECT().FindFieldByName(gomock.Any(), "dc.title").Return(suite.titleField, nil)
	suite.mockGroups.EXPECT().Search(gomock.Any(), "", fields, 0, 20).Return([]models.Group{}, nil)
	suite.mockGroups.EXPECT().SearchResultCount(gomock.Any(), "", fields).Return(int64(0), nil)

	result, err := suite.groupService.Search(suite.ctx, "", 0, 500)

	suite.NoError(err)
	suite.Equal(1, result.Page)
	suite.Equal(20, result.PageSize)
	suite.Empty(result.Groups)
}

// TestSearchUnknownField tests that a misconfigured search field is reported as configuration
func (suite *GroupServiceTestSuite) TestSearchUnknownField() {
	suite.mockMetadata.EXPECT().FindFieldByName(gomock.Any(), "dc.title").Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.groupService.Search(suite.ctx, "admin", 1, 10)

	suite.Nil(result)
	suite.True(apperrors.IsConfiguration(err))
	suite.False(apperrors.IsValidation(err))
}

// TestSearchPageOutOfRange tests that a page whose offset overflows is rejected before any query
func (suite *GroupServiceTestSuite) TestSearchPageOutOfRange() {
	result, err := suite.groupService.Search(suite.ctx, "admin", math.MaxInt, 10)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

	_, err = suite.groupService.Search(suite.ctx, "admin", math.MaxInt/maxTestPageSize+2, maxTestPageSize)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

// TestSearchByUUID tests that a UUID query looks the group up directly
func (suite *GroupServiceTestSuite) TestSearchByUUID() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Reviewers"}
	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)

	result, err := suite.groupService.Search(suite.ctx, group.ID.String(), 1, 10)

	suite.NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Len(result.Groups, 1)
	suite.Equal("Reviewers", result.Groups[0].Name)
}

// TestListInvalidSortColumn tests that an unknown sort column is a validation error
func (suite *GroupServiceTestSuite) TestListInvalidSortColumn() {
	suite.mockGroups.EXPECT().
		FindAll(gomock.Any(), []models.MetadataField{}, "password").
		Return(nil, apperrors.ErrInvalidSortColumn)

	result, err := suite.groupService.List(suite.ctx, nil, "password")

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

// TestDeletePermanentGroup tests that permanent groups cannot be deleted
func (suite *GroupServiceTestSuite) TestDeletePermanentGroup() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Anonymous", Permanent: true}
	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)

	err := suite.groupService.Delete(suite.ctx, group.ID)

	suite.ErrorIs(err, apperrors.ErrPermanentGroup)
}

// TestDeleteRebuildsCache tests that deleting a group refreshes the nesting cache
func (suite *GroupServiceTestSuite) TestDeleteRebuildsCache() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Temp"}
	a, b := uuid.New(), uuid.New()

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockGroups.EXPECT().Delete(gomock.Any(), group).Return(nil)
	suite.mockGroups.EXPECT().GetGroup2GroupResults(gomock.Any()).Return([]models.GroupPair{{ParentID: a, ChildID: b}}, nil)
	suite.mockCache.EXPECT().
		Replace(gomock.Any(), []models.Group2GroupCache{{ParentID: a, ChildID: b}}).
		Return(nil)

	suite.NoError(suite.groupService.Delete(suite.ctx, group.ID))
}

// TestDeleteCacheFailure tests that a failed cache refresh fails the delete
func (suite *GroupServiceTestSuite) TestDeleteCacheFailure() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Temp"}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockGroups.EXPECT().Delete(gomock.Any(), group).Return(nil)
	suite.mockGroups.EXPECT().GetGroup2GroupResults(gomock.Any()).Return(nil, errors.New("connection reset"))

	err := suite.groupService.Delete(suite.ctx, group.ID)

	suite.Error(err)
	suite.Contains(err.Error(), "connection reset")
}

// TestAddMember tests adding a direct member
func (suite *GroupServiceTestSuite) TestAddMember() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}
	eperson := &models.EPerson{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockEPeople.EXPECT().GetByID(gomock.Any(), eperson.ID).Return(eperson, nil)
	suite.mockGroups.EXPECT().IsMember(gomock.Any(), group.ID, eperson.ID).Return(false, nil)
	suite.mockGroups.EXPECT().AddMember(gomock.Any(), group, eperson).Return(nil)

	suite.NoError(suite.groupService.AddMember(suite.ctx, group.ID, eperson.ID))
}

// TestAddMemberTwice tests that an existing membership is a conflict
func (suite *GroupServiceTestSuite) TestAddMemberTwice() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}
	eperson := &models.EPerson{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockEPeople.EXPECT().GetByID(gomock.Any(), eperson.ID).Return(eperson, nil)
	suite.mockGroups.EXPECT().IsMember(gomock.Any(), group.ID, eperson.ID).Return(true, nil)

	err := suite.groupService.AddMember(suite.ctx, group.ID, eperson.ID)

	suite.ErrorIs(err, apperrors.ErrMemberAlreadyAssigned)
}

// TestRemoveMemberUnknownEPerson tests removing an eperson that does not exist
func (suite *GroupServiceTestSuite) TestRemoveMemberUnknownEPerson() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}
	epersonID := uuid.New()

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockEPeople.EXPECT().GetByID(gomock.Any(), epersonID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.groupService.RemoveMember(suite.ctx, group.ID, epersonID)

	suite.ErrorIs(err, apperrors.ErrEPersonNotFound)
}

// TestAddSubgroupToItself tests that a group cannot contain itself
func (suite *GroupServiceTestSuite) TestAddSubgroupToItself() {
	id := uuid.New()

	err := suite.groupService.AddSubgroup(suite.ctx, id, id)

	suite.ErrorIs(err, apperrors.ErrGroupCycle)
}

// TestAddSubgroupCycle tests that nesting an ancestor below its descendant is refused
func (suite *GroupServiceTestSuite) TestAddSubgroupCycle() {
	parent := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}
	child := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
	suite.mockGroups.EXPECT().GetByID(gomock.Any(), child.ID).Return(child, nil)
	suite.mockCache.EXPECT().IsAncestor(gomock.Any(), child.ID, parent.ID).Return(true, nil)

	err := suite.groupService.AddSubgroup(suite.ctx, parent.ID, child.ID)

	suite.ErrorIs(err, apperrors.ErrGroupCycle)
}

// TestAddSubgroup tests nesting a group and refreshing the cache
func (suite *GroupServiceTestSuite) TestAddSubgroup() {
	parent := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}
	child := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
	suite.mockGroups.EXPECT().GetByID(gomock.Any(), child.ID).Return(child, nil)
	suite.mockCache.EXPECT().IsAncestor(gomock.Any(), child.ID, parent.ID).Return(false, nil)
	suite.mockGroups.EXPECT().HasSubgroup(gomock.Any(), parent.ID, child.ID).Return(false, nil)
	suite.mockGroups.EXPECT().AddSubgroup(gomock.Any(), parent, child).Return(nil)
	suite.mockGroups.EXPECT().
		GetGroup2GroupResults(gomock.Any()).
		Return([]models.GroupPair{{ParentID: parent.ID, ChildID: child.ID}}, nil)
	suite.mockCache.EXPECT().
		Replace(gomock.Any(), []models.Group2GroupCache{{ParentID: parent.ID, ChildID: child.ID}}).
		Return(nil)

	suite.NoError(suite.groupService.AddSubgroup(suite.ctx, parent.ID, child.ID))
}

// TestRemoveSubgroupNotNested tests removing a nesting that does not exist
func (suite *GroupServiceTestSuite) TestRemoveSubgroupNotNested() {
	parent := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}
	child := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
	suite.mockGroups.EXPECT().GetByID(gomock.Any(), child.ID).Return(child, nil)
	suite.mockGroups.EXPECT().HasSubgroup(gomock.Any(), parent.ID, child.ID).Return(false, nil)

	err := suite.groupService.RemoveSubgroup(suite.ctx, parent.ID, child.ID)

	suite.ErrorIs(err, apperrors.ErrSubgroupNotAssigned)
}

// TestIsMember tests membership lookups by group name
func (suite *GroupServiceTestSuite) TestIsMember() {
	epersonID := uuid.New()
	suite.mockGroups.EXPECT().
		FindByNameAndEPerson(gomock.Any(), "Administrator", epersonID).
		Return(&models.Group{Name: "Administrator"}, nil)
	suite.mockGroups.EXPECT().
		FindByNameAndEPerson(gomock.Any(), "Anonymous", epersonID).
		Return(nil, gorm.ErrRecordNotFound)

	member, err := suite.groupService.IsMember(suite.ctx, "Administrator", epersonID)
	suite.NoError(err)
	suite.True(member)

	member, err = suite.groupService.IsMember(suite.ctx, "Anonymous", epersonID)
	suite.NoError(err)
	suite.False(member)
}

// TestRenameToTakenName tests renaming a group onto another group's name
func (suite *GroupServiceTestSuite) TestRenameToTakenName() {
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Old"}
	other := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Taken"}

	suite.mockGroups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.mockGroups.EXPECT().FindByName(gomock.Any(), "Taken").Return(other, nil)

	response, err := suite.groupService.Rename(suite.ctx, group.ID, &service.UpdateGroupRequest{Name: "Taken"})

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrGroupExists)
}

// TestRebuildCache tests the reported cache size
func (suite *GroupServiceTestSuite) TestRebuildCache() {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	suite.mockGroups.EXPECT().GetGroup2GroupResults(gomock.Any()).Return([]models.GroupPair{
		{ParentID: a, ChildID: b},
		{ParentID: b, ChildID: c},
	}, nil)
	suite.mockCache.EXPECT().Replace(gomock.Any(), gomock.Len(3)).Return(nil)

	size, err := suite.groupService.RebuildCache(suite.ctx)

	suite.NoError(err)
	assert.Equal(suite.T(), 3, size)
}

// TestGroupServiceTestSuite runs the test suite
func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
