package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/mocks"
	"eperson-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)

	suite.router = gin.New()

	// Setup routes
	v1 := suite.router.Group("/api/v1")
	{
		groups := v1.Group("/groups")
		{
			groups.GET("", suite.handler.SearchGroups)
			groups.POST("", suite.handler.CreateGroup)
			groups.GET("/all", suite.handler.ListGroups)
			groups.GET("/count", suite.handler.CountGroups)
			groups.GET("/empty", suite.handler.GetEmptyGroups)
			groups.GET("/by-name/:name", suite.handler.GetGroupByName)
			groups.GET("/by-metadata", suite.handler.GetGroupByMetadata)
			groups.GET("/:id", suite.handler.GetGroup)
			groups.PUT("/:id", suite.handler.UpdateGroup)
			groups.DELETE("/:id", suite.handler.DeleteGroup)
			groups.POST("/:id/members", suite.handler.AddMember)
			groups.DELETE("/:id/members/:epersonId", suite.handler.RemoveMember)
			groups.POST("/:id/subgroups", suite.handler.AddSubgroup)
			groups.DELETE("/:id/subgroups/:childId", suite.handler.RemoveSubgroup)
		}
		v1.GET("/group2group", suite.handler.GetGroup2Group)
		v1.POST("/group2group/cache/rebuild", suite.handler.RebuildCache)
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateGroup tests creating a new group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	groupID := uuid.New()
	request := service.CreateGroupRequest{Name: "Reviewers", Description: "Submission reviewers"}

	suite.mockService.EXPECT().
		Create(gomock.Any(), &request).
		Return(&service.GroupResponse{ID: groupID, Name: "Reviewers"}, nil)

	w := suite.do(http.MethodPost, "/api/v1/groups", request)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var response service.GroupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), groupID, response.ID)
	assert.Equal(suite.T(), "Reviewers", response.Name)
}

// TestCreateGroupConflict tests that a duplicate name answers 409
func (suite *GroupHandlerTestSuite) TestCreateGroupConflict() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrGroupExists)

	w := suite.do(http.MethodPost, "/api/v1/groups", service.CreateGroupRequest{Name: "Anonymous"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "already exists")
}

// TestCreateGroupInvalidBody tests creating a group with a malformed body
func (suite *GroupHandlerTestSuite) TestCreateGroupInvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateGroupValidationFailure tests that validation errors answer 400
func (suite *GroupHandlerTestSuite) TestCreateGroupValidationFailure() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "is required"))

	w := suite.do(http.MethodPost, "/api/v1/groups", service.CreateGroupRequest{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetGroup tests retrieving a group by ID
func (suite *GroupHandlerTestSuite) TestGetGroup() {
	groupID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), groupID).
		Return(&service.GroupDetailsResponse{
			GroupResponse: service.GroupResponse{ID: groupID, Name: "Staff"},
			Metadata:      map[string][]string{"dc.title": {"Staff"}},
		}, nil)

	w := suite.do(http.MethodGet, "/api/v1/groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.GroupDetailsResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), groupID, response.ID)
	assert.Equal(suite.T(), []string{"Staff"}, response.Metadata["dc.title"])
}

// TestGetGroupInvalidID tests that a malformed id answers 400 without calling the service
func (suite *GroupHandlerTestSuite) TestGetGroupInvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/groups/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid group ID")
}

// TestGetGroupNotFound tests the 404 mapping
func (suite *GroupHandlerTestSuite) TestGetGroupNotFound() {
	groupID := uuid.New()
	suite.mockService.EXPECT().GetByID(gomock.Any(), groupID).Return(nil, apperrors.ErrGroupNotFound)

	w := suite.do(http.MethodGet, "/api/v1/groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSearchGroups tests query and paging parameters
func (suite *GroupHandlerTestSuite) TestSearchGroups() {
	suite.mockService.EXPECT().
		Search(gomock.Any(), "admin", 2, 5).
		Return(&service.GroupListResponse{
			Groups:   []service.GroupResponse{{ID: uuid.New(), Name: "Administrator"}},
			Total:    6,
			Page:     2,
			PageSize: 5,
		}, nil)

	w := suite.do(http.MethodGet, "/api/v1/groups?q=admin&page=2&page_size=5", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.GroupListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), int64(6), response.Total)
	assert.Len(suite.T(), response.Groups, 1)
}

// TestSearchGroupsInvalidPage tests a non numeric page parameter
func (suite *GroupHandlerTestSuite) TestSearchGroupsInvalidPage() {
	w := suite.do(http.MethodGet, "/api/v1/groups?page=abc", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListGroups tests repeated sort_field parameters
func (suite *GroupHandlerTestSuite) TestListGroups() {
	suite.mockService.EXPECT().
		List(gomock.Any(), []string{"dc.title", "dc.description"}, "").
		Return([]service.GroupResponse{{Name: "A"}, {Name: "B"}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/groups/all?sort_field=dc.title&sort_field=dc.description", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response []service.GroupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response, 2)
}

// TestCountGroups tests the count endpoint
func (suite *GroupHandlerTestSuite) TestCountGroups() {
	suite.mockService.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

	w := suite.do(http.MethodGet, "/api/v1/groups/count", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"count":42}`, w.Body.String())
}

// TestGetEmptyGroupsError tests that storage failures answer 500
func (suite *GroupHandlerTestSuite) TestGetEmptyGroupsError() {
	suite.mockService.EXPECT().GetEmptyGroups(gomock.Any()).Return(nil, fmt.Errorf("failed to get empty groups: %w", assert.AnError))

	w := suite.do(http.MethodGet, "/api/v1/groups/empty", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

// TestGetGroupByName tests the by-name lookup
func (suite *GroupHandlerTestSuite) TestGetGroupByName() {
	suite.mockService.EXPECT().
		GetByName(gomock.Any(), "Administrator").
		Return(&service.GroupResponse{Name: "Administrator"}, nil)

	w := suite.do(http.MethodGet, "/api/v1/groups/by-name/Administrator", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetGroupByMetadataMissingField tests that the field parameter is required
func (suite *GroupHandlerTestSuite) TestGetGroupByMetadataMissingField() {
	w := suite.do(http.MethodGet, "/api/v1/groups/by-metadata?value=x", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetGroupByMetadata tests the by-metadata lookup
func (suite *GroupHandlerTestSuite) TestGetGroupByMetadata() {
	suite.mockService.EXPECT().
		GetByMetadata(gomock.Any(), "dc.identifier", "hdl:123").
		Return(&service.GroupResponse{Name: "Collection 123 submitters"}, nil)

	w := suite.do(http.MethodGet, "/api/v1/groups/by-metadata?field=dc.identifier&value=hdl:123", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestUpdateGroup tests renaming a group
func (suite *GroupHandlerTestSuite) TestUpdateGroup() {
	groupID := uuid.New()
	request := service.UpdateGroupRequest{Name: "Editors"}

	suite.mockService.EXPECT().
		Rename(gomock.Any(), groupID, &request).
		Return(&service.GroupResponse{ID: groupID, Name: "Editors"}, nil)

	w := suite.do(http.MethodPut, "/api/v1/groups/"+groupID.String(), request)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.GroupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Editors", response.Name)
}

// TestDeleteGroup tests deleting a group
func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	groupID := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), groupID).Return(nil)

	w := suite.do(http.MethodDelete, "/api/v1/groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeletePermanentGroup tests that permanent groups answer 409
func (suite *GroupHandlerTestSuite) TestDeletePermanentGroup() {
	groupID := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), groupID).Return(apperrors.ErrPermanentGroup)

	w := suite.do(http.MethodDelete, "/api/v1/groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestAddMember tests adding a member
func (suite *GroupHandlerTestSuite) TestAddMember() {
	groupID, epersonID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().AddMember(gomock.Any(), groupID, epersonID).Return(nil)

	w := suite.do(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/members", AddMemberRequest{EPersonID: epersonID})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestAddMemberMissingEPerson tests that eperson_id is required
func (suite *GroupHandlerTestSuite) TestAddMemberMissingEPerson() {
	groupID := uuid.New()

	w := suite.do(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/members", map[string]string{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRemoveMemberNotAssigned tests removing a non member
func (suite *GroupHandlerTestSuite) TestRemoveMemberNotAssigned() {
	groupID, epersonID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().RemoveMember(gomock.Any(), groupID, epersonID).Return(apperrors.ErrMemberNotAssigned)

	w := suite.do(http.MethodDelete, "/api/v1/groups/"+groupID.String()+"/members/"+epersonID.String(), nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestAddSubgroupCycle tests that a cycle answers 409
func (suite *GroupHandlerTestSuite) TestAddSubgroupCycle() {
	parentID, childID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().AddSubgroup(gomock.Any(), parentID, childID).Return(apperrors.ErrGroupCycle)

	w := suite.do(http.MethodPost, "/api/v1/groups/"+parentID.String()+"/subgroups", AddSubgroupRequest{GroupID: childID})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestRemoveSubgroup tests removing a nesting
func (suite *GroupHandlerTestSuite) TestRemoveSubgroup() {
	parentID, childID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().RemoveSubgroup(gomock.Any(), parentID, childID).Return(nil)

	w := suite.do(http.MethodDelete, "/api/v1/groups/"+parentID.String()+"/subgroups/"+childID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestGetGroup2Group tests listing nesting edges
func (suite *GroupHandlerTestSuite) TestGetGroup2Group() {
	pair := models.GroupPair{ParentID: uuid.New(), ChildID: uuid.New()}
	suite.mockService.EXPECT().GetGroup2GroupResults(gomock.Any()).Return([]models.GroupPair{pair}, nil)

	w := suite.do(http.MethodGet, "/api/v1/group2group", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response []models.GroupPair
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), []models.GroupPair{pair}, response)
}

// TestRebuildCache tests the cache rebuild endpoint
func (suite *GroupHandlerTestSuite) TestRebuildCache() {
	suite.mockService.EXPECT().RebuildCache(gomock.Any()).Return(5, nil)

	w := suite.do(http.MethodPost, "/api/v1/group2group/cache/rebuild", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"count":5}`, w.Body.String())
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
