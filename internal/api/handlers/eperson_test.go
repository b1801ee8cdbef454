package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/mocks"
	"eperson-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EPersonHandlerTestSuite tests the EPersonHandler
type EPersonHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockEPersons *mocks.MockEPersonServiceInterface
	mockGroups   *mocks.MockGroupServiceInterface
}

// SetupSuite sets up the test suite
func (suite *EPersonHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *EPersonHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEPersons = mocks.NewMockEPersonServiceInterface(suite.ctrl)
	suite.mockGroups = mocks.NewMockGroupServiceInterface(suite.ctrl)
	handler := NewEPersonHandler(suite.mockEPersons, suite.mockGroups)

	suite.router = gin.New()
	epersons := suite.router.Group("/api/v1/epersons")
	{
		epersons.POST("", handler.CreateEPerson)
		epersons.GET("", handler.GetEPersonByEmail)
		epersons.GET("/:id", handler.GetEPerson)
		epersons.GET("/:id/groups", handler.GetEPersonGroups)
		epersons.GET("/:id/memberships/:name", handler.CheckMembership)
	}
}

// TearDownTest cleans up after each test
func (suite *EPersonHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEPerson tests creating an eperson
func (suite *EPersonHandlerTestSuite) TestCreateEPerson() {
	id := uuid.New()
	request := service.CreateEPersonRequest{Email: "jane@example.org", FirstName: "Jane"}
	suite.mockEPersons.EXPECT().
		Create(gomock.Any(), &request).
		Return(&service.EPersonResponse{ID: id, Email: "jane@example.org"}, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/epersons", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var response service.EPersonResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), id, response.ID)
}

// TestCreateEPersonDuplicate tests the 409 mapping for a used email
func (suite *EPersonHandlerTestSuite) TestCreateEPersonDuplicate() {
	suite.mockEPersons.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrEPersonExists)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/epersons", bytes.NewBufferString(`{"email":"jane@example.org"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestGetEPersonNotFound tests the 404 mapping
func (suite *EPersonHandlerTestSuite) TestGetEPersonNotFound() {
	id := uuid.New()
	suite.mockEPersons.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrEPersonNotFound)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/epersons/"+id.String(), nil))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetEPersonByEmail tests the email lookup
func (suite *EPersonHandlerTestSuite) TestGetEPersonByEmail() {
	id := uuid.New()
	suite.mockEPersons.EXPECT().
		GetByEmail(gomock.Any(), "someone@example.org").
		Return(&service.EPersonResponse{ID: id, Email: "someone@example.org"}, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/epersons?email="+url.QueryEscape("someone@example.org"), nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.EPersonResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), id, response.ID)
}

// TestGetEPersonByEmailMissing tests that the email parameter is required
func (suite *EPersonHandlerTestSuite) TestGetEPersonByEmailMissing() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/epersons", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetEPersonGroups tests listing direct memberships
func (suite *EPersonHandlerTestSuite) TestGetEPersonGroups() {
	id := uuid.New()
	suite.mockGroups.EXPECT().
		ListByEPerson(gomock.Any(), id).
		Return([]service.GroupResponse{{Name: "Staff"}}, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/epersons/"+id.String()+"/groups", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response []service.GroupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Staff", response[0].Name)
}

// TestCheckMembership tests a membership check with an escaped group name
func (suite *EPersonHandlerTestSuite) TestCheckMembership() {
	id := uuid.New()
	suite.mockGroups.EXPECT().IsMember(gomock.Any(), "Site Admins", id).Return(true, nil)

	w := httptest.NewRecorder()
	path := "/api/v1/epersons/" + id.String() + "/memberships/" + url.PathEscape("Site Admins")
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"group":"Site Admins","is_member":true}`, w.Body.String())
}

// TestCheckMembershipInvalidID tests a malformed eperson id
func (suite *EPersonHandlerTestSuite) TestCheckMembershipInvalidID() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/epersons/42/memberships/Staff", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestEPersonHandlerTestSuite runs the test suite
func TestEPersonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EPersonHandlerTestSuite))
}
