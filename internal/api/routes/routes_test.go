package routes

import (
	"fmt"
	"net/http"
	"testing"

	"eperson-backend/internal/api/handlers"
	"eperson-backend/internal/service"
	"eperson-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestSetupRoutesGroupLifecycle(t *testing.T) {
	base := testutils.SetupSQLiteTestSuite(t)
	api := testutils.NewHTTPTestSuite(SetupRoutes(base.DB, base.Config))

	w := api.MakeRequest(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var admins, staff service.GroupResponse
	testutils.AssertJSONResponse(t, api.MakeRequest(http.MethodPost, "/api/v1/groups",
		map[string]interface{}{"name": "Administrator", "permanent": true}), http.StatusCreated, &admins)
	testutils.AssertJSONResponse(t, api.MakeRequest(http.MethodPost, "/api/v1/groups",
		map[string]interface{}{"name": "Staff"}), http.StatusCreated, &staff)

	var eperson service.EPersonResponse
	testutils.AssertJSONResponse(t, api.MakeRequest(http.MethodPost, "/api/v1/epersons",
		map[string]interface{}{"email": "staff@example.org"}), http.StatusCreated, &eperson)

	membership := fmt.Sprintf("/api/v1/epersons/%s/memberships/Administrator", eperson.ID)

	api.RunHTTPTestCases(t, []testutils.HTTPTestCase{
		{
			Name:           "duplicate name",
			Method:         http.MethodPost,
			URL:            "/api/v1/groups",
			Body:           map[string]interface{}{"name": "Staff"},
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name:           "add member",
			Method:         http.MethodPost,
			URL:            fmt.Sprintf("/api/v1/groups/%s/members", staff.ID),
			Body:           map[string]interface{}{"eperson_id": eperson.ID},
			ExpectedStatus: http.StatusNoContent,
		},
		{
			Name:           "not yet inherited",
			Method:         http.MethodGet,
			URL:            membership,
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   handlers.MembershipResponse{Group: "Administrator", IsMember: false},
		},
		{
			Name:           "nest staff in administrators",
			Method:         http.MethodPost,
			URL:            fmt.Sprintf("/api/v1/groups/%s/subgroups", admins.ID),
			Body:           map[string]interface{}{"group_id": staff.ID},
			ExpectedStatus: http.StatusNoContent,
		},
		{
			Name:           "reverse nesting is a cycle",
			Method:         http.MethodPost,
			URL:            fmt.Sprintf("/api/v1/groups/%s/subgroups", staff.ID),
			Body:           map[string]interface{}{"group_id": admins.ID},
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name:           "inherited membership",
			Method:         http.MethodGet,
			URL:            membership,
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   handlers.MembershipResponse{Group: "Administrator", IsMember: true},
		},
		{
			Name:           "permanent group cannot be deleted",
			Method:         http.MethodDelete,
			URL:            fmt.Sprintf("/api/v1/groups/%s", admins.ID),
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name:           "delete staff",
			Method:         http.MethodDelete,
			URL:            fmt.Sprintf("/api/v1/groups/%s", staff.ID),
			ExpectedStatus: http.StatusNoContent,
		},
		{
			Name:           "membership gone with the subgroup",
			Method:         http.MethodGet,
			URL:            membership,
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   handlers.MembershipResponse{Group: "Administrator", IsMember: false},
		},
		{
			Name:           "count",
			Method:         http.MethodGet,
			URL:            "/api/v1/groups/count",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   handlers.CountResponse{Count: 1},
		},
		{
			Name:           "unknown group",
			Method:         http.MethodGet,
			URL:            "/api/v1/groups/00000000-0000-0000-0000-000000000001",
			ExpectedStatus: http.StatusNotFound,
		},
	})
}

func TestSetupRoutesSearch(t *testing.T) {
	base := testutils.SetupSQLiteTestSuite(t)
	api := testutils.NewHTTPTestSuite(SetupRoutes(base.DB, base.Config))

	for _, name := range []string{"Staff", "Staff Editors", "Readers"} {
		w := api.MakeRequest(http.MethodPost, "/api/v1/groups", map[string]interface{}{"name": name})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var page service.GroupListResponse
	testutils.AssertJSONResponse(t, api.MakeRequest(http.MethodGet, "/api/v1/groups?q=staf&page_size=1", nil),
		http.StatusOK, &page)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.PageSize)
	if assert.Len(t, page.Groups, 1) {
		assert.Equal(t, "Staff", page.Groups[0].Name)
	}

	w := api.MakeRequest(http.MethodGet, "/api/v1/groups?page=abc", nil)
	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "")

	w = api.MakeRequest(http.MethodGet, "/api/v1/groups?q=staf&page=9223372036854775807", nil)
	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid pagination parameters")

	w = api.MakeRequest(http.MethodGet, "/api/v1/groups/by-metadata?field=dc.title&value=", nil)
	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "group not found")
}
