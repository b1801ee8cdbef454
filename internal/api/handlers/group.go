package handlers

import (
	"net/http"
	"strconv"

	"eperson-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// AddMemberRequest is the body of POST /groups/{id}/members
type AddMemberRequest struct {
	EPersonID uuid.UUID `json:"eperson_id" binding:"required"`
}

// AddSubgroupRequest is the body of POST /groups/{id}/subgroups
type AddSubgroupRequest struct {
	GroupID uuid.UUID `json:"group_id" binding:"required"`
}

// CountResponse wraps a row count
type CountResponse struct {
	Count int64 `json:"count"`
}

// SearchGroups searches groups by their metadata
// @Summary Search groups
// @Description Case-insensitive substring search over the configured metadata fields. A UUID query looks the group up by id.
// @Tags groups
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.GroupListResponse "Matching groups"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) SearchGroups(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page_size parameter"})
		return
	}

	result, err := h.service.Search(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListGroups lists every group
// @Summary List all groups
// @Description List every group ordered by metadata fields (sort_field, repeatable) or a plain column (sort_column)
// @Tags groups
// @Produce json
// @Param sort_field query []string false "Metadata field names, e.g. dc.title" collectionFormat(multi)
// @Param sort_column query string false "name, id, created_at or updated_at"
// @Success 200 {array} service.GroupResponse "Groups"
// @Failure 400 {object} ErrorResponse "Unknown sort field or column"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/all [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context(), c.QueryArray("sort_field"), c.Query("sort_column"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CountGroups returns the number of groups
// @Summary Count groups
// @Tags groups
// @Produce json
// @Success 200 {object} CountResponse "Number of groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/count [get]
func (h *GroupHandler) CountGroups(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetEmptyGroups lists groups without direct members
// @Summary List empty groups
// @Description Groups without direct eperson members. Members of subgroups are not considered.
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupResponse "Empty groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/empty [get]
func (h *GroupHandler) GetEmptyGroups(c *gin.Context) {
	groups, err := h.service.GetEmptyGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroupByName retrieves a group by its exact name
// @Summary Get group by name
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} service.GroupResponse "Group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/by-name/{name} [get]
func (h *GroupHandler) GetGroupByName(c *gin.Context) {
	group, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetGroupByMetadata retrieves the group with an exact metadata value
// @Summary Get group by metadata value
// @Tags groups
// @Produce json
// @Param field query string true "Metadata field name, e.g. dc.identifier"
// @Param value query string true "Exact value"
// @Success 200 {object} service.GroupResponse "Group"
// @Failure 400 {object} ErrorResponse "Missing or malformed field"
// @Failure 404 {object} ErrorResponse "Group or field not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/by-metadata [get]
func (h *GroupHandler) GetGroupByMetadata(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "field parameter is required"})
		return
	}

	group, err := h.service.GetByMetadata(c.Request.Context(), field, c.Query("value"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Group name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup retrieves a group by ID
// @Summary Get group by ID
// @Description Get a group with its direct members, subgroups and metadata
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupDetailsResponse "Successfully retrieved group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}

	group, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup renames a group
// @Summary Rename group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.UpdateGroupRequest true "New name"
// @Success 200 {object} service.GroupResponse "Successfully renamed group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Group name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}

	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.Rename(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Description Delete a group with its memberships, nesting edges and metadata. Permanent groups are refused.
// @Tags groups
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Successfully deleted group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Permanent group"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember adds an eperson to a group
// @Summary Add member
// @Tags groups
// @Accept json
// @Param id path string true "Group ID (UUID)"
// @Param member body AddMemberRequest true "EPerson to add"
// @Success 204 "Member added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group or eperson not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id}/members [post]
func (h *GroupHandler) AddMember(c *gin.Context) {
	groupID, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.AddMember(c.Request.Context(), groupID, req.EPersonID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMember removes an eperson from a group
// @Summary Remove member
// @Tags groups
// @Param id path string true "Group ID (UUID)"
// @Param epersonId path string true "EPerson ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Group or eperson not found"
// @Failure 409 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id}/members/{epersonId} [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	groupID, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}
	epersonID, ok := parseID(c, "epersonId", "Invalid eperson ID")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), groupID, epersonID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSubgroup nests a group inside another
// @Summary Add subgroup
// @Tags groups
// @Accept json
// @Param id path string true "Parent group ID (UUID)"
// @Param subgroup body AddSubgroupRequest true "Group to nest"
// @Success 204 "Subgroup added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Already nested or would create a cycle"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id}/subgroups [post]
func (h *GroupHandler) AddSubgroup(c *gin.Context) {
	parentID, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}

	var req AddSubgroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.AddSubgroup(c.Request.Context(), parentID, req.GroupID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveSubgroup removes a direct nesting
// @Summary Remove subgroup
// @Tags groups
// @Param id path string true "Parent group ID (UUID)"
// @Param childId path string true "Child group ID (UUID)"
// @Success 204 "Subgroup removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Not nested"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id}/subgroups/{childId} [delete]
func (h *GroupHandler) RemoveSubgroup(c *gin.Context) {
	parentID, ok := parseID(c, "id", "Invalid group ID")
	if !ok {
		return
	}
	childID, ok := parseID(c, "childId", "Invalid subgroup ID")
	if !ok {
		return
	}

	if err := h.service.RemoveSubgroup(c.Request.Context(), parentID, childID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGroup2Group lists the direct nesting edges
// @Summary List group nesting edges
// @Tags group2group
// @Produce json
// @Success 200 {array} models.GroupPair "Parent/child pairs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /group2group [get]
func (h *GroupHandler) GetGroup2Group(c *gin.Context) {
	pairs, err := h.service.GetGroup2GroupResults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairs)
}

// RebuildCache recomputes the transitive nesting cache
// @Summary Rebuild group2group cache
// @Tags group2group
// @Produce json
// @Success 200 {object} CountResponse "Number of cached pairs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /group2group/cache/rebuild [post]
func (h *GroupHandler) RebuildCache(c *gin.Context) {
	size, err := h.service.RebuildCache(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: int64(size)})
}

// parseID reads a UUID path parameter, answering 400 with msg when it is malformed
func parseID(c *gin.Context, param, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
		return uuid.Nil, false
	}
	return id, true
}
