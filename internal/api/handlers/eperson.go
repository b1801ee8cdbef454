package handlers

import (
	"net/http"

	"eperson-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EPersonHandler handles HTTP requests for epeople and their group memberships
type EPersonHandler struct {
	epersons service.EPersonServiceInterface
	groups   service.GroupServiceInterface
}

// NewEPersonHandler creates a new eperson handler
func NewEPersonHandler(epersons service.EPersonServiceInterface, groups service.GroupServiceInterface) *EPersonHandler {
	return &EPersonHandler{epersons: epersons, groups: groups}
}

// MembershipResponse answers a membership check
type MembershipResponse struct {
	Group    string `json:"group"`
	IsMember bool   `json:"is_member"`
}

// CreateEPerson creates a new eperson
// @Summary Create eperson
// @Tags epersons
// @Accept json
// @Produce json
// @Param eperson body service.CreateEPersonRequest true "EPerson data"
// @Success 201 {object} service.EPersonResponse "Successfully created eperson"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /epersons [post]
func (h *EPersonHandler) CreateEPerson(c *gin.Context) {
	var req service.CreateEPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	eperson, err := h.epersons.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, eperson)
}

// GetEPerson retrieves an eperson by ID
// @Summary Get eperson by ID
// @Tags epersons
// @Produce json
// @Param id path string true "EPerson ID (UUID)"
// @Success 200 {object} service.EPersonResponse "EPerson"
// @Failure 400 {object} ErrorResponse "Invalid eperson ID"
// @Failure 404 {object} ErrorResponse "EPerson not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /epersons/{id} [get]
func (h *EPersonHandler) GetEPerson(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid eperson ID")
	if !ok {
		return
	}

	eperson, err := h.epersons.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eperson)
}

// GetEPersonByEmail retrieves an eperson by email
// @Summary Find eperson by email
// @Tags epersons
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} service.EPersonResponse "EPerson"
// @Failure 400 {object} ErrorResponse "Missing email"
// @Failure 404 {object} ErrorResponse "EPerson not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /epersons [get]
func (h *EPersonHandler) GetEPersonByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email query parameter is required"})
		return
	}

	eperson, err := h.epersons.GetByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eperson)
}

// GetEPersonGroups lists the groups an eperson directly belongs to
// @Summary List groups of an eperson
// @Tags epersons
// @Produce json
// @Param id path string true "EPerson ID (UUID)"
// @Success 200 {array} service.GroupResponse "Groups"
// @Failure 400 {object} ErrorResponse "Invalid eperson ID"
// @Failure 404 {object} ErrorResponse "EPerson not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /epersons/{id}/groups [get]
func (h *EPersonHandler) GetEPersonGroups(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid eperson ID")
	if !ok {
		return
	}

	groups, err := h.groups.ListByEPerson(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CheckMembership tells whether an eperson belongs to the named group, including through subgroups
// @Summary Check group membership
// @Tags epersons
// @Produce json
// @Param id path string true "EPerson ID (UUID)"
// @Param name path string true "Group name"
// @Success 200 {object} MembershipResponse "Membership"
// @Failure 400 {object} ErrorResponse "Invalid eperson ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /epersons/{id}/memberships/{name} [get]
func (h *EPersonHandler) CheckMembership(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid eperson ID")
	if !ok {
		return
	}

	name := c.Param("name")
	member, err := h.groups.IsMember(c.Request.Context(), name, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MembershipResponse{Group: name, IsMember: member})
}
