package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/logger"
	"eperson-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	titleField       = "dc.title"
	descriptionField = "dc.description"

	defaultPageSize = 20
	maxPageSize     = 100
)

// GroupService handles business logic for groups
type GroupService struct {
	repos        *repository.Repositories
	tx           repository.Transactor
	validator    *validator.Validate
	searchFields []string
}

// NewGroupService creates a new group service. searchFields are the metadata field
// names ("dc.title") matched by Search.
func NewGroupService(repos *repository.Repositories, tx repository.Transactor, validator *validator.Validate, searchFields []string) *GroupService {
	if len(searchFields) == 0 {
		searchFields = []string{titleField}
	}
	return &GroupService{
		repos:        repos,
		tx:           tx,
		validator:    validator,
		searchFields: searchFields,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=250"`
	Description string `json:"description" validate:"max=2000"`
	Permanent   bool   `json:"permanent"`
}

// UpdateGroupRequest represents the request to rename a group
type UpdateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=250"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Permanent bool      `json:"permanent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupDetailsResponse is a group with its direct members, subgroups and metadata
type GroupDetailsResponse struct {
	GroupResponse
	Members   []EPersonResponse   `json:"members"`
	Subgroups []GroupResponse     `json:"subgroups"`
	Metadata  map[string][]string `json:"metadata"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups   []GroupResponse `json:"groups"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new group and mirrors its name into dc.title
func (s *GroupService) Create(ctx context.Context, req *CreateGroupRequest) (*GroupResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group := &models.Group{Name: req.Name, Permanent: req.Permanent}
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		existing, err := repos.Groups.FindByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing group: %w", err)
		}
		if existing != nil {
			return apperrors.ErrGroupExists
		}

		if err := repos.Groups.Create(ctx, group); err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		if err := setMetadata(ctx, repos, group.ID, titleField, req.Name); err != nil {
			return err
		}
		if req.Description != "" {
			if err := setMetadata(ctx, repos, group.ID, descriptionField, req.Description); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id": group.ID,
		"name":     group.Name,
	}).Info("group created")

	return toGroupResponse(group), nil
}

// GetByID retrieves a group with its direct members, subgroups and metadata
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*GroupDetailsResponse, error) {
	group, err := s.repos.Groups.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}

	members, err := s.repos.Groups.GetMembers(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	subgroups, err := s.repos.Groups.GetSubgroups(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to get subgroups: %w", err)
	}
	values, err := s.repos.Metadata.GetValues(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group metadata: %w", err)
	}

	details := &GroupDetailsResponse{
		GroupResponse: *toGroupResponse(group),
		Members:       make([]EPersonResponse, len(members)),
		Subgroups:     toGroupResponses(subgroups),
		Metadata:      make(map[string][]string),
	}
	for i := range members {
		details.Members[i] = *toEPersonResponse(&members[i])
	}
	for _, v := range values {
		key := v.MetadataField.String()
		details.Metadata[key] = append(details.Metadata[key], v.TextValue)
	}
	return details, nil
}

// GetByName retrieves a group by its exact name
func (s *GroupService) GetByName(ctx context.Context, name string) (*GroupResponse, error) {
	group, err := s.repos.Groups.FindByName(ctx, name)
	if err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	return toGroupResponse(group), nil
}

// GetByMetadata retrieves the group whose fieldName value equals value
func (s *GroupService) GetByMetadata(ctx context.Context, fieldName, value string) (*GroupResponse, error) {
	field, err := s.repos.Metadata.FindFieldByName(ctx, fieldName)
	if err != nil {
		return nil, translate(err, apperrors.ErrMetadataFieldNotFound, "get metadata field")
	}
	group, err := s.repos.Groups.FindByMetadataField(ctx, value, field)
	if err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	return toGroupResponse(group), nil
}

// List retrieves all groups sorted by the named metadata fields, then by sortColumn
func (s *GroupService) List(ctx context.Context, sortFieldNames []string, sortColumn string) ([]GroupResponse, error) {
	sortFields, err := s.resolveFields(ctx, sortFieldNames)
	if err != nil {
		return nil, err
	}
	groups, err := s.repos.Groups.FindAll(ctx, sortFields, sortColumn)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSortColumn) {
			return nil, apperrors.NewValidationError("sort_column", err.Error())
		}
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return toGroupResponses(groups), nil
}

// Search finds groups whose search fields contain query. A UUID query looks the group up by id.
func (s *GroupService) Search(ctx context.Context, query string, page, pageSize int) (*GroupListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	// (page-1)*pageSize must fit in an int
	if page-1 > math.MaxInt/pageSize {
		return nil, fmt.Errorf("%w: page %d is out of range", apperrors.ErrInvalidPaginationParams, page)
	}
	query = strings.TrimSpace(query)

	if id, err := uuid.Parse(query); err == nil {
		result := &GroupListResponse{Groups: []GroupResponse{}, Page: page, PageSize: pageSize}
		group, err := s.repos.Groups.GetByID(ctx, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to search groups: %w", err)
		}
		if group != nil && page == 1 {
			result.Groups = append(result.Groups, *toGroupResponse(group))
		}
		if group != nil {
			result.Total = 1
		}
		return result, nil
	}

	fields, err := s.resolveFields(ctx, s.searchFields)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, apperrors.NewConfigurationError("group search fields: " + err.Error())
		}
		return nil, err
	}

	offset := (page - 1) * pageSize
	groups, err := s.repos.Groups.Search(ctx, query, fields, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search groups: %w", err)
	}
	total, err := s.repos.Groups.SearchResultCount(ctx, query, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to count groups: %w", err)
	}

	return &GroupListResponse{
		Groups:   toGroupResponses(groups),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Count returns the number of groups
func (s *GroupService) Count(ctx context.Context) (int64, error) {
	total, err := s.repos.Groups.CountRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count groups: %w", err)
	}
	return total, nil
}

// GetEmptyGroups returns the groups without direct members
func (s *GroupService) GetEmptyGroups(ctx context.Context) ([]GroupResponse, error) {
	groups, err := s.repos.Groups.GetEmptyGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get empty groups: %w", err)
	}
	return toGroupResponses(groups), nil
}

// Rename changes the name of a group and its dc.title
func (s *GroupService) Rename(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var renamed *models.Group
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		group, err := repos.Groups.GetByID(ctx, id)
		if err != nil {
			return translate(err, apperrors.ErrGroupNotFound, "get group")
		}

		existing, err := repos.Groups.FindByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing group: %w", err)
		}
		if existing != nil && existing.ID != id {
			return apperrors.ErrGroupExists
		}

		if err := repos.Groups.Rename(ctx, id, req.Name); err != nil {
			return fmt.Errorf("failed to rename group: %w", err)
		}
		if err := setMetadata(ctx, repos, id, titleField, req.Name); err != nil {
			return err
		}
		renamed, err = repos.Groups.GetByID(ctx, group.ID)
		if err != nil {
			return fmt.Errorf("failed to get renamed group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("group_id", id).Infof("group renamed to %q", req.Name)
	return toGroupResponse(renamed), nil
}

// Delete deletes a group, its nesting edges and memberships, then refreshes the cache
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		group, err := repos.Groups.GetByID(ctx, id)
		if err != nil {
			return translate(err, apperrors.ErrGroupNotFound, "get group")
		}
		if group.Permanent {
			return apperrors.ErrPermanentGroup
		}
		if err := repos.Groups.Delete(ctx, group); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		_, err = rebuildCache(ctx, repos)
		return err
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("group_id", id).Info("group deleted")
	return nil
}

// AddMember makes the eperson a direct member of the group
func (s *GroupService) AddMember(ctx context.Context, groupID, epersonID uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		group, eperson, err := loadGroupAndEPerson(ctx, repos, groupID, epersonID)
		if err != nil {
			return err
		}
		member, err := repos.Groups.IsMember(ctx, group.ID, eperson.ID)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if member {
			return apperrors.ErrMemberAlreadyAssigned
		}
		if err := repos.Groups.AddMember(ctx, group, eperson); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":   groupID,
		"eperson_id": epersonID,
	}).Info("member added to group")
	return nil
}

// RemoveMember removes the eperson from the direct members of the group
func (s *GroupService) RemoveMember(ctx context.Context, groupID, epersonID uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		group, eperson, err := loadGroupAndEPerson(ctx, repos, groupID, epersonID)
		if err != nil {
			return err
		}
		member, err := repos.Groups.IsMember(ctx, group.ID, eperson.ID)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !member {
			return apperrors.ErrMemberNotAssigned
		}
		if err := repos.Groups.RemoveMember(ctx, group, eperson); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":   groupID,
		"eperson_id": epersonID,
	}).Info("member removed from group")
	return nil
}

// AddSubgroup nests child inside parent. Nesting a group below itself is refused.
func (s *GroupService) AddSubgroup(ctx context.Context, parentID, childID uuid.UUID) error {
	if parentID == childID {
		return apperrors.ErrGroupCycle
	}
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		parent, child, err := loadGroupPair(ctx, repos, parentID, childID)
		if err != nil {
			return err
		}

		// child already above parent: the new edge would close a loop
		cycle, err := repos.Cache.IsAncestor(ctx, child.ID, parent.ID)
		if err != nil {
			return fmt.Errorf("failed to check group nesting: %w", err)
		}
		if cycle {
			return apperrors.ErrGroupCycle
		}

		nested, err := repos.Groups.HasSubgroup(ctx, parent.ID, child.ID)
		if err != nil {
			return fmt.Errorf("failed to check group nesting: %w", err)
		}
		if nested {
			return apperrors.ErrSubgroupAlreadyAssigned
		}

		if err := repos.Groups.AddSubgroup(ctx, parent, child); err != nil {
			return fmt.Errorf("failed to add subgroup: %w", err)
		}
		_, err = rebuildCache(ctx, repos)
		return err
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"parent_id": parentID,
		"child_id":  childID,
	}).Info("subgroup added")
	return nil
}

// RemoveSubgroup removes the direct nesting of child inside parent
func (s *GroupService) RemoveSubgroup(ctx context.Context, parentID, childID uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		parent, child, err := loadGroupPair(ctx, repos, parentID, childID)
		if err != nil {
			return err
		}
		nested, err := repos.Groups.HasSubgroup(ctx, parent.ID, child.ID)
		if err != nil {
			return fmt.Errorf("failed to check group nesting: %w", err)
		}
		if !nested {
			return apperrors.ErrSubgroupNotAssigned
		}
		if err := repos.Groups.RemoveSubgroup(ctx, parent, child); err != nil {
			return fmt.Errorf("failed to remove subgroup: %w", err)
		}
		_, err = rebuildCache(ctx, repos)
		return err
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"parent_id": parentID,
		"child_id":  childID,
	}).Info("subgroup removed")
	return nil
}

// ListByEPerson returns the groups the eperson is a direct member of
func (s *GroupService) ListByEPerson(ctx context.Context, epersonID uuid.UUID) ([]GroupResponse, error) {
	if _, err := s.repos.EPeople.GetByID(ctx, epersonID); err != nil {
		return nil, translate(err, apperrors.ErrEPersonNotFound, "get eperson")
	}
	groups, err := s.repos.Groups.FindByEPerson(ctx, epersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups of eperson: %w", err)
	}
	return toGroupResponses(groups), nil
}

// IsMember reports whether the eperson belongs to the named group, directly or through a subgroup
func (s *GroupService) IsMember(ctx context.Context, groupName string, epersonID uuid.UUID) (bool, error) {
	_, err := s.repos.Groups.FindByNameAndEPerson(ctx, groupName, epersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

// GetGroup2GroupResults returns every direct nesting edge
func (s *GroupService) GetGroup2GroupResults(ctx context.Context) ([]models.GroupPair, error) {
	pairs, err := s.repos.Groups.GetGroup2GroupResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get group nesting: %w", err)
	}
	return pairs, nil
}

// RebuildCache recomputes group2group_cache from the nesting edges and returns its size
func (s *GroupService) RebuildCache(ctx context.Context) (int, error) {
	var size int
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		size, err = rebuildCache(ctx, repos)
		return err
	})
	if err != nil {
		return 0, err
	}
	logger.WithContext(ctx).WithField("rows", size).Info("group2group cache rebuilt")
	return size, nil
}

// resolveFields loads metadata fields by name; an unknown name is a configuration problem
func (s *GroupService) resolveFields(ctx context.Context, names []string) ([]models.MetadataField, error) {
	fields := make([]models.MetadataField, 0, len(names))
	for _, name := range names {
		field, err := s.repos.Metadata.FindFieldByName(ctx, name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("field", "unknown metadata field "+name)
			}
			if apperrors.IsValidation(err) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get metadata field %s: %w", name, err)
		}
		fields = append(fields, *field)
	}
	return fields, nil
}

func setMetadata(ctx context.Context, repos *repository.Repositories, dsoID uuid.UUID, fieldName, value string) error {
	field, err := repos.Metadata.FindFieldByName(ctx, fieldName)
	if err != nil {
		return translate(err, apperrors.ErrMetadataFieldNotFound, "get metadata field "+fieldName)
	}
	if err := repos.Metadata.SetValue(ctx, dsoID, field, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", fieldName, err)
	}
	return nil
}

func loadGroupAndEPerson(ctx context.Context, repos *repository.Repositories, groupID, epersonID uuid.UUID) (*models.Group, *models.EPerson, error) {
	group, err := repos.Groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	eperson, err := repos.EPeople.GetByID(ctx, epersonID)
	if err != nil {
		return nil, nil, translate(err, apperrors.ErrEPersonNotFound, "get eperson")
	}
	return group, eperson, nil
}

func loadGroupPair(ctx context.Context, repos *repository.Repositories, parentID, childID uuid.UUID) (*models.Group, *models.Group, error) {
	parent, err := repos.Groups.GetByID(ctx, parentID)
	if err != nil {
		return nil, nil, translate(err, apperrors.ErrGroupNotFound, "get parent group")
	}
	child, err := repos.Groups.GetByID(ctx, childID)
	if err != nil {
		return nil, nil, translate(err, apperrors.ErrGroupNotFound, "get child group")
	}
	return parent, child, nil
}

// translate maps gorm's not-found onto notFound and wraps everything else
func translate(err, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func toGroupResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		Permanent: group.Permanent,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}

func toGroupResponses(groups []models.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i])
	}
	return responses
}
