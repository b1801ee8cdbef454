package repository

import (
	"context"
	"strings"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups.
// It runs on whatever session it was built with and never commits on its own.
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// WithTx returns a repository bound to the caller's transaction
func (r *GroupRepository) WithTx(tx *gorm.DB) GroupRepositoryInterface {
	return &GroupRepository{db: tx}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Omit("EPeople.*", "Groups.*").Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Rename changes the name of a group
func (r *GroupRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	res := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByName retrieves the group with exactly this name
func (r *GroupRepository) FindByName(ctx context.Context, name string) (*models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Limit(2).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return uniqueResult(groups)
}

// FindByNameAndEPerson retrieves the group called name when the eperson is a member,
// either directly or through a group nested below it according to group2group_cache.
// A blank name or a nil eperson is reported as not found without querying.
func (r *GroupRepository) FindByNameAndEPerson(ctx context.Context, name string, epersonID uuid.UUID) (*models.Group, error) {
	if strings.TrimSpace(name) == "" || epersonID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	var groups []models.Group
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT g.* FROM groups AS g
		LEFT JOIN group_epersons AS ge ON ge.group_id = g.id
		WHERE g.name = @name AND (
			ge.eperson_id = @eperson OR EXISTS (
				SELECT 1 FROM group2group_cache AS gc
				JOIN group_epersons AS cge ON cge.group_id = gc.child_id
				WHERE gc.parent_id = g.id AND cge.eperson_id = @eperson
			)
		)`,
		map[string]interface{}{"name": name, "eperson": epersonID},
	).Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return uniqueResult(groups)
}

// FindByEPerson retrieves every group the eperson is a direct member of
func (r *GroupRepository) FindByEPerson(ctx context.Context, epersonID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Table("groups AS g").
		Select("g.*").
		Joins("JOIN group_epersons AS ge ON ge.group_id = g.id").
		Where("ge.eperson_id = ?", epersonID).
		Order("g.name").
		Order("g.id").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// FindByMetadataField retrieves the single group whose value for field equals value.
// The field is expected to be effectively unique; more than one match is ErrMultipleResults.
func (r *GroupRepository) FindByMetadataField(ctx context.Context, value string, field *models.MetadataField) (*models.Group, error) {
	if field == nil {
		return nil, gorm.ErrRecordNotFound
	}
	q := newGroupQuery().Filter(value, operatorEquals, *field).Page(-1, 2)
	tx, err := q.Apply(r.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	var groups []models.Group
	if err := tx.Find(&groups).Error; err != nil {
		return nil, err
	}
	return uniqueResult(groups)
}

// FindAll retrieves all groups ordered by sortFields, then by sortColumn
func (r *GroupRepository) FindAll(ctx context.Context, sortFields []models.MetadataField, sortColumn string) ([]models.Group, error) {
	tx, err := newGroupQuery().SortBy(sortColumn, sortFields...).Apply(r.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	var groups []models.Group
	if err := tx.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Search retrieves groups where any of queryFields contains query, case-insensitively.
// Negative offset or limit means unbounded.
func (r *GroupRepository) Search(ctx context.Context, query string, queryFields []models.MetadataField, offset, limit int) ([]models.Group, error) {
	q := newGroupQuery().Filter(query, operatorContains, queryFields...).Page(offset, limit)
	tx, err := q.Apply(r.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	var groups []models.Group
	if err := tx.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// SearchResultCount counts the groups Search would return without pagination
func (r *GroupRepository) SearchResultCount(ctx context.Context, query string, queryFields []models.MetadataField) (int64, error) {
	tx, err := newGroupQuery().Count().Filter(query, operatorContains, queryFields...).Apply(r.db.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Delete removes the group. Nesting edges are removed with a direct statement first so no
// group2group row is left pointing at the deleted group.
func (r *GroupRepository) Delete(ctx context.Context, group *models.Group) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM group2group WHERE parent_id = ? OR child_id = ?", group.ID, group.ID).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM group_epersons WHERE group_id = ?", group.ID).Error; err != nil {
		return err
	}
	if err := db.Where("dspace_object_id = ?", group.ID).Delete(&models.MetadataValue{}).Error; err != nil {
		return err
	}
	res := db.Delete(&models.Group{}, "id = ?", group.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetGroup2GroupResults returns every direct parent/child nesting edge
func (r *GroupRepository) GetGroup2GroupResults(ctx context.Context) ([]models.GroupPair, error) {
	var pairs []models.GroupPair
	err := r.db.WithContext(ctx).
		Table("group2group").
		Select("parent_id, child_id").
		Order("parent_id").
		Order("child_id").
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// GetEmptyGroups returns groups without direct members; members of subgroups are not considered
func (r *GroupRepository) GetEmptyGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Table("groups AS g").
		Select("g.*").
		Where("NOT EXISTS (SELECT 1 FROM group_epersons AS ge WHERE ge.group_id = g.id)").
		Order("g.name").
		Order("g.id").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// CountRows returns the total number of groups
func (r *GroupRepository) CountRows(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Group{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// IsMember reports whether the eperson is a direct member of the group
func (r *GroupRepository) IsMember(ctx context.Context, groupID, epersonID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("group_epersons").
		Where("group_id = ? AND eperson_id = ?", groupID, epersonID).
		Count(&n).Error
	return n > 0, err
}

// AddMember adds the eperson as a direct member
func (r *GroupRepository) AddMember(ctx context.Context, group *models.Group, eperson *models.EPerson) error {
	return r.db.WithContext(ctx).Model(group).Association("EPeople").Append(eperson)
}

// RemoveMember removes the eperson from the direct members
func (r *GroupRepository) RemoveMember(ctx context.Context, group *models.Group, eperson *models.EPerson) error {
	return r.db.WithContext(ctx).Model(group).Association("EPeople").Delete(eperson)
}

// GetMembers returns the direct members of the group
func (r *GroupRepository) GetMembers(ctx context.Context, group *models.Group) ([]models.EPerson, error) {
	var epeople []models.EPerson
	if err := r.db.WithContext(ctx).Model(group).Order("email").Association("EPeople").Find(&epeople); err != nil {
		return nil, err
	}
	return epeople, nil
}

// HasSubgroup reports whether child is directly nested in parent
func (r *GroupRepository) HasSubgroup(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("group2group").
		Where("parent_id = ? AND child_id = ?", parentID, childID).
		Count(&n).Error
	return n > 0, err
}

// AddSubgroup nests child directly inside parent
func (r *GroupRepository) AddSubgroup(ctx context.Context, parent, child *models.Group) error {
	return r.db.WithContext(ctx).Model(parent).Association("Groups").Append(child)
}

// RemoveSubgroup removes the direct nesting of child inside parent
func (r *GroupRepository) RemoveSubgroup(ctx context.Context, parent, child *models.Group) error {
	return r.db.WithContext(ctx).Model(parent).Association("Groups").Delete(child)
}

// GetSubgroups returns the groups directly nested in the group
func (r *GroupRepository) GetSubgroups(ctx context.Context, group *models.Group) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Model(group).Order("name").Association("Groups").Find(&groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// uniqueResult expects at most one row
func uniqueResult(groups []models.Group) (*models.Group, error) {
	switch len(groups) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &groups[0], nil
	default:
		return nil, apperrors.ErrMultipleResults
	}
}
