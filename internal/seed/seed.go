// Package seed loads epeople, groups, memberships and nesting from YAML files.
// Loading is idempotent: existing epeople and groups are reused and existing
// memberships are left alone.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "eperson-backend/internal/errors"
	"eperson-backend/internal/logger"
	"eperson-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// EPersonData is one eperson entry of an epersons*.yaml file
type EPersonData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	CanLogIn  *bool  `yaml:"can_log_in,omitempty"`
}

// GroupData is one group entry of a groups*.yaml file.
// Members are eperson emails, subgroups are group names.
type GroupData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Permanent   bool     `yaml:"permanent"`
	Members     []string `yaml:"members,omitempty"`
	Subgroups   []string `yaml:"subgroups,omitempty"`
}

// EPeopleFile is the layout of an epersons*.yaml file
type EPeopleFile struct {
	EPeople []EPersonData `yaml:"epersons"`
}

// GroupsFile is the layout of a groups*.yaml file
type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

// Result counts what a load created
type Result struct {
	EPeopleCreated int `json:"epersons_created"`
	GroupsCreated  int `json:"groups_created"`
	MembersAdded   int `json:"members_added"`
	SubgroupsAdded int `json:"subgroups_added"`
}

// Loader writes seed data through the services so validation and the nesting cache apply
type Loader struct {
	groups   service.GroupServiceInterface
	epersons service.EPersonServiceInterface
}

// NewLoader creates a new loader
func NewLoader(groups service.GroupServiceInterface, epersons service.EPersonServiceInterface) *Loader {
	return &Loader{groups: groups, epersons: epersons}
}

// LoadDir reads every epersons*.yaml and groups*.yaml file below dataDir and loads them
func (l *Loader) LoadDir(ctx context.Context, dataDir string) (*Result, error) {
	var epeople EPeopleFile
	if err := readFiles(dataDir, "epersons", func(data []byte) error {
		var file EPeopleFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		epeople.EPeople = append(epeople.EPeople, file.EPeople...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to read epersons: %w", err)
	}

	var groups GroupsFile
	if err := readFiles(dataDir, "groups", func(data []byte) error {
		var file GroupsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		groups.Groups = append(groups.Groups, file.Groups...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to read groups: %w", err)
	}

	return l.Load(ctx, epeople.EPeople, groups.Groups)
}

// Load creates the epeople first, then every group, then memberships and nesting
func (l *Loader) Load(ctx context.Context, epeople []EPersonData, groups []GroupData) (*Result, error) {
	ctx = logger.ContextWithSource(ctx, "seed")
	log := logger.WithContext(ctx)
	result := &Result{}

	epersonIDs := make(map[string]uuid.UUID, len(epeople))
	for _, data := range epeople {
		id, created, err := l.ensureEPerson(ctx, data)
		if err != nil {
			return result, fmt.Errorf("failed to create eperson %s: %w", data.Email, err)
		}
		epersonIDs[strings.ToLower(strings.TrimSpace(data.Email))] = id
		if created {
			result.EPeopleCreated++
		}
	}
	log.WithFields(map[string]interface{}{
		"created": result.EPeopleCreated,
		"total":   len(epeople),
	}).Info("epersons loaded")

	groupIDs := make(map[string]uuid.UUID, len(groups))
	for _, data := range groups {
		id, created, err := l.ensureGroup(ctx, data)
		if err != nil {
			return result, fmt.Errorf("failed to create group %s: %w", data.Name, err)
		}
		groupIDs[data.Name] = id
		if created {
			result.GroupsCreated++
		}
	}
	log.WithFields(map[string]interface{}{
		"created": result.GroupsCreated,
		"total":   len(groups),
	}).Info("groups loaded")

	for _, data := range groups {
		groupID := groupIDs[data.Name]

		for _, email := range data.Members {
			epersonID, err := l.lookupEPerson(ctx, epersonIDs, email)
			if err != nil {
				return result, fmt.Errorf("member %s of group %s: %w", email, data.Name, err)
			}
			err = l.groups.AddMember(ctx, groupID, epersonID)
			switch {
			case err == nil:
				result.MembersAdded++
			case errors.Is(err, apperrors.ErrMemberAlreadyAssigned):
			default:
				return result, fmt.Errorf("failed to add member %s to group %s: %w", email, data.Name, err)
			}
		}

		for _, name := range data.Subgroups {
			childID, err := l.lookupGroup(ctx, groupIDs, name)
			if err != nil {
				return result, fmt.Errorf("subgroup %s of group %s: %w", name, data.Name, err)
			}
			err = l.groups.AddSubgroup(ctx, groupID, childID)
			switch {
			case err == nil:
				result.SubgroupsAdded++
			case errors.Is(err, apperrors.ErrSubgroupAlreadyAssigned):
			default:
				return result, fmt.Errorf("failed to nest group %s in %s: %w", name, data.Name, err)
			}
		}
	}
	log.WithFields(map[string]interface{}{
		"members_added":   result.MembersAdded,
		"subgroups_added": result.SubgroupsAdded,
	}).Info("group relations loaded")

	return result, nil
}

func (l *Loader) ensureEPerson(ctx context.Context, data EPersonData) (uuid.UUID, bool, error) {
	existing, err := l.epersons.GetByEmail(ctx, data.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return uuid.Nil, false, err
	}

	created, err := l.epersons.Create(ctx, &service.CreateEPersonRequest{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		CanLogIn:  data.CanLogIn,
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.ID, true, nil
}

func (l *Loader) ensureGroup(ctx context.Context, data GroupData) (uuid.UUID, bool, error) {
	existing, err := l.groups.GetByName(ctx, data.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return uuid.Nil, false, err
	}

	created, err := l.groups.Create(ctx, &service.CreateGroupRequest{
		Name:        data.Name,
		Description: data.Description,
		Permanent:   data.Permanent,
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.ID, true, nil
}

// lookupEPerson resolves an email from this load, falling back to the database
func (l *Loader) lookupEPerson(ctx context.Context, known map[string]uuid.UUID, email string) (uuid.UUID, error) {
	if id, ok := known[strings.ToLower(strings.TrimSpace(email))]; ok {
		return id, nil
	}
	eperson, err := l.epersons.GetByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	return eperson.ID, nil
}

// lookupGroup resolves a group name from this load, falling back to the database
func (l *Loader) lookupGroup(ctx context.Context, known map[string]uuid.UUID, name string) (uuid.UUID, error) {
	if id, ok := known[name]; ok {
		return id, nil
	}
	group, err := l.groups.GetByName(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	return group.ID, nil
}

// readFiles calls fn with the content of every .yaml file below dataDir whose name contains kind
func readFiles(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(d.Name(), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}
