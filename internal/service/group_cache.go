package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"eperson-backend/internal/database/models"
	"eperson-backend/internal/repository"

	"github.com/google/uuid"
)

// rebuildCache replaces group2group_cache with the closure of the current nesting edges
func rebuildCache(ctx context.Context, repos *repository.Repositories) (int, error) {
	pairs, err := repos.Groups.GetGroup2GroupResults(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get group nesting: %w", err)
	}
	rows := computeClosure(pairs)
	if err := repos.Cache.Replace(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to replace group2group cache: %w", err)
	}
	return len(rows), nil
}

// computeClosure returns every (ancestor, descendant) pair reachable through the edges.
// A group is never recorded as its own descendant, even when the edges contain a loop.
// The result is sorted by parent then child.
func computeClosure(pairs []models.GroupPair) []models.Group2GroupCache {
	children := make(map[uuid.UUID][]uuid.UUID)
	for _, p := range pairs {
		children[p.ParentID] = append(children[p.ParentID], p.ChildID)
	}

	var rows []models.Group2GroupCache
	for parent := range children {
		visited := map[uuid.UUID]bool{parent: true}
		stack := append([]uuid.UUID(nil), children[parent]...)
		for len(stack) > 0 {
			n := len(stack) - 1
			child := stack[n]
			stack = stack[:n]
			if visited[child] {
				continue
			}
			visited[child] = true
			rows = append(rows, models.Group2GroupCache{ParentID: parent, ChildID: child})
			stack = append(stack, children[child]...)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := bytes.Compare(rows[i].ParentID[:], rows[j].ParentID[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(rows[i].ChildID[:], rows[j].ChildID[:]) < 0
	})
	return rows
}
