package service

import "github.com/aminurdev/cms-auth/models"

// BuildMenuTree filters the flat menu list down to entries the given
// permissions grant access to, then assembles them into a forest.
//
// A menu with a nil PermissionID is public and always passes the filter.
// A menu whose parent is excluded by the filter never appears in the
// result, even when the menu itself is permitted: visibility cascades
// down the hierarchy. Only menus with a nil ParentID become top-level
// entries; a menu whose ParentID references nothing in the filtered set
// is dropped along with its subtree. Sibling order follows the order of
// the input slice.
//
// Every returned menu has a non-nil Children slice so the tree always
// serialises with an explicit children array.
//
// Returns ErrMenuCycle if the parent references in the input form a cycle.
func BuildMenuTree(menus []models.Menu, permissionIDs []int64) ([]models.Menu, error) {
	permitted := make(map[int64]struct{}, len(permissionIDs))
	for _, id := range permissionIDs {
		permitted[id] = struct{}{}
	}

	visible := make([]models.Menu, 0, len(menus))
	for _, menu := range menus {
		if menu.PermissionID == nil {
			visible = append(visible, menu)
			continue
		}
		if _, ok := permitted[*menu.PermissionID]; ok {
			visible = append(visible, menu)
		}
	}

	if err := detectMenuCycle(visible); err != nil {
		return nil, err
	}

	childrenOf := make(map[int64][]models.Menu, len(visible))
	roots := make([]models.Menu, 0, len(visible))
	for _, menu := range visible {
		if menu.ParentID == nil {
			roots = append(roots, menu)
			continue
		}
		childrenOf[*menu.ParentID] = append(childrenOf[*menu.ParentID], menu)
	}

	tree := make([]models.Menu, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, attachChildren(root, childrenOf))
	}

	return tree, nil
}

// attachChildren recursively copies menu with its whole subtree attached.
// Cycle detection has already run, so the recursion always terminates.
func attachChildren(menu models.Menu, childrenOf map[int64][]models.Menu) models.Menu {
	menu.Children = []models.Menu{}
	for _, child := range childrenOf[menu.ID] {
		menu.Children = append(menu.Children, attachChildren(child, childrenOf))
	}
	return menu
}

// detectMenuCycle walks parent links from every menu and fails when a
// chain revisits a node.
func detectMenuCycle(menus []models.Menu) error {
	parents := make(map[int64]*int64, len(menus))
	for _, menu := range menus {
		parents[menu.ID] = menu.ParentID
	}

	for _, menu := range menus {
		seen := map[int64]struct{}{menu.ID: {}}
		current := menu.ParentID
		for current != nil {
			if _, ok := seen[*current]; ok {
				return ErrMenuCycle
			}
			seen[*current] = struct{}{}
			next, ok := parents[*current]
			if !ok {
				break
			}
			current = next
		}
	}

	return nil
}
