package service

import (
	"testing"

	"github.com/aminurdev/cms-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBuildMenuTree_ThreeLevelChain(t *testing.T) {
	menus := []models.Menu{
		{ID: 1, NameEn: "Dashboard", PermissionID: int64Ptr(10)},
		{ID: 2, NameEn: "Reports", ParentID: int64Ptr(1), PermissionID: int64Ptr(11)},
		{ID: 3, NameEn: "Monthly", ParentID: int64Ptr(2), PermissionID: int64Ptr(12)},
	}

	tree, err := BuildMenuTree(menus, []int64{10, 11, 12})
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, int64(2), tree[0].Children[0].ID)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, int64(3), tree[0].Children[0].Children[0].ID)
	assert.Empty(t, tree[0].Children[0].Children[0].Children)
}

func TestBuildMenuTree_ExcludedParentDropsSubtree(t *testing.T) {
	menus := []models.Menu{
		{ID: 1, NameEn: "Admin", PermissionID: int64Ptr(10)},
		{ID: 2, NameEn: "Users", ParentID: int64Ptr(1), PermissionID: int64Ptr(11)},
		{ID: 3, NameEn: "Home", PermissionID: int64Ptr(11)},
	}

	// permission 11 is granted but its parent (permission 10) is not:
	// the whole Admin subtree must disappear.
	tree, err := BuildMenuTree(menus, []int64{11})
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, int64(3), tree[0].ID)
}

func TestBuildMenuTree_PublicMenuAlwaysVisible(t *testing.T) {
	menus := []models.Menu{
		{ID: 1, NameEn: "Home"},
		{ID: 2, NameEn: "Secret", PermissionID: int64Ptr(99)},
	}

	tree, err := BuildMenuTree(menus, nil)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].ID)
}

func TestBuildMenuTree_PreservesSiblingOrder(t *testing.T) {
	menus := []models.Menu{
		{ID: 5, NameEn: "Third", ParentID: int64Ptr(1)},
		{ID: 1, NameEn: "Root"},
		{ID: 2, NameEn: "First", ParentID: int64Ptr(1)},
		{ID: 4, NameEn: "Second", ParentID: int64Ptr(1)},
	}

	tree, err := BuildMenuTree(menus, nil)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 3)
	assert.Equal(t, int64(5), tree[0].Children[0].ID)
	assert.Equal(t, int64(2), tree[0].Children[1].ID)
	assert.Equal(t, int64(4), tree[0].Children[2].ID)
}

func TestBuildMenuTree_DanglingParentDropsMenu(t *testing.T) {
	menus := []models.Menu{
		{ID: 7, NameEn: "Orphan", ParentID: int64Ptr(404)},
		{ID: 8, NameEn: "Home"},
	}

	tree, err := BuildMenuTree(menus, nil)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, int64(8), tree[0].ID)
	assert.NotNil(t, tree[0].Children)
}

func TestBuildMenuTree_CycleDetected(t *testing.T) {
	menus := []models.Menu{
		{ID: 1, NameEn: "A", ParentID: int64Ptr(2)},
		{ID: 2, NameEn: "B", ParentID: int64Ptr(1)},
	}

	_, err := BuildMenuTree(menus, nil)
	assert.ErrorIs(t, err, ErrMenuCycle)
}

func TestBuildMenuTree_SelfReferenceDetected(t *testing.T) {
	menus := []models.Menu{
		{ID: 1, NameEn: "Loop", ParentID: int64Ptr(1)},
	}

	_, err := BuildMenuTree(menus, nil)
	assert.ErrorIs(t, err, ErrMenuCycle)
}

func TestBuildMenuTree_EmptyInput(t *testing.T) {
	tree, err := BuildMenuTree(nil, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, tree)
}
