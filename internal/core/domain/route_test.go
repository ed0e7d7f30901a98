package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routeflow/internal/core/domain"
)

func TestValidateAndFix_TopLevelSeparator(t *testing.T) {
	r := domain.Route{Name: "device", Path: "device", Component: "device/index"}

	fixes := domain.ValidateAndFix(&r)

	assert.Equal(t, "/device", r.Path)
	require.Len(t, fixes, 1)
	assert.Contains(t, fixes[0].Reason, "leading separator")
}

func TestValidateAndFix_ChildPathsRelative(t *testing.T) {
	r := domain.Route{
		Name: "device",
		Path: "/device",
		Children: []domain.Route{
			{Name: "baseinfo", Path: "/baseinfo"},
			{Name: "list", Path: "list"},
			{Name: "detail", Path: "detail", Children: []domain.Route{
				{Name: "history", Path: "/history"},
			}},
		},
	}

	domain.ValidateAndFix(&r)

	assert.Equal(t, "baseinfo", r.Children[0].Path)
	assert.Equal(t, "list", r.Children[1].Path)
	assert.Equal(t, "history", r.Children[2].Children[0].Path)
}

func TestValidateAndFix_SynthesizesNames(t *testing.T) {
	r := domain.Route{Path: "/device/baseinfo"}

	fixes := domain.ValidateAndFix(&r)

	assert.Equal(t, "device-baseinfo", r.Name)
	require.Len(t, fixes, 1)
}

func TestValidateAndFix_EmptyPathGetsRootName(t *testing.T) {
	r := domain.Route{Component: "views/home"}

	domain.ValidateAndFix(&r)

	assert.Equal(t, domain.PathSeparator, r.Path)
	assert.Equal(t, domain.RootRouteName, r.Name)
}

func TestSynthesizeName_SeparatorOnlyPath(t *testing.T) {
	assert.Equal(t, domain.RootRouteName, domain.SynthesizeName("/"))
	assert.Equal(t, domain.RootRouteName, domain.SynthesizeName(""))
	assert.Equal(t, "device-list", domain.SynthesizeName("/device/list"))
}

func TestValidateAndFix_WellFormedRouteUntouched(t *testing.T) {
	r := domain.Route{
		Name: "workflow",
		Path: "/workflow",
		Children: []domain.Route{
			{Name: "list", Path: "list"},
		},
	}

	fixes := domain.ValidateAndFix(&r)

	assert.Empty(t, fixes)
}

// Every top-level path starts with a separator and no child path does,
// regardless of input shape.
func TestValidateAndFix_PostConditions(t *testing.T) {
	inputs := []domain.Route{
		{Path: "user"},
		{Name: "n", Path: "/n", Children: []domain.Route{{Path: "/a"}, {Path: "b"}}},
		{Path: "x/y", Children: []domain.Route{{Path: "/c", Children: []domain.Route{{Path: "/d"}}}}},
	}

	for i := range inputs {
		domain.ValidateAndFix(&inputs[i])

		r := inputs[i]
		assert.True(t, strings.HasPrefix(r.Path, "/"), "top-level path %q", r.Path)
		r.Walk(func(node domain.Route) {
			for _, c := range node.Children {
				assert.False(t, strings.HasPrefix(c.Path, "/"), "child path %q", c.Path)
				assert.NotEmpty(t, c.Name)
			}
		})
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"device/baseinfo", "device"},
		{"/device/baseinfo", "device"},
		{"device", ""},
		{"/device", ""},
		{"workflow/detail/history", "workflow/detail"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParentPath(tt.path), "path %q", tt.path)
	}
}

