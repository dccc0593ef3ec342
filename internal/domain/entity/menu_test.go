package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuNode_Validate_Link(t *testing.T) {
	node := NewMenuLink("Shop", "/shop").WithDescription("Browse the catalog")
	require.NoError(t, node.Validate())
}

func TestMenuNode_Validate_LinkWithoutURL(t *testing.T) {
	node := MenuNode{Kind: MenuNodeLink, Label: "Shop"}
	assert.Error(t, node.Validate())
}

func TestMenuNode_Validate_SubmenuRules(t *testing.T) {
	submenu := NewSubmenu("Products",
		NewMenuLink("Divot Tools", "/shop/divot-tools"),
		NewMenuLink("Apparel", "/shop/apparel").WithIcon("shirt"),
	)
	require.NoError(t, submenu.Validate())

	empty := MenuNode{Kind: MenuNodeSubmenu, Label: "Products"}
	assert.Error(t, empty.Validate())

	withURL := NewSubmenu("Products", NewMenuLink("Apparel", "/shop/apparel"))
	withURL.URL = "/shop"
	assert.Error(t, withURL.Validate())
}

func TestMenuNode_UnmarshalJSON_RejectsInvalidShapes(t *testing.T) {
	valid := `{"kind":"submenu","label":"Shop","items":[{"kind":"link","label":"Apparel","url":"/shop/apparel"}]}`
	var node MenuNode
	require.NoError(t, json.Unmarshal([]byte(valid), &node))
	assert.Equal(t, MenuNodeSubmenu, node.Kind)
	assert.Len(t, node.Children, 1)

	cases := map[string]string{
		"link with children": `{"kind":"link","label":"Shop","url":"/shop","items":[{"kind":"link","label":"X","url":"/x"}]}`,
		"unknown kind":       `{"kind":"dropdown","label":"Shop"}`,
		"missing label":      `{"kind":"link","url":"/shop"}`,
		"invalid child":      `{"kind":"submenu","label":"Shop","items":[{"kind":"link","label":"X"}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var got MenuNode
			assert.Error(t, json.Unmarshal([]byte(payload), &got))
		})
	}
}

func TestMenuNode_RoundTrip(t *testing.T) {
	menu := NewSubmenu("Main",
		NewMenuLink("Home", "/"),
		NewSubmenu("Shop",
			NewMenuLink("Divot Tools", "/shop/divot-tools").WithDescription("Hand-finished hardwood tools"),
			NewMenuLink("Apparel", "/shop/apparel"),
		),
		NewMenuLink("Custom Work", "/custom"),
	)

	data, err := json.Marshal(menu)
	require.NoError(t, err)

	var decoded MenuNode
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, menu, decoded)
}
