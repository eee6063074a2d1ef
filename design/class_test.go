// Package design_test exercises class construction for the freeze registry.
package design_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formica/design"
)

func TestNewClass_Rejections(t *testing.T) {
	_, err := design.NewClass("")
	require.ErrorIs(t, err, design.ErrEmptyClassName)

	c, err := design.NewClass("Account")
	require.NoError(t, err)

	require.ErrorIs(t, c.AddMethod(-1, "deposit"), design.ErrNegativeElementID)
	require.ErrorIs(t, c.AddMethod(1, ""), design.ErrEmptyElementName)
	require.ErrorIs(t, c.AddAttribute(-2, "balance"), design.ErrNegativeElementID)
	require.ErrorIs(t, c.AddAttribute(2, ""), design.ErrEmptyElementName)
}

func TestClass_Accessors(t *testing.T) {
	c, err := design.NewClass("Account")
	require.NoError(t, err)
	require.Equal(t, "Account", c.Name())

	require.NoError(t, c.AddMethod(1, "deposit"))
	require.NoError(t, c.AddMethod(2, "withdraw"))
	require.NoError(t, c.AddAttribute(3, "balance"))

	methods := c.Methods()
	require.Len(t, methods, 2)
	require.Equal(t, design.Element{ID: 1, Name: "deposit"}, methods[0])

	attrs := c.Attributes()
	require.Len(t, attrs, 1)
	require.Equal(t, design.Element{ID: 3, Name: "balance"}, attrs[0])

	// Returned slices are copies; mutating them leaves the class intact.
	methods[0].Name = "mutated"
	require.Equal(t, "deposit", c.Methods()[0].Name)
}
