package nulltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// Visibility.Visible
// -----------------------------------------------------------------------------

// TestVisibility_Visible verifies the inclusion predicate for every
// modifier/level combination: package includes everything but private,
// protected includes public+protected, public includes public only.
func TestVisibility_Visible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		mods          Modifier
		pkg, prot, pub bool
	}{
		{"public", ModPublic, true, true, true},
		{"protected", ModProtected, true, true, false},
		{"package-private", 0, true, false, false},
		{"private", ModPrivate, false, false, false},
		{"public static", ModPublic | ModStatic, true, true, true},
		{"package-private static", ModStatic, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.pkg, VisibilityPackage.Visible(tc.mods))
			assert.Equal(t, tc.prot, VisibilityProtected.Visible(tc.mods))
			assert.Equal(t, tc.pub, VisibilityPublic.Visible(tc.mods))
		})
	}
}

//
// -----------------------------------------------------------------------------
// String renderings
// -----------------------------------------------------------------------------

// TestModifier_String verifies bit-set rendering, including the empty set.
func TestModifier_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "package-private", Modifier(0).String())
	assert.Equal(t, "public", ModPublic.String())
	assert.Equal(t, "public|static", (ModPublic | ModStatic).String())
	assert.Equal(t, "private|synthetic", (ModPrivate | ModSynthetic).String())
}

// TestVisibility_String verifies level names used in scan logs.
func TestVisibility_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "package", VisibilityPackage.String())
	assert.Equal(t, "protected", VisibilityProtected.String())
	assert.Equal(t, "public", VisibilityPublic.String())
}

// TestModifier_Has verifies multi-bit membership.
func TestModifier_Has(t *testing.T) {
	t.Parallel()

	m := ModPublic | ModStatic
	assert.True(t, m.Has(ModPublic))
	assert.True(t, m.Has(ModPublic|ModStatic))
	assert.False(t, m.Has(ModSynthetic))
	assert.False(t, m.Has(ModPublic|ModSynthetic))
}
