package nulltest

// Modifier is a bit-set describing how a member is declared.
//
// Go itself only distinguishes exported from unexported identifiers; the
// richer set exists so that hand-registered members (and enumerators backed
// by something other than the runtime) can describe themselves precisely.
// The absence of any access bit means package-private.
type Modifier uint8

const (
	// ModPublic marks an exported member. The reflect-backed enumerator
	// marks everything it can see with this bit, since Go reflection only
	// surfaces exported methods.
	ModPublic Modifier = 1 << iota

	// ModProtected has no native Go equivalent; it is honored when an
	// enumerator supplies it.
	ModProtected

	// ModPrivate marks a member that no scan level includes.
	ModPrivate

	// ModStatic marks a package-level function registered against a type,
	// as opposed to a method with a receiver.
	ModStatic

	// ModSynthetic marks a member that was generated rather than declared.
	// Bulk scans always skip synthetic members.
	ModSynthetic
)

// Has reports whether every bit of flag is set.
func (m Modifier) Has(flag Modifier) bool { return m&flag == flag }

// String renders the set bits for diagnostics, e.g. "public|static".
func (m Modifier) String() string {
	if m == 0 {
		return "package-private"
	}
	names := [...]struct {
		bit  Modifier
		name string
	}{
		{ModPublic, "public"},
		{ModProtected, "protected"},
		{ModPrivate, "private"},
		{ModStatic, "static"},
		{ModSynthetic, "synthetic"},
	}
	var s string
	for _, n := range names {
		if m&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// Visibility selects which members a bulk scan includes, by inclusion
// breadth: VisibilityPackage is the broadest level and VisibilityPublic the
// narrowest. A scan at level v includes exactly the members visible under v.
type Visibility int

const (
	// VisibilityPackage includes everything that is not private.
	VisibilityPackage Visibility = iota

	// VisibilityProtected includes public and protected members only.
	VisibilityProtected

	// VisibilityPublic includes public members only.
	VisibilityPublic
)

// Visible reports whether a member declared with the given modifiers is
// included at this level.
func (v Visibility) Visible(m Modifier) bool {
	switch v {
	case VisibilityPackage:
		return !m.Has(ModPrivate)
	case VisibilityProtected:
		return m.Has(ModPublic) || m.Has(ModProtected)
	default:
		return m.Has(ModPublic)
	}
}

// String implements fmt.Stringer.
func (v Visibility) String() string {
	switch v {
	case VisibilityPackage:
		return "package"
	case VisibilityProtected:
		return "protected"
	default:
		return "public"
	}
}
