package domain

// Allowlist is the fixed set of asset identifiers a deployment accepts.
// It is built once at startup from configuration and never mutated.
//
// Campaign creation does not consult the allow-list; it is exposed to
// operators and clients as a read-only capability.
type Allowlist struct {
	order  []string
	assets map[string]struct{}
}

// NewAllowlist builds an allow-list from the given identifiers. Duplicates
// and empty strings are dropped; the original order is preserved.
func NewAllowlist(assets []string) Allowlist {
	a := Allowlist{assets: make(map[string]struct{}, len(assets))}
	for _, asset := range assets {
		if asset == "" {
			continue
		}
		if _, ok := a.assets[asset]; ok {
			continue
		}
		a.assets[asset] = struct{}{}
		a.order = append(a.order, asset)
	}
	return a
}

// Allowed reports whether the asset identifier is in the set.
func (a Allowlist) Allowed(asset string) bool {
	_, ok := a.assets[asset]
	return ok
}

// Assets returns the identifiers in their configured order.
func (a Allowlist) Assets() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}
