package keys

// KeyConfig is the resolved key configuration shared by every component that
// dispatches keys or renders hints.
type KeyConfig struct {
	Keys    KeysList
	Symbols KeySymbols
}

// DefaultKeyConfig returns the compiled-in bindings and symbols.
func DefaultKeyConfig() *KeyConfig {
	return &KeyConfig{Keys: DefaultKeysList(), Symbols: DefaultKeySymbols()}
}

func (c *KeyConfig) Hint(ev KeyEvent) string {
	return Hint(ev, c.Symbols)
}

// HintFor renders the binding stored under slot, or "" for an unknown slot.
func (c *KeyConfig) HintFor(slot string) string {
	ev, err := c.Keys.Lookup(slot)
	if err != nil {
		return ""
	}
	return c.Hint(ev)
}

// Matches reports whether ev triggers binding.
func Matches(ev, binding KeyEvent) bool {
	return ev.Normalize() == binding.Normalize()
}
