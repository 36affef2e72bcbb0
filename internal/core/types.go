package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Engine defines the narrow contract the viewer needs from a binary cellular
// automaton. Cells returns a packed bitfield of PackedLen(W, H) bytes that the
// engine owns; callers must not keep it across any other Engine call.
type Engine interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []byte

	Clear()
	Toggle(row, col int)
	StampGlider(row, col int)
	StampPulsarPrecursor(row, col int)
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}
