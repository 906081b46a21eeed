package physics

import "strings"

// Layer is a bit mask of collision layers.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerWall
	LayerPlatform
	LayerAgent

	LayerNone Layer = 0
	LayerAll        = LayerGround | LayerWall | LayerPlatform | LayerAgent
)

var layerNames = []struct {
	layer Layer
	name  string
}{
	{LayerGround, "ground"},
	{LayerWall, "wall"},
	{LayerPlatform, "platform"},
	{LayerAgent, "agent"},
}

// Has reports whether any bit of o is set in l.
func (l Layer) Has(o Layer) bool {
	return l&o != 0
}

// Except clears the bits of o.
func (l Layer) Except(o Layer) Layer {
	return l &^ o
}

// Tags returns the broadphase tag of every set bit.
func (l Layer) Tags() []string {
	var tags []string
	for _, ln := range layerNames {
		if l.Has(ln.layer) {
			tags = append(tags, ln.name)
		}
	}
	return tags
}

func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	return strings.Join(l.Tags(), "|")
}

// ParseLayer maps a tag list such as "ground|platform" to a mask. Unknown
// names are ignored.
func ParseLayer(s string) Layer {
	var l Layer
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		for _, ln := range layerNames {
			if ln.name == part {
				l |= ln.layer
			}
		}
	}
	return l
}
