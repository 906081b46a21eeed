package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/thirdperson/physics"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lafriks/go-tiled"
)

// Names used inside the TMX files.
const (
	SolidLayer     = "solid"
	SpawnGroup     = "PlayerSpawn"
	PlatformGroup  = "Platform"
	defaultLayer   = "ground"
	defaultThick   = 0.5
	defaultTileTop = 0
)

var ErrNoSpawn = errors.New("level has no player spawn")

// Load parses a TMX file from fsys. Callers pass embed.FS for the bundled
// arenas or os.DirFS for levels on disk.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tw, th := float32(m.TileWidth), float32(m.TileHeight)
	l := &Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Min:  mgl32.Vec3{0, 0, 0},
		Max:  mgl32.Vec3{float32(m.Width), 0, float32(m.Height)},
	}

	for _, layer := range m.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		if err := l.parseSolids(m, layer); err != nil {
			return nil, fmt.Errorf("%s: %w", tmxPath, err)
		}
	}

	spawned := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			objs := append([]*tiled.Object(nil), og.Objects...)
			// Leftmost spawn wins so the choice is stable across edits.
			sort.Slice(objs, func(i, j int) bool { return objs[i].X < objs[j].X })
			if len(objs) == 0 {
				continue
			}
			elevation, err := floatProp(objs[0].Properties, "elevation", 0)
			if err != nil {
				return nil, fmt.Errorf("%s: spawn: %w", tmxPath, err)
			}
			l.Spawn = mgl32.Vec3{float32(objs[0].X) / tw, elevation, float32(objs[0].Y) / th}
			spawned = true
		case PlatformGroup:
			for _, o := range og.Objects {
				p, err := parsePlatform(o, tw, th)
				if err != nil {
					return nil, fmt.Errorf("%s: platform %q: %w", tmxPath, o.Name, err)
				}
				l.Platforms = append(l.Platforms, p)
				l.grow(p.Box)
				l.grow(p.Box.Translate(p.Travel))
			}
		}
	}
	if !spawned {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	return l, nil
}

// LoadAll loads every .tmx file in dir, keyed by file stem, plus the sorted
// list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		l, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[l.Name] = l
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return levels, names, nil
}

// block is the vertical extent and layer a tileset tile stands for.
type block struct {
	base, top float32
	layer     physics.Layer
}

// parseSolids turns the tile layer into boxes, merging horizontal runs of
// the same tile into one collider.
func (l *Level) parseSolids(m *tiled.Map, layer *tiled.Layer) error {
	blocks := map[uint32]block{}
	lookup := func(t *tiled.LayerTile) (block, error) {
		if b, ok := blocks[t.ID]; ok {
			return b, nil
		}
		b := block{base: defaultTileTop - 1, top: defaultTileTop, layer: physics.LayerGround}
		if ts, missing := t.Tileset.GetTilesetTile(t.ID); missing == nil {
			var err error
			if b.top, err = floatProp(ts.Properties, "height", defaultTileTop); err != nil {
				return b, fmt.Errorf("tile %d: %w", t.ID, err)
			}
			if b.base, err = floatProp(ts.Properties, "base", b.top-1); err != nil {
				return b, fmt.Errorf("tile %d: %w", t.ID, err)
			}
			name := ts.Properties.GetString("layer")
			if name == "" {
				name = defaultLayer
			}
			if b.layer = physics.ParseLayer(name); b.layer == physics.LayerNone {
				return b, fmt.Errorf("tile %d: unknown layer %q", t.ID, name)
			}
		}
		if b.base >= b.top {
			return b, fmt.Errorf("tile %d: base %v not below height %v", t.ID, b.base, b.top)
		}
		blocks[t.ID] = b
		return b, nil
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; {
			t := layer.Tiles[y*m.Width+x]
			if t.IsNil() {
				x++
				continue
			}
			b, err := lookup(t)
			if err != nil {
				return err
			}
			end := x + 1
			for end < m.Width {
				next := layer.Tiles[y*m.Width+end]
				if next.IsNil() || next.ID != t.ID || next.Tileset != t.Tileset {
					break
				}
				end++
			}
			box := cube.Box(float32(x), b.base, float32(y), float32(end), b.top, float32(y+1))
			l.Solids = append(l.Solids, Solid{
				Name:  fmt.Sprintf("%s-%d-%d", b.layer, x, y),
				Box:   box,
				Layer: b.layer,
			})
			l.grow(box)
			x = end
		}
	}
	return nil
}

func parsePlatform(o *tiled.Object, tw, th float32) (Platform, error) {
	top, err := floatProp(o.Properties, "height", 0)
	if err != nil {
		return Platform{}, err
	}
	thick, err := floatProp(o.Properties, "thickness", defaultThick)
	if err != nil {
		return Platform{}, err
	}
	var travel mgl32.Vec3
	for i, axis := range []string{"dx", "dy", "dz"} {
		if travel[i], err = floatProp(o.Properties, axis, 0); err != nil {
			return Platform{}, err
		}
	}
	duration, err := floatProp(o.Properties, "duration", 0)
	if err != nil {
		return Platform{}, err
	}

	x, z := float32(o.X)/tw, float32(o.Y)/th
	w, d := float32(o.Width)/tw, float32(o.Height)/th
	if w <= 0 || d <= 0 || thick <= 0 {
		return Platform{}, fmt.Errorf("degenerate size %vx%vx%v", w, thick, d)
	}
	return Platform{
		Name:     o.Name,
		Box:      cube.Box(x, top-thick, z, x+w, top, z+d),
		Travel:   travel,
		Duration: duration,
	}, nil
}

// grow extends the level bounds to cover box.
func (l *Level) grow(box cube.BBox) {
	lo, hi := box.Min(), box.Max()
	for i := 0; i < 3; i++ {
		l.Min[i] = math32.Min(l.Min[i], lo[i])
		l.Max[i] = math32.Max(l.Max[i], hi[i])
	}
}

func floatProp(props tiled.Properties, name string, def float32) (float32, error) {
	s := props.GetString(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return def, fmt.Errorf("property %s: %w", name, err)
	}
	return float32(v), nil
}
