package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="8">
 <objectgroup id="1" name="Floors">
  <object id="1" x="0" y="0" width="320" height="160"/>
 </objectgroup>
 <objectgroup id="2" name="Walls">
  <object id="2" x="0" y="0" width="320" height="16">
   <properties>
    <property name="height" type="float" value="4"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Platforms">
  <object id="3" x="160" y="64" width="32" height="32">
   <properties>
    <property name="top" type="float" value="2"/>
    <property name="axis" value="x"/>
    <property name="travel" type="float" value="3"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="4" x="32" y="48">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Enemies">
  <object id="5" x="256" y="80">
   <properties>
    <property name="kind" value="brute"/>
   </properties>
   <point/>
  </object>
  <object id="6" x="128" y="80">
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Floors">
  <object id="1" x="0" y="0" width="64" height="64"/>
 </objectgroup>
</map>
`

var testOptions = Options{PixelsPerMeter: 16, DefaultTravel: 2, DefaultPeriod: 2.5}

func vecNear(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testArena)}}

	arena, err := Load(fsys, "levels/test.tmx", testOptions)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if arena.Name != "test" {
		t.Errorf("name = %q, want test", arena.Name)
	}
	if arena.Width != 20 || arena.Depth != 10 {
		t.Errorf("size = %vx%v, want 20x10", arena.Width, arena.Depth)
	}

	if len(arena.Floors) != 1 {
		t.Fatalf("floors = %d, want 1", len(arena.Floors))
	}
	floor := arena.Floors[0]
	if !vecNear(floor.Min, mgl64.Vec3{0, -1, 0}) || !vecNear(floor.Max, mgl64.Vec3{20, 0, 10}) {
		t.Errorf("floor = %v..%v", floor.Min, floor.Max)
	}

	if len(arena.Walls) != 1 || !vecNear(arena.Walls[0].Max, mgl64.Vec3{20, 4, 1}) {
		t.Errorf("walls = %+v", arena.Walls)
	}

	if len(arena.Platforms) != 1 {
		t.Fatalf("platforms = %d, want 1", len(arena.Platforms))
	}
	p := arena.Platforms[0]
	if !vecNear(p.Min, mgl64.Vec3{10, 1.5, 4}) || !vecNear(p.Max, mgl64.Vec3{12, 2, 6}) {
		t.Errorf("platform box = %v..%v", p.Min, p.Max)
	}
	if !vecNear(p.Travel, mgl64.Vec3{3, 0, 0}) {
		t.Errorf("platform travel = %v, want (3,0,0)", p.Travel)
	}
	if p.Period != 2.5 {
		t.Errorf("platform period = %v, want default 2.5", p.Period)
	}

	if !vecNear(arena.PlayerSpawn, mgl64.Vec3{2, 1, 3}) {
		t.Errorf("player spawn = %v, want (2,1,3)", arena.PlayerSpawn)
	}

	if len(arena.Enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(arena.Enemies))
	}
	if arena.Enemies[0].Kind != "slime" || arena.Enemies[1].Kind != "brute" {
		t.Errorf("enemy order = %q, %q; want slime then brute", arena.Enemies[0].Kind, arena.Enemies[1].Kind)
	}
}

func TestLoadRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noSpawnArena)}}

	_, err := Load(fsys, "levels/empty.tmx", testOptions)
	if !errors.Is(err, ErrNoPlayerSpawn) {
		t.Fatalf("Load() error = %v, want ErrNoPlayerSpawn", err)
	}
}

func TestLoadRejectsBadScale(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testArena)}}

	if _, err := Load(fsys, "levels/test.tmx", Options{}); err == nil {
		t.Fatal("expected error for zero pixels per meter")
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: []byte(testArena)},
		"levels/a.tmx":      {Data: []byte(testArena)},
		"levels/readme.txt": {Data: []byte("not a level")},
		"elsewhere/c.tmx":   {Data: []byte(testArena)},
	}

	arenas, names, err := LoadAll(fsys, "levels", testOptions)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v, want [a b]", names)
	}
	if arenas["a"] == nil || arenas["b"] == nil {
		t.Fatal("missing arena in map")
	}

	if _, _, err := LoadAll(fsys, "nothing", testOptions); err == nil {
		t.Fatal("expected error for directory without levels")
	}
}
