// Package entity keeps the live game objects of a session and their
// render handles in step.
package entity

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/physics"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
)

// Role tells the player apart from everything it can hit.
type Role int

const (
	RolePlayer Role = iota
	RoleObstacle
)

func (r Role) String() string {
	if r == RolePlayer {
		return "player"
	}
	return "obstacle"
}

// Entity is a positioned game object with a render handle.
type Entity struct {
	ID   uint64
	Role Role
	Pos  core.Vec3
	Vel  core.Vec3
	Half core.Vec3 // collision half extents

	// Consumed marks an obstacle that has already scored.
	Consumed bool

	// Link pairs two obstacles that move together, such as the halves of
	// a pipe gap.
	Link *Entity

	// Tag is free-form game data, e.g. a pipe pair's gap center.
	Tag float64

	handle scene.Handle
	live   bool
}

// Box returns the entity's collision box.
func (e *Entity) Box() physics.Box {
	return physics.Box{Center: e.Pos, Half: e.Half}
}

// Live reports whether the entity is still in its store.
func (e *Entity) Live() bool {
	return e.live
}

// Store owns the entities of one session and their surface primitives.
type Store struct {
	surface scene.Surface
	logger  *log.Logger

	nextID    uint64
	player    *Entity
	obstacles []*Entity
	scenery   []scene.Handle
}

// NewStore creates an empty store drawing on surface.
func NewStore(surface scene.Surface, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{surface: surface, logger: logger}
}

func (s *Store) create(role Role, pos core.Vec3, half core.Vec3, prim scene.Primitive) *Entity {
	h, err := s.surface.CreatePrimitive(prim, pos)
	if err != nil {
		s.logger.Warn("primitive created with fallback", "role", role, "kind", prim.Kind, "err", err)
	}
	s.nextID++
	return &Entity{
		ID:     s.nextID,
		Role:   role,
		Pos:    pos,
		Half:   half,
		handle: h,
		live:   true,
	}
}

// SpawnPlayer creates the player, replacing any previous one.
func (s *Store) SpawnPlayer(pos, half core.Vec3, prim scene.Primitive) *Entity {
	if s.player != nil {
		s.Despawn(s.player)
	}
	s.player = s.create(RolePlayer, pos, half, prim)
	return s.player
}

// SpawnObstacle creates an obstacle.
func (s *Store) SpawnObstacle(pos, half core.Vec3, prim scene.Primitive) *Entity {
	e := s.create(RoleObstacle, pos, half, prim)
	s.obstacles = append(s.obstacles, e)
	return e
}

// AddScenery creates a static primitive owned by the store. Scenery never
// collides and is released by Clear.
func (s *Store) AddScenery(prim scene.Primitive, pos core.Vec3) {
	h, err := s.surface.CreatePrimitive(prim, pos)
	if err != nil {
		s.logger.Warn("scenery created with fallback", "kind", prim.Kind, "err", err)
	}
	s.scenery = append(s.scenery, h)
}

// Despawn removes an entity and disposes of its primitive. It reports
// false if the entity was already gone.
func (s *Store) Despawn(e *Entity) bool {
	if e == nil || !e.live {
		return false
	}
	e.live = false
	s.surface.Dispose(e.handle)

	if e == s.player {
		s.player = nil
		return true
	}
	for i, o := range s.obstacles {
		if o == e {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			break
		}
	}
	return true
}

// ForEachLive calls fn for every live obstacle, newest first. fn may
// despawn any entity, including the current one; entities removed during
// the walk are skipped.
func (s *Store) ForEachLive(fn func(e *Entity)) {
	snapshot := make([]*Entity, len(s.obstacles))
	copy(snapshot, s.obstacles)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if e := snapshot[i]; e.live {
			fn(e)
		}
	}
}

// Obstacles returns the live obstacles in spawn order. The slice must not
// be modified.
func (s *Store) Obstacles() []*Entity {
	return s.obstacles
}

// Last returns the most recently spawned live obstacle, or nil.
func (s *Store) Last() *Entity {
	if len(s.obstacles) == 0 {
		return nil
	}
	return s.obstacles[len(s.obstacles)-1]
}

// Player returns the live player, or nil.
func (s *Store) Player() *Entity {
	return s.player
}

// Len returns the number of live obstacles.
func (s *Store) Len() int {
	return len(s.obstacles)
}

// Hit returns the first live obstacle overlapping the player, or nil.
func (s *Store) Hit() *Entity {
	if s.player == nil {
		return nil
	}
	pb := s.player.Box()
	for _, o := range s.obstacles {
		if physics.Overlaps(pb, o.Box()) {
			return o
		}
	}
	return nil
}

// Sync pushes every live position to the surface.
func (s *Store) Sync() {
	if s.player != nil {
		s.surface.Move(s.player.handle, s.player.Pos)
	}
	for _, o := range s.obstacles {
		s.surface.Move(o.handle, o.Pos)
	}
}

// Clear despawns everything and releases the scenery.
func (s *Store) Clear() {
	s.Despawn(s.player)
	for len(s.obstacles) > 0 {
		s.Despawn(s.obstacles[len(s.obstacles)-1])
	}
	for _, h := range s.scenery {
		s.surface.Dispose(h)
	}
	s.scenery = nil
}
