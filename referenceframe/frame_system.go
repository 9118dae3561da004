// Package referenceframe does the math of translating between reference frames. It is the
// query surface the rest of a simulation talks to: renderers ask it for world transforms per
// frame, animation players write interpolated local transforms into it, and kinematic-chain
// walkers read propagated twists out of it.
package referenceframe

import (
	"github.com/edaniels/golog"

	"github.com/mirmik/termin-sub008/spatialmath"
)

// World is the name of the root frame of every frame system.
const World = "world"

// frameNode is one slot of the arena. Parent indices always point at earlier slots, so a
// single forward pass visits parents before children and a cycle cannot be expressed at all.
type frameNode struct {
	name   string
	parent int
	local  spatialmath.GeneralTransform3
	twist  spatialmath.Screw3
}

// FrameSystem is a tree of named frames stored in a flat arena, each frame owning its local
// transform relative to its parent. Mutating methods are not safe for concurrent use; distinct
// systems are independent and reads of a quiescent system may be shared.
type FrameSystem struct {
	name   string
	logger golog.Logger
	nodes  []frameNode
	index  map[string]int

	// world transforms cached by RecomputeWorldTransforms, invalidated on any mutation
	worldCache []spatialmath.GeneralTransform3
}

// NewFrameSystem creates a frame system containing only the world frame.
func NewFrameSystem(name string, logger golog.Logger) *FrameSystem {
	if logger == nil {
		logger = golog.NewLogger("referenceframe")
	}
	fs := &FrameSystem{
		name:   name,
		logger: logger,
		nodes: []frameNode{{
			name:   World,
			parent: -1,
			local:  spatialmath.NewIdentityTransform(),
			twist:  spatialmath.NewZeroScrew3(World),
		}},
		index: map[string]int{World: 0},
	}
	return fs
}

// Name returns the name of the frame system.
func (fs *FrameSystem) Name() string {
	return fs.name
}

// FrameNames returns the names of all frames in the system other than the world.
func (fs *FrameSystem) FrameNames() []string {
	var names []string
	for _, node := range fs.nodes[1:] {
		names = append(names, node.name)
	}
	return names
}

// Parent returns the name of the parent of the given frame. The world frame has no parent.
func (fs *FrameSystem) Parent(name string) (string, error) {
	idx, ok := fs.index[name]
	if !ok {
		return "", NewFrameMissingError(name)
	}
	if idx == 0 {
		return "", errNoParent
	}
	return fs.nodes[fs.nodes[idx].parent].name, nil
}

// AddFrame inserts a frame as a child of an existing parent, with the given transform relative
// to that parent. The parent must already be present, which keeps the arena topologically
// ordered and makes cycles unrepresentable.
func (fs *FrameSystem) AddFrame(name, parent string, local spatialmath.GeneralTransform3) error {
	if name == World {
		return NewReservedWorldError()
	}
	if _, ok := fs.index[name]; ok {
		return NewFrameAlreadyExistsError(name)
	}
	parentIdx, ok := fs.index[parent]
	if !ok {
		return NewParentFrameMissingError(name, parent)
	}
	fs.nodes = append(fs.nodes, frameNode{
		name:   name,
		parent: parentIdx,
		local:  local,
		twist:  spatialmath.NewZeroScrew3(name),
	})
	fs.index[name] = len(fs.nodes) - 1
	fs.worldCache = nil
	fs.logger.Debugw("added frame", "name", name, "parent", parent)
	return nil
}

// LocalTransform returns the transform of the given frame relative to its parent.
func (fs *FrameSystem) LocalTransform(name string) (spatialmath.GeneralTransform3, error) {
	idx, ok := fs.index[name]
	if !ok {
		return spatialmath.GeneralTransform3{}, NewFrameMissingError(name)
	}
	return fs.nodes[idx].local, nil
}

// SetLocalTransform replaces the transform of the given frame relative to its parent. This is
// the per-channel write animation players make every frame.
func (fs *FrameSystem) SetLocalTransform(name string, local spatialmath.GeneralTransform3) error {
	idx, ok := fs.index[name]
	if !ok {
		return NewFrameMissingError(name)
	}
	if idx == 0 {
		return NewReservedWorldError()
	}
	fs.nodes[idx].local = local
	fs.worldCache = nil
	return nil
}

// WorldTransform returns the transform of the given frame relative to the world, composing
// down the parent chain.
func (fs *FrameSystem) WorldTransform(name string) (spatialmath.GeneralTransform3, error) {
	idx, ok := fs.index[name]
	if !ok {
		return spatialmath.GeneralTransform3{}, NewFrameMissingError(name)
	}
	if fs.worldCache != nil {
		return fs.worldCache[idx], nil
	}
	world := fs.nodes[idx].local
	for parent := fs.nodes[idx].parent; parent >= 0; parent = fs.nodes[parent].parent {
		world = spatialmath.ComposeTransforms(fs.nodes[parent].local, world)
	}
	return world, nil
}

// WorldPose returns the rigid part of the world transform of the given frame.
func (fs *FrameSystem) WorldPose(name string) (spatialmath.Pose3, error) {
	world, err := fs.WorldTransform(name)
	if err != nil {
		return spatialmath.Pose3{}, err
	}
	return world.ToPose(), nil
}

// Transform returns the transform taking quantities expressed in the src frame to the dst
// frame: inverse(world(dst)) composed with world(src).
func (fs *FrameSystem) Transform(src, dst string) (spatialmath.GeneralTransform3, error) {
	srcWorld, err := fs.WorldTransform(src)
	if err != nil {
		return spatialmath.GeneralTransform3{}, err
	}
	dstWorld, err := fs.WorldTransform(dst)
	if err != nil {
		return spatialmath.GeneralTransform3{}, err
	}
	return spatialmath.ComposeTransforms(dstWorld.Invert(), srcWorld), nil
}

// RecomputeWorldTransforms recomputes every world transform in one forward pass over the
// arena and caches the result. Parents always precede children, so each slot composes onto an
// already-final parent entry. The returned slice is indexed like the arena, world first; it is
// the bulk per-frame update renderers consume.
func (fs *FrameSystem) RecomputeWorldTransforms() []spatialmath.GeneralTransform3 {
	world := make([]spatialmath.GeneralTransform3, len(fs.nodes))
	world[0] = fs.nodes[0].local
	for i := 1; i < len(fs.nodes); i++ {
		world[i] = spatialmath.ComposeTransforms(world[fs.nodes[i].parent], fs.nodes[i].local)
	}
	fs.worldCache = world
	return world
}

// TracebackFrame returns the frame names from the given frame up to and including the world.
func (fs *FrameSystem) TracebackFrame(name string) ([]string, error) {
	idx, ok := fs.index[name]
	if !ok {
		return nil, NewFrameMissingError(name)
	}
	var path []string
	for ; idx >= 0; idx = fs.nodes[idx].parent {
		path = append(path, fs.nodes[idx].name)
	}
	return path, nil
}

// SetTwist sets the twist of the given frame relative to its parent, expressed in the frame's
// own coordinates about its origin.
func (fs *FrameSystem) SetTwist(name string, twist spatialmath.Screw3) error {
	idx, ok := fs.index[name]
	if !ok {
		return NewFrameMissingError(name)
	}
	if twist.Frame != name {
		return spatialmath.NewFrameMismatchError(twist.Frame, name)
	}
	fs.nodes[idx].twist = twist
	return nil
}

// WorldTwist returns the twist of the given frame expressed in world coordinates about the
// frame's origin. Velocities accumulate down the chain: each parent's world twist is
// transferred to the child origin and the child's own twist, rotated to world, is added on.
func (fs *FrameSystem) WorldTwist(name string) (spatialmath.Screw3, error) {
	idx, ok := fs.index[name]
	if !ok {
		return spatialmath.Screw3{}, NewFrameMissingError(name)
	}
	worlds := fs.worldCache
	if worlds == nil {
		worlds = fs.RecomputeWorldTransforms()
	}

	total := spatialmath.NewZeroScrew3(World)
	for _, chainIdx := range fs.chainToRoot(idx) {
		node := &fs.nodes[chainIdx]
		// move the accumulated twist's reference point to this frame's origin
		if node.parent >= 0 {
			disp := worlds[chainIdx].Point().Sub(worlds[node.parent].Point())
			total = total.Transfer(disp)
		}
		if node.twist.IsZero() {
			continue
		}
		// the node's own twist is expressed in its own coordinates; rotate it to world
		// using this frame's world orientation
		localInWorld := node.twist.RotateTo(World, worlds[chainIdx].Orientation())
		var err error
		total, err = spatialmath.AddScrews(total, localInWorld)
		if err != nil {
			return spatialmath.Screw3{}, err
		}
	}
	return total, nil
}

// chainToRoot returns arena indices from the root down to the given frame, inclusive.
func (fs *FrameSystem) chainToRoot(idx int) []int {
	var chain []int
	for ; idx >= 0; idx = fs.nodes[idx].parent {
		chain = append(chain, idx)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
