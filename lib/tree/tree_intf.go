package tree

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// HookFunc locates the intrusive node embedded in a record. A record type
// embeds one Node per tree it can be a member of; the hook is what
// distinguishes them, so every tree instance is bound to exactly one hook.
type HookFunc[T any] func(item T) *Node[T]

// KeyFunc is the key-extraction policy. It must be pure and the key of a
// linked record must not change while the record stays linked; mutating it
// in place silently breaks the inorder invariant.
type KeyFunc[T any, K any] func(item T) K

// DisposeFunc destroys or recycles a record on the caller's behalf during
// a disposing teardown. It is invoked exactly once per visited node.
type DisposeFunc[T any] func(item T)

// CloneFunc constructs a new record replicating all non-link state of the
// source. A non-nil error aborts the whole-tree clone and triggers the
// rollback of the partially built destination.
type CloneFunc[T any] func(item T) (T, error)
