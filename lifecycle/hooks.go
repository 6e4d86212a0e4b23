package lifecycle

// Cloner is implemented by alternatives whose copy must not share state
// with the original.
type Cloner[T any] interface {
	Clone() T
}

// Mover is implemented by alternatives with their own move semantics. Move
// returns the value and leaves the receiver in its moved-from state.
type Mover[T any] interface {
	Move() T
}

// Assigner is implemented by alternatives that can take a new value in
// place without being destroyed first.
type Assigner[T any] interface {
	Assign(src T)
}

// Dropper is optionally implemented by alternatives that need cleanup.
type Dropper interface {
	Drop()
}
