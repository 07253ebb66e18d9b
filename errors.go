package keepsake

import "github.com/rotisserie/eris"

var (
	// ErrUnknownEntity signals a reference to an entity outside the persisted
	// subset at save time, or to an ordinal the snapshot never defined at load
	// time.
	ErrUnknownEntity = eris.New("unknown entity")

	// ErrDuplicateEntity signals that the marked set yielded the same live
	// entity twice, which indicates an inconsistency in the world.
	ErrDuplicateEntity = eris.New("duplicate entity in marked set")

	// ErrUnsupportedType signals a type tag with no registered component, in
	// either the caller's type list or a snapshot block.
	ErrUnsupportedType = eris.New("component type not registered")

	// ErrDuplicateTypeInList signals that the caller's type list names the
	// same component type more than once.
	ErrDuplicateTypeInList = eris.New("duplicate component type in type list")

	// ErrMalformedSnapshot signals a snapshot that violates its own structure,
	// such as two blocks carrying the same type tag.
	ErrMalformedSnapshot = eris.New("malformed snapshot")
)
