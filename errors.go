package grove

// GroveError is an error type for the grove module.
type GroveError string

func (e GroveError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a record position is outside the
// range of the store or view it is applied to.
const ErrIndexOutOfBounds = GroveError("index out of bounds")

// ErrCloseWithoutOpen signals a Builder.Close call with no pending level to
// close, i.e. more Close calls than Open calls.
const ErrCloseWithoutOpen = GroveError("close without a matching open")

// ErrUnclosedLevels signals a Builder.Build call while open levels remain.
const ErrUnclosedLevels = GroveError("build with unclosed levels")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = GroveError("illegal arguments")

// ErrInvalidStructure signals a violated width invariant, i.e. a store whose
// records do not partition into well-formed subtree ranges. It can only be
// produced by misuse of the trusted direct-append entry points.
const ErrInvalidStructure = GroveError("invalid grove structure")
