package fenwick

type errString string

func (e errString) Error() string {
	return string(e)
}

const ErrInvalidSize = errString("fenwick: size must be at least 1")
const ErrIndexOutOfRange = errString("fenwick: index out of range")
const ErrInvalidRange = errString("fenwick: invalid range")
const ErrPreconditionViolated = errString("fenwick: cumulative value is below the first element")
const ErrUnordered = errString("fenwick: value group is not ordered")
