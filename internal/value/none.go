package value

// None is the sealed empty value. Unlike the reference implementation's
// CREATE_NONE macro, which allocates a fresh struct each call, this
// package uses a single shared zero-size None value: a single shared
// none value is acceptable per the data model, and it lets callers
// compare None values with ==.
type None struct{}

func (None) Kind() Kind { return KindNone }
func (None) sealed()    {}

// NoneValue is the process-wide shared None.
var NoneValue = None{}
