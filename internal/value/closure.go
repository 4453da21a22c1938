package value

// Env is a captured stack frame: a flat snapshot of the values visible
// at closure-creation time. It is copied by value into each Closure,
// matching closure_capture's heap memcpy of the defining stack frame
// rather than aliasing the defining scope.
type Env []Value

// Closure pairs a function pointer with its captured environment,
// matching closure__init__/closure__call__'s {func, env} pair.
type Closure struct {
	Fn  func(env Env, args []Value) Value
	Env Env
}

func (*Closure) Kind() Kind { return KindClosure }
func (*Closure) sealed()    {}

// NewClosure captures env by value (a defensive copy, so later mutation
// of the defining scope's slice cannot retroactively change what this
// closure sees) and pairs it with fn.
func NewClosure(fn func(Env, []Value) Value, env Env) *Closure {
	captured := make(Env, len(env))
	copy(captured, env)
	return &Closure{Fn: fn, Env: captured}
}

// Call invokes c with args, matching closure__call__.
func Call(c *Closure, args []Value) Value {
	return c.Fn(c.Env, args)
}

// ExternFn is a name-registered native function, matching extern.c's
// ExternFn wrapper around a C function pointer.
type ExternFn struct {
	Name string
	Fn   func(args []Value) Value
}

func (*ExternFn) Kind() Kind { return KindExternFn }
func (*ExternFn) sealed()    {}

// NewExternFn boxes a native Go function under name.
func NewExternFn(name string, fn func(args []Value) Value) *ExternFn {
	return &ExternFn{Name: name, Fn: fn}
}

// CallExtern invokes e with args.
func CallExtern(e *ExternFn, args []Value) Value {
	return e.Fn(args)
}
