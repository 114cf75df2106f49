package memo

// The WrapIxO1 family returns a drop-in replacement for pureFn together with
// its CacheInfo accessor. The Memo is named after pureFn unless WithName is given.
// A key derivation failure (only possible with WithStrictKeys) panics.

func WrapI1O1[I1, O any](
	pureFn func(I1) O,
	opts ...Option,
) (func(I1) O, InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return pureFn(arg[I1](args, 0)), nil
		},
		namedAfter(pureFn, opts)...,
	)
	return func(i1 I1) O {
		return m.mustCall(i1)
	}, m.CacheInfo
}

func WrapI2O1[I1, I2, O any](
	pureFn func(I1, I2) O,
	opts ...Option,
) (func(I1, I2) O, InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1)), nil
		},
		namedAfter(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2) O {
		return m.mustCall(i1, i2)
	}, m.CacheInfo
}

func WrapI3O1[I1, I2, I3, O any](
	pureFn func(I1, I2, I3) O,
	opts ...Option,
) (func(I1, I2, I3) O, InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2)), nil
		},
		namedAfter(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return m.mustCall(i1, i2, i3)
	}, m.CacheInfo
}

func WrapI4O1[I1, I2, I3, I4, O any](
	pureFn func(I1, I2, I3, I4) O,
	opts ...Option,
) (func(I1, I2, I3, I4) O, InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3)), nil
		},
		namedAfter(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return m.mustCall(i1, i2, i3, i4)
	}, m.CacheInfo
}

// The WrapIxO1Err family is WrapIxO1 for functions that can fail.
// Errors are returned as is and never cached.

func WrapI1O1Err[I1, O any](
	fn func(I1) (O, error),
	opts ...Option,
) (func(I1) (O, error), InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return fn(arg[I1](args, 0))
		},
		namedAfter(fn, opts)...,
	)
	return func(i1 I1) (O, error) {
		return m.Call([]any{i1})
	}, m.CacheInfo
}

func WrapI2O1Err[I1, I2, O any](
	fn func(I1, I2) (O, error),
	opts ...Option,
) (func(I1, I2) (O, error), InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return fn(arg[I1](args, 0), arg[I2](args, 1))
		},
		namedAfter(fn, opts)...,
	)
	return func(i1 I1, i2 I2) (O, error) {
		return m.Call([]any{i1, i2})
	}, m.CacheInfo
}

func WrapI3O1Err[I1, I2, I3, O any](
	fn func(I1, I2, I3) (O, error),
	opts ...Option,
) (func(I1, I2, I3) (O, error), InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		namedAfter(fn, opts)...,
	)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return m.Call([]any{i1, i2, i3})
	}, m.CacheInfo
}

func WrapI4O1Err[I1, I2, I3, I4, O any](
	fn func(I1, I2, I3, I4) (O, error),
	opts ...Option,
) (func(I1, I2, I3, I4) (O, error), InfoFunc) {
	m := New(
		func(args []any, _ Kwargs) (O, error) {
			return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		namedAfter(fn, opts)...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return m.Call([]any{i1, i2, i3, i4})
	}, m.CacheInfo
}

// WrapKw memoizes a function taking positional and keyword arguments.
func WrapKw[O any](
	fn func(args []any, kwargs Kwargs) O,
	opts ...Option,
) (func(args []any, kwargs ...Kwarg) O, InfoFunc) {
	m := New(
		func(args []any, kwargs Kwargs) (O, error) {
			return fn(args, kwargs), nil
		},
		namedAfter(fn, opts)...,
	)
	return func(args []any, kwargs ...Kwarg) O {
		v, err := m.Call(args, kwargs...)
		if err != nil {
			panic(err)
		}
		return v
	}, m.CacheInfo
}

// namedAfter puts a default WithName(fn's name) ahead of opts.
func namedAfter(fn any, opts []Option) []Option {
	return append([]Option{WithName(funcName(fn))}, opts...)
}

// arg returns args[i] as T. A nil argument becomes T's zero value, which a
// plain assertion would reject when T is an interface type.
func arg[T any](args []any, i int) T {
	v, _ := args[i].(T)
	return v
}
