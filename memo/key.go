package memo

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrUnkeyable is returned when strict keys are on and an argument has no
// stable string form.
var ErrUnkeyable = errors.New("argument has no stable key string")

const keySeparator = "_"

// Keyer is implemented by values that provide their own cache key form.
// It takes precedence over fmt.Stringer.
type Keyer interface {
	KeyString() string
}

// Kwarg is a named argument.
type Kwarg struct {
	Name  string
	Value any
}

// Kw builds a Kwarg.
func Kw(name string, value any) Kwarg {
	return Kwarg{Name: name, Value: value}
}

// Kwargs holds named arguments in call order.
type Kwargs []Kwarg

// Names returns the argument names in call order.
func (kw Kwargs) Names() []string {
	names := make([]string, len(kw))
	for i, k := range kw {
		names[i] = k.Name
	}
	return names
}

// Lookup returns the value of the first argument called name.
func (kw Kwargs) Lookup(name string) (any, bool) {
	for _, k := range kw {
		if k.Name == name {
			return k.Value, true
		}
	}
	return nil, false
}

// KeyPolicy controls how a call is turned into a key.
type KeyPolicy struct {
	// KeywordValues adds keyword values to the key as "name=value".
	// When false only the names take part, so calls that differ only in a
	// keyword value share an entry.
	KeywordValues bool

	// Strict rejects arguments that are neither a Keyer, a fmt.Stringer nor a
	// basic kind, instead of falling back to fmt.Sprint.
	Strict bool
}

// MakeKey derives the cache key of a call to the function called name.
func MakeKey(name string, args []any, kwargs Kwargs, policy KeyPolicy) (uint64, error) {
	src, err := KeySource(name, args, kwargs, policy)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64String(src), nil
}

// KeySource returns the composite string MakeKey hashes: the name, then the
// positional arguments joined by "_", then the keyword names joined by "_".
// No separator sits between the three groups.
func KeySource(name string, args []any, kwargs Kwargs, policy KeyPolicy) (string, error) {
	argStrs := make([]string, len(args))
	for i, arg := range args {
		s, err := KeyString(arg, policy.Strict)
		if err != nil {
			return "", fmt.Errorf("positional argument %d: %w", i, err)
		}
		argStrs[i] = s
	}

	kwStrs := make([]string, len(kwargs))
	for i, kw := range kwargs {
		if !policy.KeywordValues {
			kwStrs[i] = kw.Name
			continue
		}
		s, err := KeyString(kw.Value, policy.Strict)
		if err != nil {
			return "", fmt.Errorf("keyword argument %q: %w", kw.Name, err)
		}
		kwStrs[i] = kw.Name + "=" + s
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(strings.Join(argStrs, keySeparator))
	b.WriteString(strings.Join(kwStrs, keySeparator))
	return b.String(), nil
}

// KeyString returns the string form of v used in keys.
// A nil pointer is always "<nil>", even when its type has a String or
// KeyString method, since value-receiver methods panic on it.
func KeyString(v any, strict bool) (string, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprint(nil), nil
	}
	switch s := v.(type) {
	case Keyer:
		return s.KeyString(), nil
	case fmt.Stringer:
		return s.String(), nil
	case nil:
		return fmt.Sprint(v), nil
	}
	if strict && !isBasicKind(reflect.TypeOf(v).Kind()) {
		return "", fmt.Errorf("%w: %T", ErrUnkeyable, v)
	}
	return fmt.Sprint(v), nil
}

func isBasicKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
