package jsonlogic

import (
	"fmt"
	"math"
	"os"
)

// The built-in operation bodies (C8). Each receives already-evaluated
// arguments; error contagion for ordinary operations is handled once in
// evalOrdinary before any of these run, so these bodies only see
// non-error arguments.

func arg(args []Value, i int) Value {
	if i < 0 || i >= len(args) {
		return Null
	}
	return args[i]
}

func opNot(_ interface{}, _ Value, args []Value) Value     { return Not(arg(args, 0)) }
func opNotNot(_ interface{}, _ Value, args []Value) Value  { return Boolean(ToBoolean(arg(args, 0))) }
func opCertNot(_ interface{}, _ Value, args []Value) Value { return CertNot(arg(args, 0)) }

func opLooseEqual(_ interface{}, _ Value, args []Value) Value {
	return Boolean(Equal(arg(args, 0), arg(args, 1)))
}
func opLooseNotEqual(_ interface{}, _ Value, args []Value) Value {
	return Boolean(NotEqual(arg(args, 0), arg(args, 1)))
}
func opStrictEqual(_ interface{}, _ Value, args []Value) Value {
	a, b := arg(args, 0), arg(args, 1)
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	return Boolean(StrictEqual(a, b))
}
func opStrictNotEqual(_ interface{}, _ Value, args []Value) Value {
	a, b := arg(args, 0), arg(args, 1)
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	return Boolean(StrictNotEqual(a, b))
}

func opLt(_ interface{}, _ Value, args []Value) Value {
	if len(args) == 3 {
		return Boolean(between(args[0], args[1], args[2], false))
	}
	return Boolean(Lt(arg(args, 0), arg(args, 1)))
}
func opLe(_ interface{}, _ Value, args []Value) Value {
	if len(args) == 3 {
		return Boolean(between(args[0], args[1], args[2], true))
	}
	return Boolean(Le(arg(args, 0), arg(args, 1)))
}
func opGt(_ interface{}, _ Value, args []Value) Value { return Boolean(Gt(arg(args, 0), arg(args, 1))) }
func opGe(_ interface{}, _ Value, args []Value) Value { return Boolean(Ge(arg(args, 0), arg(args, 1))) }

// opAdd: identity 0, n-ary fold.
func opAdd(_ interface{}, _ Value, args []Value) Value {
	sum := 0.0
	for _, a := range args {
		sum += ToNumber(a)
	}
	return Number(sum)
}

// opMul: identity 1, n-ary fold.
func opMul(_ interface{}, _ Value, args []Value) Value {
	prod := 1.0
	for _, a := range args {
		prod *= ToNumber(a)
	}
	return Number(prod)
}

// opSub: 0-ary -> 0; unary negates; binary subtracts.
func opSub(_ interface{}, _ Value, args []Value) Value {
	switch len(args) {
	case 0:
		return Number(0)
	case 1:
		return Negative(args[0])
	default:
		return Sub(args[0], args[1])
	}
}

// opDiv: unary divides by null (NaN); binary divides.
func opDiv(_ interface{}, _ Value, args []Value) Value {
	if len(args) == 1 {
		return Div(args[0], Null)
	}
	return Div(arg(args, 0), arg(args, 1))
}

func opMod(_ interface{}, _ Value, args []Value) Value {
	return Mod(arg(args, 0), arg(args, 1))
}

func opMax(_ interface{}, _ Value, args []Value) Value {
	if len(args) == 0 {
		return Number(math.Inf(-1))
	}
	best := ToNumber(args[0])
	for _, a := range args[1:] {
		if n := ToNumber(a); n > best {
			best = n
		}
	}
	return Number(best)
}

func opMin(_ interface{}, _ Value, args []Value) Value {
	if len(args) == 0 {
		return Number(math.Inf(1))
	}
	best := ToNumber(args[0])
	for _, a := range args[1:] {
		if n := ToNumber(a); n < best {
			best = n
		}
	}
	return Number(best)
}

// opCat coerces and concatenates all args into one string; null args are
// skipped.
func opCat(_ interface{}, _ Value, args []Value) Value {
	b := NewStringBuilder()
	for _, a := range args {
		if a.IsNull() {
			continue
		}
		b.AppendUTF8(ToStringValue(a))
	}
	return b.Take()
}

// opIn: membership in arrays; substring in strings. Calling convention
// mirrors the original: the haystack is the second argument.
func opIn(_ interface{}, _ Value, args []Value) Value {
	needle, haystack := arg(args, 0), arg(args, 1)
	switch haystack.kind {
	case KindArray:
		for _, el := range haystack.Items() {
			if Equal(needle, el) {
				return True
			}
		}
		return False
	case KindString:
		if needle.kind != KindString {
			return False
		}
		return Boolean(containsUTF16(haystack.str.units, needle.str.units))
	default:
		return False
	}
}

func containsUTF16(haystack, needle []uint16) bool {
	if len(needle) == 0 {
		return true
	}
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// opLog prints the first argument as JSON to standard output and returns
// it unchanged.
func opLog(_ interface{}, _ Value, args []Value) Value {
	v := arg(args, 0)
	s, kind := StringifyUTF8(v)
	if kind == ErrSuccess {
		fmt.Fprintln(os.Stdout, string(s))
	}
	return v
}

// opSubstr implements Python/JS-style substring: negative start wraps from
// the end; negative length cuts from the end; out-of-range clamps to the
// string's endpoints.
func opSubstr(_ interface{}, _ Value, args []Value) Value {
	s := arg(args, 0)
	if s.kind != KindString {
		s = StringFromUTF8(ToStringValue(s))
	}
	units := s.str.units
	n := len(units)

	start := int(ToNumber(arg(args, 1)))
	if start < 0 {
		start = n + start
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}

	end := n
	if len(args) > 2 {
		length := int(ToNumber(args[2]))
		if length < 0 {
			end = n + length
		} else {
			end = start + length
		}
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return newString(append([]uint16(nil), units[start:end]...))
}

// opVar: a numeric argument indexes by integer; a string argument splits
// on '.' and traverses; an empty-string path returns data; a missing
// intermediate returns the default (second arg, else null); zero-arg or
// null-arg returns data.
func opVar(_ interface{}, data Value, args []Value) Value {
	pathArg := arg(args, 0)
	if pathArg.IsNull() {
		return Incref(data)
	}
	def := Null
	if len(args) > 1 {
		def = args[1]
	}
	if pathArg.IsNumber() {
		idx := int(pathArg.NumberValue())
		switch {
		case data.IsArray() && idx >= 0 && idx < data.Len():
			return data.Index(idx)
		case data.IsString() && idx >= 0 && idx < data.Len():
			return newString([]uint16{data.str.units[idx]})
		default:
			return Incref(def)
		}
	}
	path := ToStringValue(pathArg)
	if path == "" {
		return Incref(data)
	}
	cur := data
	for _, seg := range splitPath(path) {
		if cur.IsArray() {
			idx, ok := decimalIndex(seg)
			if !ok || idx < 0 || idx >= cur.Len() {
				return Incref(def)
			}
			cur = cur.Index(idx)
			continue
		}
		if !cur.IsObject() {
			return Incref(def)
		}
		next := cur.Get(seg)
		if next.IsNull() && !hasKey(cur, seg) {
			return Incref(def)
		}
		cur = next
	}
	return Incref(cur)
}

func hasKey(obj Value, key string) bool {
	if !obj.IsObject() {
		return false
	}
	units := encodeUTF16(key)
	hash := fnv1aUTF16(units)
	idx := objectSlotIndex(obj.obj, hash, units)
	return idx < obj.obj.size
}

func decimalIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	parts = append(parts, path[start:])
	return parts
}

// opMissing returns the subset of the requested paths for which var
// returns null or the empty string.
func opMissing(_ interface{}, data Value, args []Value) Value {
	out := NewArrayBuilder()
	for _, pathArg := range flattenMissingArgs(args) {
		v := opVar(nil, data, []Value{pathArg})
		if v.IsNull() || (v.IsString() && v.Len() == 0) {
			out.Append(Incref(pathArg))
		}
	}
	return out.Take()
}

func flattenMissingArgs(args []Value) []Value {
	if len(args) == 1 && args[0].IsArray() {
		return args[0].Items()
	}
	return args
}

// opMissingSome: [need, paths]; if at least need of paths are present,
// return an empty array; otherwise return the missing list.
func opMissingSome(_ interface{}, data Value, args []Value) Value {
	need := int(ToNumber(arg(args, 0)))
	pathsArg := arg(args, 1)
	if !pathsArg.IsArray() {
		return EmptyArray()
	}
	paths := pathsArg.Items()
	missing := NewArrayBuilder()
	present := 0
	for _, pathArg := range paths {
		v := opVar(nil, data, []Value{pathArg})
		if v.IsNull() || (v.IsString() && v.Len() == 0) {
			missing.Append(Incref(pathArg))
		} else {
			present++
		}
	}
	if present >= need {
		return EmptyArray()
	}
	return missing.Take()
}

// opMerge concatenates all args, flattening exactly one level of arrays.
func opMerge(_ interface{}, _ Value, args []Value) Value {
	out := NewArrayBuilder()
	for _, a := range args {
		if a.IsArray() {
			for _, el := range a.Items() {
				out.Append(Incref(el))
			}
		} else {
			out.Append(Incref(a))
		}
	}
	return out.Take()
}
