package jsonlogic

// Apply evaluates rule against data using the default permissive registry
// (JsonLogicBuiltins).
func Apply(rule, data Value) Value {
	return ApplyCustom(rule, data, JsonLogicBuiltins)
}

// ApplyCustom evaluates rule against data using reg, dispatching special
// forms by name before falling back to reg for ordinary operations. An
// unknown operator returns IllegalOperation.
func ApplyCustom(rule, data Value, reg *Registry) Value {
	switch rule.kind {
	case KindArray:
		out := NewArrayBuilderCapacity(rule.arr.size)
		for i := 0; i < rule.arr.size; i++ {
			out.Append(ApplyCustom(rule.arr.items[i], data, reg))
		}
		return out.Take()
	case KindObject:
		if rule.obj.used != 1 {
			return Incref(rule)
		}
	default:
		return Incref(rule)
	}

	op, args := soleEntry(rule)
	if !op.IsString() {
		return Incref(rule)
	}
	name := op.ToUTF8()

	if special, ok := specialForms[name]; ok {
		excluded := certLogicExcluded[name] && (reg == CertLogicBuiltins || reg == CertLogicExtras)
		if !excluded {
			return special(rule, args, data, reg)
		}
	}
	return evalOrdinary(name, args, data, reg)
}

// soleEntry returns the single {op: args} pair of a one-entry object,
// normalized so args is always the raw (unevaluated) argument rule: an
// array's elements if raw_args is an array, or a one-element list
// otherwise.
func soleEntry(rule Value) (op Value, args []Value) {
	entries := rule.Entries()
	e := entries[0]
	op = StringFromUTF8(e.Key)
	if e.Value.IsArray() {
		return op, e.Value.Items()
	}
	return op, []Value{e.Value}
}

func evalOrdinary(name string, rawArgs []Value, data Value, reg *Registry) Value {
	fn, context, ok := reg.Get(name)
	if !ok {
		return ErrorIllegalOperation
	}
	evaluated := make([]Value, len(rawArgs))
	for i, a := range rawArgs {
		evaluated[i] = ApplyCustom(a, data, reg)
		if evaluated[i].IsError() {
			return propagateError(evaluated[:i+1])
		}
	}
	return fn(context, data, evaluated)
}

// propagateError returns the first error among already-evaluated
// arguments (error contagion: exactly the first encountered error
// surfaces).
func propagateError(vs []Value) Value {
	for _, v := range vs {
		if v.IsError() {
			return v
		}
	}
	return Null
}

type specialForm func(rule Value, args []Value, data Value, reg *Registry) Value

var specialForms map[string]specialForm

// certLogicExcluded names the special forms the stricter dialect drops:
// or, filter, map, all, some, none, and the ternary alias of if.
var certLogicExcluded = map[string]bool{
	"or": true, "filter": true, "map": true,
	"all": true, "some": true, "none": true, "?:": true,
}

func init() {
	specialForms = map[string]specialForm{
		"if":     evalIf,
		"?:":     evalIf,
		"and":    evalAnd,
		"or":     evalOr,
		"filter": evalFilter,
		"map":    evalMap,
		"reduce": evalReduce,
		"all":    evalAll,
		"some":   evalSome,
		"none":   evalNone,
	}
}

func truthyFor(reg *Registry, v Value) bool {
	if reg == CertLogicBuiltins || reg == CertLogicExtras {
		return CertToBoolean(v)
	}
	return ToBoolean(v)
}

// evalIf implements the N-ary conditional `[c1,t1,c2,t2,...,default]`.
func evalIf(_ Value, args []Value, data Value, reg *Registry) Value {
	i := 0
	for i+1 < len(args) {
		cond := ApplyCustom(args[i], data, reg)
		if cond.IsError() {
			return cond
		}
		if truthyFor(reg, cond) {
			return ApplyCustom(args[i+1], data, reg)
		}
		i += 2
	}
	if i < len(args) {
		return ApplyCustom(args[i], data, reg)
	}
	return Null
}

// evalAnd returns the first falsy argument (unevaluated further) or the
// last argument's value; an empty argument list returns null.
func evalAnd(_ Value, args []Value, data Value, reg *Registry) Value {
	if len(args) == 0 {
		return Null
	}
	var result Value
	for _, a := range args {
		result = ApplyCustom(a, data, reg)
		if result.IsError() || !truthyFor(reg, result) {
			return result
		}
	}
	return result
}

// evalOr is symmetric to evalAnd, returning on the first truthy argument.
func evalOr(_ Value, args []Value, data Value, reg *Registry) Value {
	if len(args) == 0 {
		return Null
	}
	var result Value
	for _, a := range args {
		result = ApplyCustom(a, data, reg)
		if result.IsError() || truthyFor(reg, result) {
			return result
		}
	}
	return result
}

func evalListArg(args []Value, data Value, reg *Registry) (Value, bool) {
	if len(args) == 0 {
		return EmptyArray(), false
	}
	list := ApplyCustom(args[0], data, reg)
	if list.IsError() {
		return list, false
	}
	if !list.IsArray() {
		return Null, false
	}
	return list, true
}

// evalFilter evaluates list_expr; a non-array result yields an empty
// array; otherwise pred_expr is evaluated once per element with the
// element as data, keeping truthy results.
func evalFilter(_ Value, args []Value, data Value, reg *Registry) Value {
	list, ok := evalListArg(args, data, reg)
	if list.IsError() {
		return list
	}
	if !ok {
		return EmptyArray()
	}
	var pred Value
	if len(args) > 1 {
		pred = args[1]
	}
	out := NewArrayBuilder()
	for _, el := range list.Items() {
		keep := True
		if len(args) > 1 {
			keep = ApplyCustom(pred, el, reg)
			if keep.IsError() {
				return keep
			}
		}
		if truthyFor(reg, keep) {
			out.Append(Incref(el))
		}
	}
	return out.Take()
}

// evalMap evaluates pred_expr once per element of list_expr, with the
// element as data, collecting the results.
func evalMap(_ Value, args []Value, data Value, reg *Registry) Value {
	list, ok := evalListArg(args, data, reg)
	if list.IsError() {
		return list
	}
	if !ok {
		return EmptyArray()
	}
	var pred Value
	if len(args) > 1 {
		pred = args[1]
	}
	out := NewArrayBuilderCapacity(list.Len())
	for _, el := range list.Items() {
		r := el
		if len(args) > 1 {
			r = ApplyCustom(pred, el, reg)
		} else {
			r = Incref(el)
		}
		if r.IsError() {
			return r
		}
		out.Append(r)
	}
	return out.Take()
}

// reduceContextKeys names the keys bound in a reduce iteration's context
// object; the certlogic dialect additionally binds "data" to the outer
// data value.
const (
	reduceKeyAccumulator = "accumulator"
	reduceKeyCurrent     = "current"
	reduceKeyData        = "data"
)

// evalReduce implements `[list_expr, body_expr, init]`. A non-array
// list_expr returns the evaluated init unchanged. Each iteration builds a
// fresh per-iteration context object binding accumulator/current (and, in
// certlogic, data) and evaluates body_expr against it.
func evalReduce(_ Value, args []Value, data Value, reg *Registry) Value {
	var initRule Value
	if len(args) > 2 {
		initRule = args[2]
	} else {
		initRule = Null
	}
	init := ApplyCustom(initRule, data, reg)
	if init.IsError() {
		return init
	}
	if len(args) == 0 {
		return init
	}
	list := ApplyCustom(args[0], data, reg)
	if list.IsError() {
		Decref(init)
		return list
	}
	if !list.IsArray() {
		return init
	}
	var body Value
	if len(args) > 1 {
		body = args[1]
	}
	isCert := reg == CertLogicBuiltins || reg == CertLogicExtras
	accumulator := init
	for _, el := range list.Items() {
		ctx := NewObjectBuilder()
		ctx.Set(reduceKeyAccumulator, Incref(accumulator))
		ctx.Set(reduceKeyCurrent, Incref(el))
		if isCert {
			ctx.Set(reduceKeyData, Incref(data))
		}
		ctxValue := ctx.Take()
		next := ApplyCustom(body, ctxValue, reg)
		Decref(ctxValue)
		Decref(accumulator)
		accumulator = next
		if accumulator.IsError() {
			return accumulator
		}
	}
	return accumulator
}

// evalAll, evalSome and evalNone preserve the documented vacuous-truth
// divergence: an empty or non-array list_expr yields false/false/true
// rather than the usual vacuous-truth convention.
func evalAll(_ Value, args []Value, data Value, reg *Registry) Value {
	list, ok := evalListArg(args, data, reg)
	if list.IsError() {
		return list
	}
	if !ok || list.Len() == 0 {
		return False
	}
	var pred Value
	if len(args) > 1 {
		pred = args[1]
	}
	for _, el := range list.Items() {
		r := ApplyCustom(pred, el, reg)
		if r.IsError() {
			return r
		}
		if !truthyFor(reg, r) {
			return False
		}
	}
	return True
}

func evalSome(_ Value, args []Value, data Value, reg *Registry) Value {
	list, ok := evalListArg(args, data, reg)
	if list.IsError() {
		return list
	}
	if !ok || list.Len() == 0 {
		return False
	}
	var pred Value
	if len(args) > 1 {
		pred = args[1]
	}
	for _, el := range list.Items() {
		r := ApplyCustom(pred, el, reg)
		if r.IsError() {
			return r
		}
		if truthyFor(reg, r) {
			return True
		}
	}
	return False
}

func evalNone(rule Value, args []Value, data Value, reg *Registry) Value {
	result := evalSome(rule, args, data, reg)
	if result.IsError() {
		return result
	}
	return Boolean(!result.BoolValue())
}
