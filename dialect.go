package jsonlogic

import "time"

// The four shipped registries. A dialect is selected purely by which
// registry is passed to ApplyCustom (or by using Apply, which defaults to
// JsonLogicBuiltins); the evaluator compares against these package-level
// pointers to decide which truthiness rule and special-form set apply.
var (
	JsonLogicBuiltins *Registry
	JsonLogicExtras   *Registry
	CertLogicBuiltins *Registry
	CertLogicExtras   *Registry
)

func init() {
	common := []RegistryEntry{
		{Name: "!", Func: opNot},
		{Name: "!!", Func: opNotNot},
		{Name: "!=", Func: opLooseNotEqual},
		{Name: "!==", Func: opStrictNotEqual},
		{Name: "%", Func: opMod},
		{Name: "*", Func: opMul},
		{Name: "+", Func: opAdd},
		{Name: "-", Func: opSub},
		{Name: "/", Func: opDiv},
		{Name: "<", Func: opLt},
		{Name: "<=", Func: opLe},
		{Name: "==", Func: opLooseEqual},
		{Name: "===", Func: opStrictEqual},
		{Name: ">", Func: opGt},
		{Name: ">=", Func: opGe},
		{Name: "cat", Func: opCat},
		{Name: "in", Func: opIn},
		{Name: "log", Func: opLog},
		{Name: "max", Func: opMax},
		{Name: "merge", Func: opMerge},
		{Name: "min", Func: opMin},
		{Name: "missing", Func: opMissing},
		{Name: "missing_some", Func: opMissingSome},
		{Name: "substr", Func: opSubstr},
		{Name: "var", Func: opVar},
	}

	JsonLogicBuiltins = BuildRegistry(common)

	certEntries := make([]RegistryEntry, len(common))
	copy(certEntries, common)
	for i, e := range certEntries {
		if e.Name == "!" {
			certEntries[i].Func = opCertNot
		}
	}
	CertLogicBuiltins = BuildRegistry(certEntries)

	JsonLogicExtras = BuildRegistry([]RegistryEntry{
		{Name: "now", Context: systemClock{}, Func: opNow},
		{Name: "timestamp", Func: opTimestamp},
	})
	CertLogicExtras = BuildRegistry([]RegistryEntry{
		{Name: "now", Context: systemClock{}, Func: opNow},
		{Name: "timestamp", Func: opTimestamp},
	})
}

// Clock supplies the current time to the "now" extra operation, letting
// tests and deterministic callers substitute a fixed instant instead of
// wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// opNow returns the registered clock's current time as epoch
// milliseconds. The real date-arithmetic surface the original ships
// (business-day calculations, duration offsets) is out of scope here;
// this one entry exists to exercise the extras registry and its dedicated
// extend path end-to-end.
func opNow(context interface{}, _ Value, _ []Value) Value {
	clock, ok := context.(Clock)
	if !ok {
		clock = systemClock{}
	}
	return Number(float64(clock.Now().UnixMilli()))
}

// opTimestamp parses its first argument as an RFC 3339 string, returning
// its epoch-millisecond value, or NaN on a malformed timestamp.
func opTimestamp(_ interface{}, _ Value, args []Value) Value {
	s := arg(args, 0)
	if !s.IsString() {
		return NaN
	}
	t, err := time.Parse(time.RFC3339, s.ToUTF8())
	if err != nil {
		return NaN
	}
	return Number(float64(t.UnixMilli()))
}
