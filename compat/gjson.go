// Package compat builds jsonlogic values from an already-parsed gjson
// result tree, without re-parsing the source text through the hand-rolled
// parser. It exists primarily to give the parser a second, independent
// JSON front end to differentially test against.
package compat

import (
	"github.com/mcvoid/jsonlogic"
	"github.com/tidwall/gjson"
)

// FromGJSON converts a gjson.Result into a jsonlogic.Value, recursively.
func FromGJSON(r gjson.Result) jsonlogic.Value {
	switch r.Type {
	case gjson.Null:
		return jsonlogic.Null
	case gjson.True:
		return jsonlogic.True
	case gjson.False:
		return jsonlogic.False
	case gjson.Number:
		return jsonlogic.Number(r.Num)
	case gjson.String:
		return jsonlogic.StringFromUTF8(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			return fromGJSONArray(r)
		}
		return fromGJSONObject(r)
	default:
		return jsonlogic.Null
	}
}

func fromGJSONArray(r gjson.Result) jsonlogic.Value {
	elems := r.Array()
	b := jsonlogic.NewArrayBuilderCapacity(len(elems))
	for _, e := range elems {
		b.Append(FromGJSON(e))
	}
	return b.Take()
}

func fromGJSONObject(r gjson.Result) jsonlogic.Value {
	b := jsonlogic.NewObjectBuilder()
	r.ForEach(func(key, value gjson.Result) bool {
		b.Set(key.String(), FromGJSON(value))
		return true
	})
	return b.Take()
}

// Parse parses source with gjson and converts the result into a
// jsonlogic.Value. Unlike jsonlogic.Parse, malformed input silently
// yields a null-ish best-effort tree (gjson is permissive by design); this
// function is for differential testing against jsonlogic.Parse on known-
// good fixtures, not for production error reporting.
func Parse(source string) jsonlogic.Value {
	return FromGJSON(gjson.Parse(source))
}
