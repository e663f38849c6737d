package jsonlogic

// Iterator walks a String, Array, or Object value one element at a time.
// Bound to an array it yields elements (each incref'd); bound to an object
// it yields keys (each incref'd, as fresh String values); bound to a
// string it yields one-code-unit substrings. Any other receiver kind
// yields IllegalArgument on the first Next call; calling Next again after
// exhaustion yields StopIteration.
type Iterator struct {
	v     Value
	index int
	bad   bool
	done  bool
}

// NewIterator binds an iterator to v without consuming any elements yet.
func NewIterator(v Value) *Iterator {
	switch v.kind {
	case KindArray, KindObject, KindString:
		return &Iterator{v: v}
	default:
		return &Iterator{bad: true}
	}
}

// Next returns the next element, or an Error value (IllegalArgument for an
// inapplicable receiver, StopIteration once exhausted).
func (it *Iterator) Next() Value {
	if it.bad {
		return ErrorIllegalArgument
	}
	if it.done {
		return ErrorStopIteration
	}
	switch it.v.kind {
	case KindArray:
		if it.index >= it.v.arr.size {
			it.done = true
			return ErrorStopIteration
		}
		v := Incref(it.v.arr.items[it.index])
		it.index++
		return v
	case KindObject:
		for it.index < it.v.obj.size {
			slot := &it.v.obj.slots[it.index]
			it.index++
			if !slot.key.IsNull() {
				return Incref(slot.key)
			}
		}
		it.done = true
		return ErrorStopIteration
	case KindString:
		if it.index >= len(it.v.str.units) {
			it.done = true
			return ErrorStopIteration
		}
		u := it.v.str.units[it.index]
		it.index++
		return newString([]uint16{u})
	}
	it.done = true
	return ErrorStopIteration
}

// Close releases any resources the iterator holds. Iterators over this
// package's values hold no heap share beyond yielded elements, so Close is
// a no-op kept for parity with the original's iter_free contract.
func (it *Iterator) Close() {}
