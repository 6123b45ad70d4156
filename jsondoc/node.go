package jsondoc

// Kind identifies which variant a Node holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Array is an ordered sequence of nodes.
type Array []Node

// Object maps unique keys to nodes.
type Object map[string]Node

// Node is a single document value. The zero Node is Null.
type Node struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
	arr  Array
	obj  Object
}

// Null, Bool, Int, Float, String, NewArray and NewObject build a Node
// holding the given value.
func Null() Node              { return Node{} }
func Bool(v bool) Node        { return Node{kind: KindBool, b: v} }
func Int(v int) Node          { return Node{kind: KindInt, i: v} }
func Float(v float64) Node    { return Node{kind: KindFloat, f: v} }
func String(v string) Node    { return Node{kind: KindString, s: v} }
func NewArray(v Array) Node   { return Node{kind: KindArray, arr: v} }
func NewObject(v Object) Node { return Node{kind: KindObject, obj: v} }

// Strings wraps a list of Go strings as an Array node.
func Strings(values []string) Node {
	arr := make(Array, 0, len(values))
	for _, v := range values {
		arr = append(arr, String(v))
	}
	return NewArray(arr)
}

func (n Node) Kind() Kind { return n.kind }

func (n Node) IsNull() bool   { return n.kind == KindNull }
func (n Node) IsBool() bool   { return n.kind == KindBool }
func (n Node) IsInt() bool    { return n.kind == KindInt }
func (n Node) IsString() bool { return n.kind == KindString }
func (n Node) IsArray() bool  { return n.kind == KindArray }
func (n Node) IsObject() bool { return n.kind == KindObject }

// IsPureFloat reports whether the node was stored as a Float.
func (n Node) IsPureFloat() bool { return n.kind == KindFloat }

// IsFloat reports whether AsFloat would succeed (Int or Float).
func (n Node) IsFloat() bool { return n.kind == KindFloat || n.kind == KindInt }

func (n Node) mismatch(want Kind) error {
	return &TypeMismatchError{Want: want, Got: n.kind}
}

// AsBool returns the boolean value or a TypeMismatchError.
func (n Node) AsBool() (bool, error) {
	if n.kind != KindBool {
		return false, n.mismatch(KindBool)
	}
	return n.b, nil
}

// AsInt returns the integer value. A Float is a mismatch.
func (n Node) AsInt() (int, error) {
	if n.kind != KindInt {
		return 0, n.mismatch(KindInt)
	}
	return n.i, nil
}

// AsFloat returns the numeric value, widening an Int.
func (n Node) AsFloat() (float64, error) {
	switch n.kind {
	case KindFloat:
		return n.f, nil
	case KindInt:
		return float64(n.i), nil
	}
	return 0, n.mismatch(KindFloat)
}

// AsString returns the string value or a TypeMismatchError.
func (n Node) AsString() (string, error) {
	if n.kind != KindString {
		return "", n.mismatch(KindString)
	}
	return n.s, nil
}

// AsArray returns the underlying slice. Callers must not mutate it.
func (n Node) AsArray() (Array, error) {
	if n.kind != KindArray {
		return nil, n.mismatch(KindArray)
	}
	return n.arr, nil
}

// AsObject returns the underlying map. Callers must not mutate it.
func (n Node) AsObject() (Object, error) {
	if n.kind != KindObject {
		return nil, n.mismatch(KindObject)
	}
	return n.obj, nil
}

// Equal compares two nodes structurally. Int(3) and Float(3) are not equal.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindInt:
		return n.i == other.i
	case KindFloat:
		return n.f == other.f
	case KindString:
		return n.s == other.s
	case KindArray:
		if len(n.arr) != len(other.arr) {
			return false
		}
		for i := range n.arr {
			if !n.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.obj) != len(other.obj) {
			return false
		}
		for k, v := range n.obj {
			ov, ok := other.obj[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Lookup returns the value stored under key.
func (o Object) Lookup(key string) (Node, bool) {
	v, ok := o[key]
	return v, ok
}
