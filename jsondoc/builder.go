package jsondoc

type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
)

// frame is one open container on the builder stack.
type frame struct {
	kind   frameKind
	arr    Array
	obj    Object
	key    string
	hasKey bool
}

// Builder assembles a Node tree through a fluent call chain. Each call checks
// that it is legal in the current state; the first violation is kept and
// returned by Build, and every later call is ignored.
type Builder struct {
	stack    []*frame
	root     Node
	rootSet  bool
	consumed bool
	err      error
}

// NewBuilder returns an empty builder expecting a single root value.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first misuse recorded so far.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(op, reason string) *Builder {
	if b.err == nil {
		b.err = &LogicError{Op: op, Reason: reason}
	}
	return b
}

// check reports whether op may proceed.
func (b *Builder) check(op string) bool {
	if b.err != nil {
		return false
	}
	if b.consumed {
		b.fail(op, "builder already consumed by Build")
		return false
	}
	return true
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// canPlace reports whether a value may be supplied right now.
func (b *Builder) canPlace(op string) bool {
	top := b.top()
	switch {
	case top == nil && b.rootSet:
		b.fail(op, "root value is already complete")
		return false
	case top != nil && top.kind == frameObject && !top.hasKey:
		b.fail(op, "object expects Key or EndObject")
		return false
	}
	return true
}

// place stores a finished value at the current position.
func (b *Builder) place(v Node) {
	top := b.top()
	switch {
	case top == nil:
		b.root = v
		b.rootSet = true
	case top.kind == frameArray:
		top.arr = append(top.arr, v)
	default:
		top.obj[top.key] = v
		top.key, top.hasKey = "", false
	}
}

// Key names the next value of the open object.
func (b *Builder) Key(key string) *Builder {
	if !b.check("Key") {
		return b
	}
	top := b.top()
	if top == nil || top.kind != frameObject {
		return b.fail("Key", "no object is open")
	}
	if top.hasKey {
		return b.fail("Key", "previous key has no value")
	}
	if _, dup := top.obj[key]; dup {
		return b.fail("Key", "duplicate key "+key)
	}
	top.key, top.hasKey = key, true
	return b
}

// Value supplies a complete value.
func (b *Builder) Value(v Node) *Builder {
	if !b.check("Value") || !b.canPlace("Value") {
		return b
	}
	b.place(v)
	return b
}

// StartObject opens an object in the current value position.
func (b *Builder) StartObject() *Builder {
	if !b.check("StartObject") || !b.canPlace("StartObject") {
		return b
	}
	b.stack = append(b.stack, &frame{kind: frameObject, obj: Object{}})
	return b
}

// StartArray opens an array in the current value position.
func (b *Builder) StartArray() *Builder {
	if !b.check("StartArray") || !b.canPlace("StartArray") {
		return b
	}
	b.stack = append(b.stack, &frame{kind: frameArray, arr: Array{}})
	return b
}

// EndObject closes the innermost object.
func (b *Builder) EndObject() *Builder {
	if !b.check("EndObject") {
		return b
	}
	top := b.top()
	if top == nil || top.kind != frameObject {
		return b.fail("EndObject", "no object is open")
	}
	if top.hasKey {
		return b.fail("EndObject", "key "+top.key+" has no value")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.place(NewObject(top.obj))
	return b
}

// EndArray closes the innermost array.
func (b *Builder) EndArray() *Builder {
	if !b.check("EndArray") {
		return b
	}
	top := b.top()
	if top == nil || top.kind != frameArray {
		return b.fail("EndArray", "no array is open")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.place(NewArray(top.arr))
	return b
}

// Build returns the finished tree and consumes the builder.
func (b *Builder) Build() (Node, error) {
	if !b.check("Build") {
		return Node{}, b.err
	}
	if len(b.stack) > 0 {
		b.fail("Build", "a container is still open")
		return Node{}, b.err
	}
	if !b.rootSet {
		b.fail("Build", "no value has been built")
		return Node{}, b.err
	}
	b.consumed = true
	root := b.root
	b.root = Node{}
	return root, nil
}
