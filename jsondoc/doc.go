/*
Package jsondoc provides the dynamically-typed document value used by the
request pipeline, together with a strict parser, an indented printer and a
state-checked builder.

# Value Model

A Node holds exactly one of seven kinds: Null, Bool, Int, Float, String,
Array or Object. Accessors never reinterpret a value; the only implicit
conversion is AsFloat on an Int.

	n := jsondoc.Int(42)
	n.IsInt()     // true
	n.AsFloat()   // 42, nil
	n.AsString()  // "", *TypeMismatchError

# Parsing

	root, err := jsondoc.Load(os.Stdin)
	if err != nil {
	    var perr *jsondoc.ParseError
	    if errors.As(err, &perr) {
	        // perr.Offset, perr.Msg
	    }
	}

# Printing

Print writes the tree with four spaces per nesting level. Object keys are
written in sorted order so output is byte-for-byte deterministic.

# Building

	node, err := jsondoc.NewBuilder().
	    StartObject().
	        Key("request_id").Value(jsondoc.Int(1)).
	        Key("buses").StartArray().Value(jsondoc.String("14")).EndArray().
	    EndObject().
	    Build()

Misuse (a Key inside an array, an unclosed container at Build time, a second
root value) is reported as a *LogicError by Build.
*/
package jsondoc
