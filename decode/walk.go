package decode

import "github.com/maniartech/jsonvisit"

// ctx tracks one currently-open container: the path to the container
// itself, and enough state to compute the path of its next child.
type ctx struct {
	path    []any
	isArray bool
	index   int
	haveKey bool
	key     string
}

func appendPath(p []any, v any) []any {
	np := make([]any, len(p)+1)
	copy(np, p)
	np[len(p)] = v
	return np
}

// Walk runs Parse over data, calling fn with every event jsonvisit.Parse
// would report, alongside the path of string keys and int indices
// leading to that event from the document root. The root value itself
// is reported with an empty path. No value is ever decoded or
// materialized; path is computed purely from container structure.
func Walk(data []byte, opts jsonvisit.Options, fn func(path []any, ev jsonvisit.Event) int64) int64 {
	var stack []ctx

	valuePath := func() []any {
		if len(stack) == 0 {
			return []any{}
		}
		top := &stack[len(stack)-1]
		if top.isArray {
			return appendPath(top.path, top.index)
		}
		return appendPath(top.path, top.key)
	}

	consumeChild := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.isArray {
			top.index++
		} else {
			top.haveKey = false
		}
	}

	return jsonvisit.Parse(data, opts, func(start, end int, info jsonvisit.Info) int64 {
		ev := jsonvisit.Event{Start: start, End: end, Info: info}

		switch {
		case info.Has(jsonvisit.KEY):
			top := &stack[len(stack)-1]
			s, _ := String(data[start:end])
			top.key = s
			top.haveKey = true
			return fn(appendPath(top.path, s), ev)

		case info.Has(jsonvisit.OPEN):
			vp := valuePath()
			r := fn(vp, ev)
			stack = append(stack, ctx{path: vp, isArray: info.Has(jsonvisit.ARRAY)})
			return r

		case info.Has(jsonvisit.CLOSE):
			var p []any
			if len(stack) > 0 {
				p = stack[len(stack)-1].path
				stack = stack[:len(stack)-1]
			} else {
				p = []any{}
			}
			r := fn(p, ev)
			consumeChild()
			return r

		case info.Has(jsonvisit.COMMA), info.Has(jsonvisit.COLON):
			if len(stack) == 0 {
				return fn([]any{}, ev)
			}
			return fn(stack[len(stack)-1].path, ev)

		default:
			vp := valuePath()
			r := fn(vp, ev)
			consumeChild()
			return r
		}
	})
}
