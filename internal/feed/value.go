package feed

// Kind tags the runtime shape of a frontmatter value.
type Kind uint8

// Frontmatter value kinds.
const (
	KindAbsent Kind = iota
	KindString
	KindBool
	KindNumber
	KindOther
)

// Value is a frontmatter value narrowed to the shapes the indexer reads.
type Value struct {
	kind Kind
	str  string
	flag bool
	num  float64
}

// ValueOf classifies an untyped frontmatter value.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case string:
		return Value{kind: KindString, str: t}
	case bool:
		return Value{kind: KindBool, flag: t}
	case int:
		return Value{kind: KindNumber, num: float64(t)}
	case int8:
		return Value{kind: KindNumber, num: float64(t)}
	case int16:
		return Value{kind: KindNumber, num: float64(t)}
	case int32:
		return Value{kind: KindNumber, num: float64(t)}
	case int64:
		return Value{kind: KindNumber, num: float64(t)}
	case uint:
		return Value{kind: KindNumber, num: float64(t)}
	case uint8:
		return Value{kind: KindNumber, num: float64(t)}
	case uint16:
		return Value{kind: KindNumber, num: float64(t)}
	case uint32:
		return Value{kind: KindNumber, num: float64(t)}
	case uint64:
		return Value{kind: KindNumber, num: float64(t)}
	case float32:
		return Value{kind: KindNumber, num: float64(t)}
	case float64:
		return Value{kind: KindNumber, num: t}
	default:
		return Value{kind: KindOther}
	}
}

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// String returns the string payload when the value is a string.
func (v Value) String() (string, bool) {
	return v.str, v.kind == KindString
}

// Bool returns the boolean payload when the value is a boolean.
func (v Value) Bool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Number returns the numeric payload when the value is a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Frontmatter is a document's metadata with every value classified.
type Frontmatter map[string]Value

// NewFrontmatter classifies raw. A nil map yields an empty Frontmatter.
func NewFrontmatter(raw map[string]any) Frontmatter {
	fm := make(Frontmatter, len(raw))
	for k, v := range raw {
		fm[k] = ValueOf(v)
	}
	return fm
}

// String returns the string stored under key, if any.
func (fm Frontmatter) String(key string) (string, bool) {
	return fm[key].String()
}

// Bool returns the boolean stored under key, if any.
func (fm Frontmatter) Bool(key string) (bool, bool) {
	return fm[key].Bool()
}

// BoolOr returns the boolean under key, or def when absent or not a boolean.
func (fm Frontmatter) BoolOr(key string, def bool) bool {
	if b, ok := fm.Bool(key); ok {
		return b
	}
	return def
}
