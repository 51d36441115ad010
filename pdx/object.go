package pdx

// ObjectType tags the active variant of an Object.
type ObjectType uint8

const (
	TypeString ObjectType = iota
	TypeInteger
	TypeDate
	TypeDecimal
	TypeBlock
	TypeList
)

var objectTypeNames = [...]string{
	TypeString:  "string",
	TypeInteger: "integer",
	TypeDate:    "date",
	TypeDecimal: "decimal",
	TypeBlock:   "block",
	TypeList:    "list",
}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return "unknown"
}

// Object is the generic parse-tree element: exactly one variant is
// active, indicated by Type. The As* accessors are unchecked; call them
// only when the matching Is* predicate holds.
type Object struct {
	typ ObjectType
	s   string // pool-owned, borrowed by the object
	i   int32
	d   Date
	dec Decimal
	b   *Block
	l   *List
}

func StringObject(s string) Object   { return Object{typ: TypeString, s: s} }
func IntegerObject(i int32) Object   { return Object{typ: TypeInteger, i: i} }
func DateObject(d Date) Object       { return Object{typ: TypeDate, d: d} }
func DecimalObject(d Decimal) Object { return Object{typ: TypeDecimal, dec: d} }
func BlockObject(b *Block) Object    { return Object{typ: TypeBlock, b: b} }
func ListObject(l *List) Object      { return Object{typ: TypeList, l: l} }

func (o Object) Type() ObjectType { return o.typ }

func (o Object) IsString() bool  { return o.typ == TypeString }
func (o Object) IsInteger() bool { return o.typ == TypeInteger }
func (o Object) IsDate() bool    { return o.typ == TypeDate }
func (o Object) IsDecimal() bool { return o.typ == TypeDecimal }
func (o Object) IsBlock() bool   { return o.typ == TypeBlock }
func (o Object) IsList() bool    { return o.typ == TypeList }

func (o Object) AsString() string   { return o.s }
func (o Object) AsInteger() int32   { return o.i }
func (o Object) AsDate() Date       { return o.d }
func (o Object) AsDecimal() Decimal { return o.dec }
func (o Object) AsBlock() *Block    { return o.b }
func (o Object) AsList() *List      { return o.l }

// Equal reports deep structural equality of two objects.
func (o Object) Equal(p Object) bool {
	if o.typ != p.typ {
		return false
	}
	switch o.typ {
	case TypeString:
		return o.s == p.s
	case TypeInteger:
		return o.i == p.i
	case TypeDate:
		return o.d == p.d
	case TypeDecimal:
		return o.dec == p.dec
	case TypeBlock:
		return o.b.Equal(p.b)
	case TypeList:
		return o.l.Equal(p.l)
	}
	return false
}

// Statement is one `key = value` pair inside a block. Keys are restricted
// to string, integer, and date objects by the grammar.
type Statement struct {
	key Object
	val Object
}

func (s Statement) Key() Object   { return s.key }
func (s Statement) Value() Object { return s.val }

// KeyEq reports whether the statement's key is the given string.
func (s Statement) KeyEq(key string) bool {
	return s.key.IsString() && s.key.AsString() == key
}

// Block is an ordered sequence of statements; a parsed file is a root
// Block. Statement order equals source order.
type Block struct {
	stmts []Statement
}

func (b *Block) Len() int { return len(b.stmts) }

func (b *Block) Statements() []Statement { return b.stmts }

func (b *Block) Equal(c *Block) bool {
	if len(b.stmts) != len(c.stmts) {
		return false
	}
	for i := range b.stmts {
		if !b.stmts[i].key.Equal(c.stmts[i].key) || !b.stmts[i].val.Equal(c.stmts[i].val) {
			return false
		}
	}
	return true
}

// List is an ordered sequence of bare values: strings, integers,
// decimals, and nested blocks. Lists do not nest directly.
type List struct {
	objs []Object
}

func (l *List) Len() int { return len(l.objs) }

func (l *List) Objects() []Object { return l.objs }

func (l *List) Equal(m *List) bool {
	if len(l.objs) != len(m.objs) {
		return false
	}
	for i := range l.objs {
		if !l.objs[i].Equal(m.objs[i]) {
			return false
		}
	}
	return true
}
