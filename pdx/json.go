package pdx

import (
	"encoding/json"
	"io"
)

// JSONEncoder renders a parse tree as JSON: a block is an array of
// {key, value} statements, a list is an array of values. Decimals
// are emitted as raw JSON numbers to keep them exact.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(b *Block) error {
	text, err := e.MarshalText(b)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(b *Block) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

type jsonStatement struct {
	Key   Object `json:"key"`
	Value Object `json:"value"`
}

func (b *Block) MarshalJSON() ([]byte, error) {
	stmts := make([]jsonStatement, 0, b.Len())
	for _, s := range b.Statements() {
		stmts = append(stmts, jsonStatement{Key: s.Key(), Value: s.Value()})
	}
	return json.Marshal(stmts)
}

func (l *List) MarshalJSON() ([]byte, error) {
	objs := l.Objects()
	if objs == nil {
		objs = []Object{}
	}
	return json.Marshal(objs)
}

func (o Object) MarshalJSON() ([]byte, error) {
	switch o.Type() {
	case TypeString:
		return json.Marshal(o.AsString())
	case TypeInteger:
		return json.Marshal(o.AsInteger())
	case TypeDate:
		return json.Marshal(o.AsDate().String())
	case TypeDecimal:
		// already a valid JSON number literal
		return []byte(o.AsDecimal().String()), nil
	case TypeBlock:
		return o.AsBlock().MarshalJSON()
	case TypeList:
		return o.AsList().MarshalJSON()
	}
	return []byte("null"), nil
}
