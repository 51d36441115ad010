package pdx

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONEncoder(t *testing.T) {
	p := mustParse(t, `name = "Haesteinn"`+"\nbirth = 832.1.1\nwealth = 123.456\ntraits = { 1 2 }\nempty = {}\n")

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(p.Root()); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded []struct {
		Key   any `json:"key"`
		Value any `json:"value"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 5 {
		t.Fatalf("got %d statements, want 5", len(decoded))
	}
	if decoded[0].Key != "name" || decoded[0].Value != "Haesteinn" {
		t.Errorf("statement 0: %v = %v", decoded[0].Key, decoded[0].Value)
	}
	if decoded[1].Value != "832.1.1" {
		t.Errorf("date encoded as %v, want \"832.1.1\"", decoded[1].Value)
	}
	if decoded[2].Value != 123.456 {
		t.Errorf("decimal encoded as %v, want 123.456", decoded[2].Value)
	}
	if list, ok := decoded[3].Value.([]any); !ok || len(list) != 2 {
		t.Errorf("list encoded as %v", decoded[3].Value)
	}
	if block, ok := decoded[4].Value.([]any); !ok || len(block) != 0 {
		t.Errorf("empty block encoded as %v, want []", decoded[4].Value)
	}
}
