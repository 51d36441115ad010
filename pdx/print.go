package pdx

import (
	"fmt"
	"io"
	"strings"
)

// Print renders the block back to surface syntax. Printing a root block
// and re-parsing the output yields an equal tree.
func (b *Block) Print(w io.Writer) error {
	pr := &printer{w: w}
	pr.block(b, 0)
	return pr.err
}

func (b *Block) String() string {
	var sb strings.Builder
	b.Print(&sb)
	return sb.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (pr *printer) printf(format string, args ...any) {
	if pr.err == nil {
		_, pr.err = fmt.Fprintf(pr.w, format, args...)
	}
}

func (pr *printer) block(b *Block, indent int) {
	for _, s := range b.Statements() {
		pr.printf("%*s", indent, "")
		pr.object(s.Key(), indent)
		pr.printf(" = ")
		pr.object(s.Value(), indent)
		pr.printf("\n")
	}
}

func (pr *printer) object(o Object, indent int) {
	switch o.Type() {
	case TypeString:
		if needsQuotes(o.AsString()) {
			pr.printf("\"%s\"", o.AsString())
		} else {
			pr.printf("%s", o.AsString())
		}
	case TypeInteger:
		pr.printf("%d", o.AsInteger())
	case TypeDate:
		pr.printf("%s", o.AsDate())
	case TypeDecimal:
		pr.printf("%s", o.AsDecimal())
	case TypeBlock:
		pr.printf("{\n")
		pr.block(o.AsBlock(), indent+4)
		pr.printf("%*s}", indent, "")
	case TypeList:
		pr.printf("{ ")
		for _, el := range o.AsList().Objects() {
			pr.object(el, indent)
			pr.printf(" ")
		}
		pr.printf("}")
	}
}

// needsQuotes reports whether a string must be quoted to survive
// re-lexing as a string: anything with whitespace, quote, or delimiter
// characters, and anything that would re-lex as a numeric or date token.
func needsQuotes(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\xA0\r\n'\"{}=#") {
		return true
	}
	b := []byte(s)
	return isDateText(b) || isIntegerText(b) || isDecimalText(b)
}
