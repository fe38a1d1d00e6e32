package parser

import (
	"fmt"
	"strings"
)

// Parse tracing prints a nested BEGIN/END line per parse function to the
// configured trace writer. The intended call shape is
//
//	defer p.untrace(p.trace("parseExpression"))
//
// so that entry and exit bracket the function body. With no trace writer
// configured both calls are no-ops.

const traceIndentPlaceholder = "\t"

func (p *Parser) indentLevel() string {
	return strings.Repeat(traceIndentPlaceholder, p.traceLevel-1)
}

func (p *Parser) tracePrint(s string) {
	fmt.Fprintf(p.opts.TraceWriter, "%s%s\n", p.indentLevel(), s)
}

func (p *Parser) trace(msg string) string {
	if p.opts.TraceWriter == nil {
		return msg
	}
	p.traceLevel++
	p.tracePrint("BEGIN " + msg)
	return msg
}

func (p *Parser) untrace(msg string) {
	if p.opts.TraceWriter == nil {
		return
	}
	p.tracePrint("END " + msg)
	p.traceLevel--
}
