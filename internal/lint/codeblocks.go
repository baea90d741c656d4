package lint

import "github.com/yuin/goldmark/ast"

// CodeBlockLines returns the set of 1-based line numbers that belong to
// fenced code blocks (including fence lines) or indented code blocks.
func CodeBlockLines(d *Document) map[int]bool {
	lines := map[int]bool{}

	_ = ast.Walk(d.Markdown(), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch cb := n.(type) {
		case *ast.FencedCodeBlock:
			addFencedLines(d, cb, lines)
		case *ast.CodeBlock:
			addBlockLines(d, cb, lines)
		}

		return ast.WalkContinue, nil
	})

	return lines
}

// HasCodeBlock reports whether the document contains any code block.
func HasCodeBlock(d *Document) bool {
	found := false
	_ = ast.Walk(d.Markdown(), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

// addFencedLines marks the opening fence, the content lines and the
// closing fence.
func addFencedLines(d *Document, fcb *ast.FencedCodeBlock, set map[int]bool) {
	open := 0
	if fcb.Info != nil {
		open = d.LineOfOffset(fcb.Info.Segment.Start)
	} else if fcb.Lines().Len() > 0 {
		open = d.LineOfOffset(fcb.Lines().At(0).Start) - 1
	}
	if open > 0 {
		set[open] = true
	}

	last := 0
	segs := fcb.Lines()
	for i := 0; i < segs.Len(); i++ {
		ln := d.LineOfOffset(segs.At(i).Start)
		set[ln] = true
		if ln > last {
			last = ln
		}
	}

	closing := open + 1
	if last > 0 {
		closing = last + 1
	}
	// An unterminated fence runs to the end of the document.
	if open > 0 && closing <= len(d.Lines) {
		set[closing] = true
	}
}

func addBlockLines(d *Document, cb *ast.CodeBlock, set map[int]bool) {
	segs := cb.Lines()
	for i := 0; i < segs.Len(); i++ {
		set[d.LineOfOffset(segs.At(i).Start)] = true
	}
}
