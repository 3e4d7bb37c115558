// Package render converts content body markup into HTML with syntax
// highlighted code blocks. Rendering is a pure function of the input
// text and a fixed theme; identical input always yields identical
// output.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// styleName is the fixed highlighting theme applied to all code blocks.
const styleName = "github-dark"

// markdownInstance is initialized once and reused. The goldmark
// configuration never changes and the Markdown value is safe to share;
// per-call parser state is created inside Convert.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(
					util.Prioritized(newCodeBlockRenderer(), 100),
				),
			),
		)
	})
	return markdownInstance
}

// Render converts body markup to HTML. Fenced code blocks are replaced
// with chroma-highlighted markup; everything else goes through
// goldmark's default HTML renderer.
func Render(markup string) (string, error) {
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(markup), &buf); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return buf.String(), nil
}

// codeBlockRenderer overrides goldmark's fenced code block output with
// chroma-highlighted HTML in a fixed style.
type codeBlockRenderer struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newCodeBlockRenderer() *codeBlockRenderer {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &codeBlockRenderer{
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(2)),
	}
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	block := node.(*ast.FencedCodeBlock)
	language := string(block.Language(source))

	var code strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(source))
	}

	highlighted, err := r.highlight(code.String(), language)
	if err != nil {
		return ast.WalkStop, err
	}
	if _, err := w.WriteString(highlighted); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

func (r *codeBlockRenderer) highlight(code, language string) (string, error) {
	// Blank lines collapse to nothing once wrapped in highlight spans;
	// a single space token keeps them visually present.
	code = padBlankLines(code)

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight: %w", err)
	}

	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, r.style, iterator); err != nil {
		return "", fmt.Errorf("highlight: %w", err)
	}
	return buf.String(), nil
}

// padBlankLines replaces empty lines with a single space. The trailing
// empty element from a final newline is left alone: it is not a line.
func padBlankLines(code string) string {
	lines := strings.Split(code, "\n")
	for i := 0; i < len(lines)-1; i++ {
		if lines[i] == "" {
			lines[i] = " "
		}
	}
	return strings.Join(lines, "\n")
}
