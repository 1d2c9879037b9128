package formatter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown renders section markdown as styled terminal text wrapped
// to width. Soft line breaks reflow; hard breaks and block structure stay.
func RenderMarkdown(source string, width int) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	src := []byte(source)
	doc := markdownParser.Parser().Parse(text.NewReader(src))

	r := &mdRenderer{src: src, width: width}
	_ = ast.Walk(doc, r.walk)
	return strings.TrimRight(r.out.String(), "\n")
}

// mdRenderer walks the goldmark AST directly: inline content collects in a
// buffer and is wrapped as a unit when its block closes.
type mdRenderer struct {
	src   []byte
	width int

	out      strings.Builder
	inline   strings.Builder
	trailing int // newlines at the end of out

	prefixes []string
	bullet   string // replaces the prefix on the next emitted line
	lists    []mdList

	bold, italic, strike int
}

type mdList struct {
	ordered bool
	next    int
	tight   bool
}

func (r *mdRenderer) linePrefix() string { return strings.Join(r.prefixes, "") }

func (r *mdRenderer) contentWidth() int {
	return max(r.width-lipgloss.Width(r.linePrefix()), 10)
}

func (r *mdRenderer) write(s string) {
	if s == "" {
		return
	}
	r.out.WriteString(s)
	n := len(s) - len(strings.TrimRight(s, "\n"))
	if n == len(s) {
		r.trailing += n
	} else {
		r.trailing = n
	}
}

func (r *mdRenderer) newline() {
	if r.trailing < 1 {
		r.write("\n")
	}
}

func (r *mdRenderer) blankLine() {
	if r.out.Len() == 0 {
		return
	}
	for r.trailing < 2 {
		r.write("\n")
	}
}

// emit writes block content with the bullet or nesting prefix on each line.
func (r *mdRenderer) emit(content string) {
	prefix := r.linePrefix()
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			r.write("\n")
		}
		if i == 0 && r.bullet != "" {
			r.write(r.bullet)
			r.bullet = ""
		} else {
			r.write(prefix)
		}
		r.write(line)
	}
	r.newline()
}

func (r *mdRenderer) flush() string {
	s := r.inline.String()
	r.inline.Reset()
	return s
}

func (r *mdRenderer) inTightList() bool {
	return len(r.lists) > 0 && r.lists[len(r.lists)-1].tight
}

func (r *mdRenderer) styled(s string) string {
	style := StyleFg
	if r.bold > 0 {
		style = style.Bold(true)
	}
	if r.italic > 0 {
		style = style.Italic(true)
	}
	if r.strike > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(s)
}

func (r *mdRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			r.inline.Reset()
			return ast.WalkContinue, nil
		}
		if content := r.flush(); content != "" {
			r.emit(ansi.Wrap(content, r.contentWidth(), " ,.;-"))
			if !r.inTightList() {
				r.blankLine()
			}
		}

	case *ast.Heading:
		if entering {
			r.inline.Reset()
			return ast.WalkContinue, nil
		}
		title := ansi.Strip(r.flush())
		style := StyleBold
		if node.Level <= 2 {
			style = StyleHeader
		}
		r.blankLine()
		r.emit(ansi.Wrap(style.Render(title), r.contentWidth(), " "))
		r.blankLine()

	case *ast.Blockquote:
		if entering {
			r.prefixes = append(r.prefixes, StyleDim.Render("│ "))
		} else {
			r.prefixes = r.prefixes[:len(r.prefixes)-1]
			r.blankLine()
		}

	case *ast.List:
		if entering {
			r.lists = append(r.lists, mdList{ordered: node.IsOrdered(), next: node.Start, tight: node.IsTight})
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			if len(r.lists) == 0 {
				r.blankLine()
			}
		}

	case *ast.ListItem:
		if entering {
			l := &r.lists[len(r.lists)-1]
			marker := "• "
			if l.ordered {
				marker = fmt.Sprintf("%d. ", l.next)
				l.next++
			}
			r.bullet = r.linePrefix() + StyleYellow.Render(marker)
			r.prefixes = append(r.prefixes, strings.Repeat(" ", lipgloss.Width(marker)))
		} else {
			r.prefixes = r.prefixes[:len(r.prefixes)-1]
			r.newline()
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			r.codeBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			r.blankLine()
			r.emit(StyleDim.Render(strings.Repeat("─", r.contentWidth())))
			r.blankLine()
		}

	case *ast.Text:
		if entering {
			r.inline.WriteString(r.styled(string(node.Segment.Value(r.src))))
			switch {
			case node.HardLineBreak():
				r.inline.WriteString("\n")
			case node.SoftLineBreak():
				r.inline.WriteString(" ")
			}
		}

	case *ast.String:
		if entering {
			r.inline.WriteString(r.styled(string(node.Value)))
		}

	case *ast.Emphasis:
		counter := &r.italic
		if node.Level >= 2 {
			counter = &r.bold
		}
		if entering {
			*counter++
		} else {
			*counter--
		}

	case *extast.Strikethrough:
		if entering {
			r.strike++
		} else {
			r.strike--
		}

	case *ast.CodeSpan:
		if entering {
			r.inline.WriteString(StylePurple.Render(r.plainText(n)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		if entering {
			label := r.plainText(n)
			r.inline.WriteString(StyleBlue.Underline(true).Render(label))
			if dest := string(node.Destination); dest != "" && dest != label {
				r.inline.WriteString(StyleDim.Render(" (" + dest + ")"))
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			r.inline.WriteString(StyleBlue.Underline(true).Render(string(node.URL(r.src))))
		}
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) codeBlock(n ast.Node) {
	lines := n.Lines()
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.WriteString(strings.TrimRight(string(seg.Value(r.src)), "\n"))
		if i < lines.Len()-1 {
			b.WriteString("\n")
		}
	}
	var lang string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(r.src))
	}
	r.blankLine()
	r.prefixes = append(r.prefixes, "  ")
	r.emit(highlightCode(b.String(), lang))
	r.prefixes = r.prefixes[:len(r.prefixes)-1]
	r.blankLine()
}

// highlightCode colors code with chroma when the fence names a language it
// knows. Anything else is rendered dim.
func highlightCode(code, lang string) string {
	if lang == "" {
		return StyleDim.Render(code)
	}
	var b strings.Builder
	if err := quick.Highlight(&b, code, lang, "terminal256", "gruvbox"); err != nil {
		return StyleDim.Render(code)
	}
	return strings.TrimRight(b.String(), "\n")
}

// plainText concatenates the text segments below n.
func (r *mdRenderer) plainText(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(r.src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
