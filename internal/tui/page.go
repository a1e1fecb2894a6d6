package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/heartmarshall/bireader/internal/interleave"
)

type segKind int

const (
	segPlain segKind = iota
	segWord
	segTarget
)

// segment is a run of plain text drawn with one style. spot indexes
// page.spots for hoverable words and is -1 otherwise.
type segment struct {
	text string
	kind segKind
	spot int
}

type line []segment

// spot is the position of a hoverable word on the page, in content
// coordinates.
type spot struct {
	key   string
	line  int
	col   int
	width int
}

func (s spot) center() int { return s.col + s.width/2 }

// page is the laid-out content of an interleaved document.
type page struct {
	lines []line
	spots []spot
}

// layoutPage flows every pair into lines of at most width columns, one
// entry per terminal row. Source words wrap at token boundaries so each keeps
// a single position, and line breaks inside the text start a new row. Target
// sentences are word-wrapped below their source.
func layoutPage(pairs []interleave.PairView, width int) *page {
	width = max(width, 10)
	p := &page{}

	for i, pair := range pairs {
		if i > 0 {
			p.lines = append(p.lines, nil)
		}

		cur := line{}
		col := 0
		breakLine := func() {
			p.lines = append(p.lines, trimTrailingSpace(cur))
			cur, col = line{}, 0
		}

		for _, tok := range pair.Source {
			for _, piece := range splitPiece(strings.TrimSuffix(tok.Display, " ")) {
				for range piece.breaks {
					breakLine()
				}

				w := runewidth.StringWidth(piece.text)
				if col > 0 && col+w > width {
					breakLine()
				}

				idx := -1
				kind := segPlain
				key := interleave.LookupKey(piece.text)
				if tok.Hoverable && key != "" {
					idx = len(p.spots)
					kind = segWord
					p.spots = append(p.spots, spot{key: key, line: len(p.lines), col: col, width: w})
				}
				if piece.text != "" {
					cur = append(cur, segment{text: piece.text, kind: kind, spot: idx})
					col += w
				}
				if col > 0 && col < width {
					cur = append(cur, segment{text: " ", kind: segPlain, spot: -1})
					col++
				}
			}
		}
		p.lines = append(p.lines, trimTrailingSpace(cur))

		target := strings.TrimSpace(strings.Map(flattenControl, interleave.Join(pair.Target)))
		if target == "" {
			continue
		}
		for _, l := range strings.Split(wordwrap.String(target, width), "\n") {
			p.lines = append(p.lines, line{{text: l, kind: segTarget, spot: -1}})
		}
	}

	return p
}

// piece is a whitespace-free run of a token's display text. breaks counts
// the line breaks inside the token that precede it.
type piece struct {
	text   string
	breaks int
}

// splitPiece cuts a token's display text at embedded whitespace so that every
// rendered segment occupies one terminal row. Line breaks are kept as counts;
// other whitespace and control runes only separate pieces.
func splitPiece(display string) []piece {
	display = strings.ReplaceAll(display, "\r\n", "\n")

	var out []piece
	var b strings.Builder
	breaks := 0
	for _, r := range display {
		switch {
		case isLineBreak(r):
			if b.Len() > 0 {
				out = append(out, piece{text: b.String(), breaks: breaks})
				b.Reset()
				breaks = 0
			}
			breaks++
		case unicode.IsSpace(r) || unicode.IsControl(r):
			if b.Len() > 0 {
				out = append(out, piece{text: b.String(), breaks: breaks})
				b.Reset()
				breaks = 0
			}
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 || breaks > 0 || len(out) == 0 {
		out = append(out, piece{text: b.String(), breaks: breaks})
	}
	return out
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// flattenControl maps tabs and other control runes to spaces, keeping line
// breaks for wordwrap.
func flattenControl(r rune) rune {
	if isLineBreak(r) {
		return '\n'
	}
	if unicode.IsControl(r) || unicode.IsSpace(r) {
		return ' '
	}
	return r
}

func trimTrailingSpace(l line) line {
	for len(l) > 0 && l[len(l)-1].kind == segPlain && strings.TrimSpace(l[len(l)-1].text) == "" {
		l = l[:len(l)-1]
	}
	return l
}

// plain returns the text of line i without styling.
func (p *page) plain(i int) string {
	var b strings.Builder
	for _, s := range p.lines[i] {
		b.WriteString(s.text)
	}
	return b.String()
}

// spotAt returns the spot covering column col of line ln, or -1.
func (p *page) spotAt(ln, col int) int {
	for i, s := range p.spots {
		if s.line == ln && col >= s.col && col < s.col+s.width {
			return i
		}
	}
	return -1
}

// vertical returns the spot nearest to spots[from] horizontally on the
// closest line above (dir < 0) or below (dir > 0) that has any spots.
// It returns from when there is no such line.
func (p *page) vertical(from, dir int) int {
	if from < 0 || from >= len(p.spots) {
		return from
	}
	origin := p.spots[from]

	target := -1
	for _, s := range p.spots {
		below := dir > 0 && s.line > origin.line && (target == -1 || s.line < target)
		above := dir < 0 && s.line < origin.line && (target == -1 || s.line > target)
		if below || above {
			target = s.line
		}
	}
	if target == -1 {
		return from
	}

	best, bestDist := from, -1
	for i, s := range p.spots {
		if s.line != target {
			continue
		}
		d := abs(s.center() - origin.center())
		if bestDist == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// cut splits l at columns [from, to). The left part is padded with spaces to
// exactly from columns.
func cut(l line, from, to int) (left, right line) {
	col := 0
	for _, s := range l {
		var lb, rb strings.Builder
		for _, r := range s.text {
			w := runewidth.RuneWidth(r)
			switch {
			case col+w <= from:
				lb.WriteRune(r)
			case col >= to:
				rb.WriteRune(r)
			}
			col += w
		}
		if lb.Len() > 0 {
			left = append(left, segment{text: lb.String(), kind: s.kind, spot: s.spot})
		}
		if rb.Len() > 0 {
			right = append(right, segment{text: rb.String(), kind: s.kind, spot: s.spot})
		}
	}

	if w := lineWidth(left); w < from {
		left = append(left, segment{text: strings.Repeat(" ", from-w), kind: segPlain, spot: -1})
	}
	return left, right
}

func lineWidth(l line) int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.text)
	}
	return w
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
