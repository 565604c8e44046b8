package selection

import "github.com/firefly-engineering/spaces/internal/fuzzy"

// noHighlight marks a List with no highlighted item.
const noHighlight = -1

// List is an ordered set of filtered candidates with an optional
// highlighted item.
type List[T any] struct {
	Items     []fuzzy.Match[T]
	highlight int
}

func newList[T any](items []fuzzy.Match[T]) List[T] {
	return List[T]{Items: items, highlight: noHighlight}
}

// Highlighted returns the index of the highlighted item, or -1.
func (l *List[T]) Highlighted() int {
	return l.highlight
}

// Selected returns the highlighted item.
func (l *List[T]) Selected() (fuzzy.Match[T], bool) {
	if l.highlight < 0 || l.highlight >= len(l.Items) {
		var zero fuzzy.Match[T]
		return zero, false
	}
	return l.Items[l.highlight], true
}

// Next highlights the following item, or the first when none is
// highlighted. It stays on the last item.
func (l *List[T]) Next() {
	if len(l.Items) == 0 {
		return
	}
	if l.highlight == noHighlight {
		l.highlight = 0
		return
	}
	if l.highlight < len(l.Items)-1 {
		l.highlight++
	}
}

// Prev highlights the preceding item, or the last when none is
// highlighted. It stays on the first item.
func (l *List[T]) Prev() {
	if len(l.Items) == 0 {
		return
	}
	if l.highlight == noHighlight {
		l.highlight = len(l.Items) - 1
		return
	}
	if l.highlight > 0 {
		l.highlight--
	}
}

// Clear removes the highlight.
func (l *List[T]) Clear() {
	l.highlight = noHighlight
}

// Query is the typed text of a stage and the candidates it selects.
type Query[T any] struct {
	Text string
	List List[T]
}
