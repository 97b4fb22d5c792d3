// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/math/fixed"

	"github.com/pringle92/flexdialog/font"
)

type layoutCache struct {
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	layout     Layout
}

type layoutKey struct {
	ppem       fixed.Int26_6
	maxWidth   int
	singleLine bool
	str        string
	font       font.Font
}

const maxSize = 1000

func (l *layoutCache) Get(k layoutKey) (Layout, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.layout, true
	}
	return Layout{}, false
}

func (l *layoutCache) Put(k layoutKey, lt Layout) {
	if l.m == nil {
		l.m = make(map[layoutKey]*layoutElem)
		l.head = new(layoutElem)
		l.tail = new(layoutElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &layoutElem{key: k, layout: lt}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *layoutCache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *layoutCache) insert(lt *layoutElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
