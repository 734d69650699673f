package tokenizer

// attributeBuffer accumulates the attributes of the tag under construction.
// Duplicated names are kept in the order they appear.
type attributeBuffer struct {
	items []AttributeView
}

func (b *attributeBuffer) reset() {
	b.items = b.items[:0]
}

// startName opens a new attribute whose name begins at pos. Until a value is
// seen the value is the empty range at the end of the name.
func (b *attributeBuffer) startName(pos int) {
	b.items = append(b.items, AttributeView{
		Name:  Range{Start: pos, End: pos},
		Value: Range{Start: pos, End: pos},
	})
}

func (b *attributeBuffer) current() *AttributeView {
	return &b.items[len(b.items)-1]
}

func (b *attributeBuffer) endName(pos int) {
	a := b.current()
	a.Name.End = pos
	a.Value = Range{Start: pos, End: pos}
}

func (b *attributeBuffer) startValue(pos int) {
	b.current().Value = Range{Start: pos, End: pos}
}

func (b *attributeBuffer) endValue(pos int) {
	b.current().Value.End = pos
}

func (b *attributeBuffer) len() int {
	return len(b.items)
}

func (b *attributeBuffer) shift(n int) {
	for i := range b.items {
		b.items[i].shift(n)
	}
}
