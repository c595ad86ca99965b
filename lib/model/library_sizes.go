package model

// TotalsName is the pseudo object the size tool emits with the sum of a whole
// archive.
const TotalsName = "(TOTALS)"

// LibrarySizes maps object names to their sizes, keeping the order in which
// they were first added.
type LibrarySizes struct {
	Name string

	names []string
	sizes map[string]Size
}

func NewLibrarySizes(name string) *LibrarySizes {
	return &LibrarySizes{
		Name:  name,
		sizes: map[string]Size{},
	}
}

// Set adds or replaces an object. Replacing keeps the original position.
func (l *LibrarySizes) Set(name string, size Size) {
	if _, ok := l.sizes[name]; !ok {
		l.names = append(l.names, name)
	}

	l.sizes[name] = size
}

func (l *LibrarySizes) Get(name string) (Size, bool) {
	s, ok := l.sizes[name]
	return s, ok
}

func (l *LibrarySizes) Contains(name string) bool {
	_, ok := l.sizes[name]
	return ok
}

func (l *LibrarySizes) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *LibrarySizes) Len() int {
	return len(l.names)
}

// Totals returns the (TOTALS) row, if the tool emitted one.
func (l *LibrarySizes) Totals() (Size, bool) {
	return l.Get(TotalsName)
}

// Sum adds all objects, ignoring the (TOTALS) row.
func (l *LibrarySizes) Sum() Size {
	var result Size
	for _, name := range l.names {
		if name == TotalsName {
			continue
		}

		result = result.Add(l.sizes[name])
	}
	return result
}

func (l *LibrarySizes) ForEach(f func(name string, size Size)) {
	for _, name := range l.names {
		f(name, l.sizes[name])
	}
}
