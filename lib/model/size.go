package model

// Size holds the segment sizes reported by the size tool for one object file
// or for a whole archive.
type Size struct {
	Text  int64
	Data  int64
	Bss   int64
	Total int64
}

func NewSize(text, data, bss, total int64) Size {
	return Size{
		Text:  text,
		Data:  data,
		Bss:   bss,
		Total: total,
	}
}

// Equal compares only the segments. Total is derived by the tool and is not
// part of the identity.
func (s Size) Equal(other Size) bool {
	return s.Text == other.Text && s.Data == other.Data && s.Bss == other.Bss
}

func (s Size) Less(other Size) bool {
	return s.Total < other.Total
}

func (s Size) LessOrEqual(other Size) bool {
	return s.Less(other) || s.Equal(other)
}

func (s Size) Greater(other Size) bool {
	return s.Total > other.Total
}

func (s Size) GreaterOrEqual(other Size) bool {
	return s.Greater(other) || s.Equal(other)
}

func (s Size) Add(other Size) Size {
	return Size{
		Text:  s.Text + other.Text,
		Data:  s.Data + other.Data,
		Bss:   s.Bss + other.Bss,
		Total: s.Total + other.Total,
	}
}

func (s Size) Sub(other Size) Size {
	return Size{
		Text:  s.Text - other.Text,
		Data:  s.Data - other.Data,
		Bss:   s.Bss - other.Bss,
		Total: s.Total - other.Total,
	}
}

func (s Size) IsEmpty() bool {
	return s == Size{}
}
