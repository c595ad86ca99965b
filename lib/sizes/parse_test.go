package sizes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/pescuma/codesize/lib/model"
)

const cryptoOutput = `   text	   data	    bss	    dec	    hex	filename
   4242	      0	      0	   4242	   1092	aes.o (ex library/libmbedcrypto.a)
    512	      8	     16	    536	    218	bignum.o (ex library/libmbedcrypto.a)
   4754	      8	     16	   4778	   12aa	(TOTALS)
`

func TestParse(t *testing.T) {
	testgroup.RunInParallel(t, &ParseTests{})
}

type ParseTests struct {
}

func (g *ParseTests) ParsesObjectsInOrder(t *testgroup.T) {
	lib, err := Parse(model.LibraryCrypto, []byte(cryptoOutput))

	t.NoError(err)
	t.Equal(model.LibraryCrypto, lib.Name)
	t.Equal([]string{"aes.o", "bignum.o", model.TotalsName}, lib.Names())

	s, _ := lib.Get("bignum.o")
	t.Equal(model.NewSize(512, 8, 16, 536), s)

	totals, ok := lib.Totals()
	t.True(ok)
	t.Equal(int64(4778), totals.Total)
}

func (g *ParseTests) ProducesOneRecordPerDataLine(t *testgroup.T) {
	for n := 0; n < 20; n++ {
		var b strings.Builder
		b.WriteString("text data bss dec hex filename\n")
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "%v %v %v %v %x f%v.o\n", i, 1, 2, i*7+3, i*7+3, i)
		}

		lib, err := Parse(model.LibraryTLS, []byte(b.String()))

		t.NoError(err)
		t.Equal(n, lib.Len())
		for i, name := range lib.Names() {
			s, _ := lib.Get(name)
			t.Equal(int64(i*7+3), s.Total)
		}
	}
}

func (g *ParseTests) HeaderOnly(t *testgroup.T) {
	lib, err := Parse(model.LibraryX509, []byte("   text	   data	    bss	    dec	    hex	filename\n"))

	t.NoError(err)
	t.Equal(0, lib.Len())
}

func (g *ParseTests) EmptyOutput(t *testgroup.T) {
	lib, err := Parse(model.LibraryX509, nil)

	t.NoError(err)
	t.Equal(0, lib.Len())
}

func (g *ParseTests) MissingColumnsFail(t *testgroup.T) {
	_, err := Parse(model.LibraryCrypto, []byte("header\n1 2 3 6 6\n"))

	t.ErrorContains(err, "line 2")
}

func (g *ParseTests) BlankLineFails(t *testgroup.T) {
	_, err := Parse(model.LibraryCrypto, []byte("header\n1 2 3 6 6 a.o\n\n1 2 3 6 6 b.o\n"))

	t.ErrorContains(err, "line 3")
}

func (g *ParseTests) NonNumericFails(t *testgroup.T) {
	_, err := Parse(model.LibraryCrypto, []byte("header\n1 x 3 6 6 a.o\n"))

	t.ErrorContains(err, "not a number")
}

func (g *ParseTests) HexColumnIsIgnored(t *testgroup.T) {
	lib, err := Parse(model.LibraryCrypto, []byte("header\n1 2 3 6 zz a.o\n"))

	t.NoError(err)
	s, _ := lib.Get("a.o")
	t.Equal(model.NewSize(1, 2, 3, 6), s)
}
