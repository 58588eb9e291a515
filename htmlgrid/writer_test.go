package htmlgrid

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-treegrid"
	"github.com/domonda/go-treegrid/statictree"
)

func newGroceries() *statictree.List {
	root := statictree.NewList(2,
		[]string{"Fruits", "3"},
		[]string{"Vegetables", "2"},
	)
	root.Expand(0, statictree.NewList(1,
		[]string{"Apple"},
		[]string{"Banana"},
		[]string{"Cherry"},
	))
	return root
}

func ExampleWriter() {
	tree, err := statictree.New(newGroceries())
	if err != nil {
		panic(err)
	}

	NewWriter().
		WithHeaderTitles("Name", "Count").
		WithTableClass("tree").
		Write(context.Background(), os.Stdout, tree, nil, "Groceries")

	// Output:
	// <table class='tree'>
	//   <caption>Groceries</caption>
	//   <tr><th>Name</th><th>Count</th></tr>
	//   <tr><td>Fruits</td><td rowspan='4'>3</td></tr>
	//   <tr><td>Apple</td></tr>
	//   <tr><td>Banana</td></tr>
	//   <tr><td>Cherry</td></tr>
	//   <tr><td>Vegetables</td><td>2</td></tr>
	// </table>
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	jagged := newGroceries()
	jagged.Rows[1] = []string{"Vegetables"}
	escaped := statictree.NewList(1, []string{"<b>bold</b>"})
	swapped, err := treegrid.NewColumnPermutation(2, []int{1, 0}, false)
	require.NoError(t, err)

	tests := []struct {
		name        string
		writer      *Writer
		root        *statictree.List
		permutation *treegrid.ColumnPermutation
		want        string
	}{
		{
			name:   "jagged row",
			writer: NewWriter(),
			root:   jagged,
			want: "" +
				"<table>\n" +
				"  <tr><td>Fruits</td><td rowspan='4'>3</td></tr>\n" +
				"  <tr><td>Apple</td></tr>\n" +
				"  <tr><td>Banana</td></tr>\n" +
				"  <tr><td>Cherry</td></tr>\n" +
				"  <tr><td colspan='2'>Vegetables</td></tr>\n" +
				"</table>",
		},
		{
			name:   "without merging",
			writer: NewWriter().WithMergeBlanks(false),
			root:   newGroceries(),
			want: "" +
				"<table>\n" +
				"  <tr><td>Fruits</td><td>3</td></tr>\n" +
				"  <tr><td>Apple</td><td></td></tr>\n" +
				"  <tr><td>Banana</td><td></td></tr>\n" +
				"  <tr><td>Cherry</td><td></td></tr>\n" +
				"  <tr><td>Vegetables</td><td>2</td></tr>\n" +
				"</table>",
		},
		{
			name:        "permuted",
			writer:      NewWriter().WithHeaderTitles("Name", "Count"),
			root:        newGroceries(),
			permutation: swapped,
			want: "" +
				"<table>\n" +
				"  <tr><th>Count</th><th>Name</th></tr>\n" +
				"  <tr><td rowspan='4'>3</td><td>Fruits</td></tr>\n" +
				"  <tr><td>Apple</td></tr>\n" +
				"  <tr><td>Banana</td></tr>\n" +
				"  <tr><td>Cherry</td></tr>\n" +
				"  <tr><td>2</td><td>Vegetables</td></tr>\n" +
				"</table>",
		},
		{
			name:   "escaped",
			writer: NewWriter(),
			root:   escaped,
			want: "" +
				"<table>\n" +
				"  <tr><td>&lt;b&gt;bold&lt;/b&gt;</td></tr>\n" +
				"</table>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := statictree.New(tt.root)
			require.NoError(t, err)

			var dest bytes.Buffer
			err = tt.writer.Write(ctx, &dest, tree, tt.permutation)
			require.NoError(t, err)
			require.Equal(t, tt.want, dest.String())
		})
	}
}

func TestWriter_WriteCanceled(t *testing.T) {
	tree, err := statictree.New(newGroceries())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewWriter().Write(ctx, new(bytes.Buffer), tree, nil)
	require.ErrorIs(t, err, context.Canceled)
}
