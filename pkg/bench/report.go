package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/scottcagno/substr/pkg/util"
)

// WriteReport prints one block per fixture with a row per searcher.
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var last string
	for i, res := range results {
		if i == 0 || res.Fixture != last {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "Testing algorithms for text length %s and pattern %q (%s):\n",
				humanize.Comma(int64(res.TextLen)), res.Pattern, res.Fixture)
			fmt.Fprintln(tw, "\tSEARCHER\tFOUND\tINDEX\tTOTAL\tPER OP\t")
			last = res.Fixture
		}
		fmt.Fprintf(tw, "\t%s\t%t\t%d\t%s\t%s\t\n",
			res.Searcher, res.Found, res.Index, util.FormatSeconds(res.Elapsed), res.PerOp())
	}
	return tw.Flush()
}
