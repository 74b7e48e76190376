// Package facts prints what almanac knows about one day.
package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/printers"
)

type Facts struct {
	On   calendar.Date
	JSON bool
	Out  io.Writer
}

func (f *Facts) Do(_ context.Context) error {
	out := f.Out
	if out == nil {
		out = color.Output
	}
	facts := calendar.ComputeFacts(f.On)

	if f.JSON {
		b, err := json.Marshal(facts)
		if err != nil {
			return errors.Wrap(err, "encoding facts")
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.Facts(facts)
	return nil
}
