package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var paginateDoc = `Applies the pagination to the JSON array read from the file or from stdin
and prints the result items with the ~page decorator.

With --stream the array is decoded one item at a time and the items after
the page are never read. The count of the remaining items isn't known then,
and it's left out of the ~page. Without --limit all the items are printed
and there is no ~page.

	findy-agent-toolbox paginate --limit 10 --offset 20 connections.json
	cat messages.json | findy-agent-toolbox paginate --limit 5 --stream
`

var errNotArray = errors.New("input is not a JSON array")

var paginateEnvs = map[string]string{
	"limit":  "LIMIT",
	"offset": "OFFSET",
	"stream": "STREAM",
}

var paginateFlags = struct {
	limit  int
	offset int
	stream bool
}{}

var paginateCmd = &cobra.Command{
	Use:   "paginate [file]",
	Short: "Applies the pagination to a JSON array",
	Long:  paginateDoc,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return BindEnvs(paginateEnvs, "PAGINATE")
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err, "paginate")

		p := try.To1(paginateArg(paginateFlags.limit, paginateFlags.offset))

		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f := try.To1(os.Open(args[0]))
			defer f.Close()
			in = f
		}

		var out pageOutput
		if paginateFlags.stream {
			s := try.To1(newJSONStream(in))
			out.Items, out.Page = decorator.ApplyOptional[json.RawMessage](p, decorator.NewStream[json.RawMessage](s))
			try.To(s.err)
		} else {
			var items []json.RawMessage
			try.To(json.NewDecoder(in).Decode(&items))
			out.Items, out.Page = decorator.ApplyOptional[json.RawMessage](p, decorator.Items[json.RawMessage](items))
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		try.To(enc.Encode(out))
		return nil
	},
}

type pageOutput struct {
	Items []json.RawMessage `json:"items"`
	decorator.WithPage
}

// paginateArg returns nil when the limit isn't given.
func paginateArg(limit, offset int) (*decorator.Paginate, error) {
	if limit < 0 {
		if offset != 0 {
			return nil, errors.New("--offset needs --limit")
		}
		return nil, nil
	}
	p := decorator.Paginate{Limit: limit, Offset: offset}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// jsonStream decodes the items of a JSON array one by one.
type jsonStream struct {
	dec *json.Decoder
	err error
}

func newJSONStream(r io.Reader) (s *jsonStream, err error) {
	defer err2.Handle(&err, "json stream")

	dec := json.NewDecoder(r)
	tok := try.To1(dec.Token())
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errNotArray
	}
	return &jsonStream{dec: dec}, nil
}

func (s *jsonStream) Next() (item json.RawMessage, ok bool) {
	if s.err != nil || !s.dec.More() {
		return nil, false
	}
	if s.err = s.dec.Decode(&item); s.err != nil {
		return nil, false
	}
	return item, true
}

func init() {
	flags := paginateCmd.Flags()
	flags.IntVar(&paginateFlags.limit, "limit", -1, flagInfo("max number of items, all if not given", "PAGINATE", paginateEnvs["limit"]))
	flags.IntVar(&paginateFlags.offset, "offset", 0, flagInfo("number of items to skip", "PAGINATE", paginateEnvs["offset"]))
	flags.BoolVar(&paginateFlags.stream, "stream", false, flagInfo("decode the input lazily", "PAGINATE", paginateEnvs["stream"]))
	rootCmd.AddCommand(paginateCmd)
}
