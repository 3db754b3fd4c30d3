package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/findy-network/findy-agent-toolbox/agent/store"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Parent command for the basic message store",
	Long: `
Parent command for the basic message store of the toolbox. The host agent
must not be running when the store file is operated, bolt allows only one
process to open it.
	`,
	Run: func(cmd *cobra.Command, _ []string) {
		SubCmdNeeded(cmd)
	},
}

var messagesEnvs = map[string]string{
	"db":     "DB",
	"conn":   "CONN",
	"limit":  "LIMIT",
	"offset": "OFFSET",
}

var messagesFlags = struct {
	db     string
	connID string
	limit  int
	offset int
}{}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the stored basic messages, newest first",
	Long: `
Lists the stored basic messages, newest first. Without --conn the messages of
all the connections are listed.

Example
	findy-agent-toolbox messages list --db toolbox.bolt --conn my-conn-id --limit 10
	`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return BindEnvs(messagesEnvs, "MESSAGES")
	},
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err, "list messages")

		p := try.To1(paginateArg(messagesFlags.limit, messagesFlags.offset))
		s := try.To1(store.Open(messagesFlags.db))
		defer s.Close()
		c := try.To1(s.Cursor(messagesFlags.connID))
		defer c.Close()

		records, page := decorator.ApplyOptional[store.Record](p, decorator.NewStream[store.Record](c))
		w := cmd.OutOrStdout()
		for _, r := range records {
			try.To1(fmt.Fprintf(w, "%s %-8s %s %s: %s\n",
				r.SentTime.Format(time.RFC3339), r.State, r.ConnID, r.MsgID, r.Content))
		}
		if page != nil {
			try.To1(fmt.Fprintln(w, "~page", page))
		}
		return nil
	},
}

var messagesDeleteCmd = &cobra.Command{
	Use:   "delete [message-id...]",
	Short: "Deletes the basic messages of the connection",
	Long: `
Deletes the listed basic messages of the connection, or all of its messages
when no message ids are given. With --dry-run the messages are only counted.

Example
	findy-agent-toolbox messages delete --db toolbox.bolt --conn my-conn-id
	`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return BindEnvs(messagesEnvs, "MESSAGES")
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err, "delete messages")

		if messagesFlags.connID == "" {
			return errors.New("--conn is required")
		}
		s := try.To1(store.Open(messagesFlags.db))
		defer s.Close()

		var n int
		if rootFlags.dryRun {
			n = try.To1(countMessages(s, messagesFlags.connID, args))
		} else {
			n = try.To1(s.Delete(messagesFlags.connID, args...))
		}
		try.To1(fmt.Fprintln(cmd.OutOrStdout(), "deleted:", n))
		return nil
	},
}

func countMessages(s *store.Store, connID string, msgIDs []string) (n int, err error) {
	defer err2.Handle(&err)

	c := try.To1(s.Cursor(connID))
	defer c.Close()
	ids := make(map[string]bool, len(msgIDs))
	for _, id := range msgIDs {
		ids[id] = true
	}
	for r, ok := c.Next(); ok; r, ok = c.Next() {
		if len(ids) == 0 || ids[r.MsgID] {
			n++
		}
	}
	return n, nil
}

func init() {
	pflags := messagesCmd.PersistentFlags()
	pflags.StringVar(&messagesFlags.db, "db", utils.DefaultStoreFilename, flagInfo("basic message store file", "MESSAGES", messagesEnvs["db"]))
	pflags.StringVar(&messagesFlags.connID, "conn", "", flagInfo("connection id", "MESSAGES", messagesEnvs["conn"]))

	flags := messagesListCmd.Flags()
	flags.IntVar(&messagesFlags.limit, "limit", -1, flagInfo("max number of messages, all if not given", "MESSAGES", messagesEnvs["limit"]))
	flags.IntVar(&messagesFlags.offset, "offset", 0, flagInfo("number of messages to skip", "MESSAGES", messagesEnvs["offset"]))

	messagesCmd.AddCommand(messagesListCmd)
	messagesCmd.AddCommand(messagesDeleteCmd)
	rootCmd.AddCommand(messagesCmd)
}
