/*
Package main is the findy-agent-toolbox CLI. The toolbox itself is a set of
Go packages which a host agent imports to serve the Aries Toolbox admin
protocols for its admin connections:

	tb, err := plugins.Setup(plugins.Config{
		StoreFilename:    "toolbox.bolt",
		MessageRetention: 30 * 24 * time.Hour,
	})
	...
	err = tb.Handle(ctx, host, connID, data)

The host implements comm.Receiver and the capability interfaces of the
protocol families it supports, e.g. dids.Host. A request of a family the host
doesn't support is answered with a not-supported problem report.

All the list requests of the families accept the ~paginate decorator, and
their replies carry the ~page decorator, see std/decorator.

# About the CLI

The CLI prints the toolbox message types, applies the pagination to JSON
arrays and maintains the basic message store. Its flags can be given with
environment variables too, the prefix is FTBX:

	findy-agent-toolbox messages list --db toolbox.bolt --limit 10
	FTBX_MESSAGES_DB=toolbox.bolt findy-agent-toolbox messages list

Run the tree command to see all the commands.
*/
package main
