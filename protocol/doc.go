/*
Package protocol is the namespace of the toolbox protocol families. Every
sub-package registers the handlers of its family to comm.Proc in init, so a
blank import is enough to enable a family. The plugins package imports all of
them.

The messages of the families are in the std packages. Each admin family
declares the Host interface it needs from the host agent. The handlers
assert the receiver to it, and a host which doesn't implement it gets a
not-supported problem report.
*/
package protocol
