/*
Package agent holds the packages the toolbox protocols are built on. The
package is empty itself.

 aries      message factory, decodes the messages by their type
 comm       receiver and capability interfaces, processor, replies
 didcomm    message header, type URI parsing
 pltype     message type constants of all the families
 store      bolt store of the basic messages
 utils      settings, filters, nonces, base58 and version
*/
package agent
