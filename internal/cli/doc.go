// Package cli provides the gophpass command tree.
//
// Commands:
//
//	gen                   derive a password and print it on stdout
//	profile list          list stored profiles
//	profile show NAME     print a stored profile
//	profile save NAME     store the identifying flags under NAME
//	profile delete NAME   remove a stored profile
//	version               print build information
//
// The master secret comes from -p/--password or, when absent, from a prompt
// on the terminal with echo disabled. It is never logged or stored.
package cli
