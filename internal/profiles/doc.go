// Package profiles stores named derivation profiles in a YAML file.
//
// A profile records what identifies a password (site, login, length, counter
// and disabled character classes) so it can be regenerated later with only
// the master secret. Neither the secret nor any derived password is ever
// written to the file.
//
//	profiles:
//	  work:
//	    site: example.org
//	    login: contact@example.org
//	    length: 16
//	    counter: 1
//	    no_symbols: true
package profiles
