// Package parse parses tabkv text into records.
//
// # Usage
//
//	recs, err := parse.ParseString(`"host"="db1"` + "\n\t" + `"port"="5432"`)
//	if err != nil {
//	    return err
//	}
//
// Each non-blank, non-comment line yields one record. Comment lines
// (`#` in column 1) buffer up and attach to the next record. The parser
// checks syntax only; cross-record structure (depth continuity,
// duplicate keys) is checked by the tree loader.
//
// Errors are positioned: the returned error unwraps to one of the
// sentinel kinds in the token package and carries line, column and the
// offending character.
//
// # Related Packages
//
//   - github.com/tabkv/go-tabkv/tree - build the entry tree from records
//   - github.com/tabkv/go-tabkv/wire - binary form of a record stream
//   - github.com/tabkv/go-tabkv/encode - render a tree back to text
package parse
