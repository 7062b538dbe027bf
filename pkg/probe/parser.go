// pkg/probe/parser.go
package probe

import "strings"

// Flag prefixes understood by Extract
const (
	PrefixInclude    = "-I"
	PrefixLibraryDir = "-L"
	PrefixLibrary    = "-l"
)

// Extract returns the values of all whitespace-separated tokens in line
// that start with prefix, in the order they appear. Other tokens are
// dropped.
//
//	Extract("-I/usr/include/igraph -pthread", "-I") // ["/usr/include/igraph"]
func Extract(line, prefix string) []string {
	values := []string{}
	for _, token := range strings.Fields(line) {
		if strings.HasPrefix(token, prefix) {
			values = append(values, token[len(prefix):])
		}
	}
	return values
}
