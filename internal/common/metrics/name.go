package metrics

import "strings"

// promNameReplacer maps characters that appear in service and broker names
// (go-remit, remit.bank.statements) onto the underscore prometheus expects.
var promNameReplacer = strings.NewReplacer(
	" ", "_",
	".", "_",
	"-", "_",
	"=", "_",
	"/", "_",
)

// BuildFQName joins name parts into a prometheus-safe fully qualified name.
func BuildFQName(parts ...string) string {
	return promNameReplacer.Replace(strings.Join(parts, "_"))
}
