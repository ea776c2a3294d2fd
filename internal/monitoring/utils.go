package monitoring

import (
	"strings"
)

// getSegmentName shortens a runtime function name into "package.Receiver.Method"
// for segment labels. The import path prefix and pointer-receiver decoration
// carry no signal in traces.
func getSegmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.NewReplacer("(*", "", "(", "", ")", "").Replace(name)
}
