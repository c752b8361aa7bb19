package demo

import (
	"fmt"
	"net/http"
)

// StatusSimpleAlternate is the non-standard success code /simple answers with half the time.
const StatusSimpleAlternate = 220

const simpleTemplate = `# HELP simple_calculated using calculated monitor status
# TYPE simple_calculated counter
simple_calculated{service="simple-service-1",warning="80",critical="90",resource="AppGenerated",group="SpringBoot"} %d
# HELP simple_metric and passing in the status code
# TYPE simple_metric counter
simple_metric{service="simple-service-1",resource="AppGenerated",status="%s"} %d
`

var simpleStatuses = []string{"OK", "WARNING", "CRITICAL"}

// Simple renders the fixed exposition template with random values and picks the HTTP
// status of the reply.
func (g *Generator) Simple() (int, string) {
	code := http.StatusOK
	if g.intN(2) > 0 {
		code = StatusSimpleAlternate
	}
	body := fmt.Sprintf(simpleTemplate, g.intN(100), simpleStatuses[g.intN(len(simpleStatuses))], g.intN(100))
	return code, body
}

// Hello is the greeting of the /hello endpoint.
func Hello() string {
	return "Hello World!"
}
