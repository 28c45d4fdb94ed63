package analysis

import (
	"strings"

	"github.com/npillmayer/chevrogo/gast"
)

// AggregateError bundles every gast.DefinitionError produced by a single
// self-analysis run. It is what Analyze returns as its error when
// definition errors are fatal (the default, unless Config.DeferErrors is
// set).
type AggregateError struct {
	Errs []gast.DefinitionError
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	for i, er := range e.Errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(er.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors, each a *gast.DefinitionError, so
// callers can use errors.As to reach one and inspect its Kind.
func (e *AggregateError) Unwrap() []error {
	out := make([]error, len(e.Errs))
	for i := range e.Errs {
		out[i] = &e.Errs[i]
	}
	return out
}
