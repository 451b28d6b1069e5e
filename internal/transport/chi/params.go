package chi

import (
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// boolParam is true when the parameter is present and not "false".
// "?siblings" and "?siblings=1" both enable it.
func boolParam(q url.Values, name string) bool {
	return q.Has(name) && q.Get(name) != "false"
}

// positiveParam returns a positive integer parameter, or 0 when it is absent,
// malformed or not positive.
func positiveParam(q url.Values, name string) int {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil || v == nil {
		return 0
	}
	if *v < 1 {
		return 0
	}
	return *v
}

// rangeParam parses a comma-separated list of integers such as
// "lengthRange=500,100". Any malformed member discards the whole list.
func rangeParam(q url.Values, name string) []int {
	var v *[]int
	if err := runtime.BindQueryParameter("form", false, false, name, q, &v); err != nil || v == nil {
		return nil
	}
	return *v
}

// pathParam undoes percent-encoding left in a route parameter.
func pathParam(raw string) string {
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}
