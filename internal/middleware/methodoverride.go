package middleware

import "net/http"

// MethodOverride rewrites POSTs carrying a _method form field into the
// verb the field names, so plain HTML forms can drive the PUT and DELETE
// routes. Only PUT and DELETE are honoured.
//
// Must be installed on the underlying router before route matching; gin
// matches on the rewritten method.
func MethodOverride(router http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch r.PostFormValue("_method") {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		router.ServeHTTP(w, r)
	})
}
