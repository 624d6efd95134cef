// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds security-related HTTP headers to every response. The
// API only serves JSON, so nothing may be sniffed, framed or cached by
// intermediaries.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// JSON responses are never meant to be embedded.
		h.Set("X-Frame-Options", "DENY")

		h.Set("Referrer-Policy", "no-referrer")

		// Every request re-reads storage; responses must not be reused.
		h.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}
