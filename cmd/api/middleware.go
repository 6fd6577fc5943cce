package main

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s handled in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
