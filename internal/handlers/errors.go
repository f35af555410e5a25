package handlers

import (
	"log"
	"net/http"
)

// respondWithError answers a failed request with a generic plain-text
// message. The underlying error goes to the server log only; hosts and
// visitors never see storage or email internals.
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}
