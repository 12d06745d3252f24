package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// WriteError writes a StructuredError as a JSON error response. The error's
// code and context map directly onto the wire fields; the cause, when set,
// is appended to the message so clients see what was actually rejected.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	serr *errors.StructuredError, retryable bool) {

	message := serr.Message
	if serr.Cause != nil {
		message = fmt.Sprintf("%s: %v", serr.Message, serr.Cause)
	}

	errResp := ErrorResponse{
		Code:      string(serr.Code),
		Message:   message,
		Details:   serr.Context,
		RequestID: requestIDFrom(r.Context()),
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}
