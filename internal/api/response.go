package api

import (
	"fmt"
	"strings"
)

// VerifyReply is the parsed form of the verification service's
// plain-text reply.
type VerifyReply struct {
	Valid     bool
	ErrorCode string
}

// ParseReply parses the two-line reply body. The first non-empty line
// is the result: only the literal "true" counts as a pass, anything
// else fails. The following non-empty line, when present, is the error
// code. The two lines are independent fields; the reply format never
// encodes one inside the other.
//
// A body with no non-empty line at all fails with ErrUnexpectedFormat.
func ParseReply(body []byte) (*VerifyReply, error) {
	var fields []string
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			fields = append(fields, line)
		}
		if len(fields) == 2 {
			break
		}
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty reply body", ErrUnexpectedFormat)
	}

	reply := &VerifyReply{Valid: fields[0] == "true"}
	if len(fields) > 1 {
		reply.ErrorCode = fields[1]
	}
	return reply, nil
}
