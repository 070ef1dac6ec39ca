package payment

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"virtualmerchant-gateway/internal/domain"
)

// Response is one flat key=value record as the processor returns it.
type Response map[string]string

// parseResponses splits the processor's ASCII reply into records. A record is
// a run of key=value lines; blank lines separate records in multi-record
// replies (batch queries). Anything else is a malformed response.
func parseResponses(body []byte) ([]Response, error) {
	var records []Response
	cur := Response{}

	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(cur) > 0 {
				records = append(records, cur)
				cur = Response{}
			}
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %q", domain.ErrMalformedResponse, line)
		}
		cur[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(cur) > 0 {
		records = append(records, cur)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty body", domain.ErrMalformedResponse)
	}
	return records, nil
}
