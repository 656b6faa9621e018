package protocol

// Method is the closed set of request methods this server understands.
// Any other token on the request line is rejected before a Method value
// is ever produced.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPut    Method = "PUT"
	MethodPost   Method = "POST"
	MethodHead   Method = "HEAD"
	MethodDelete Method = "DELETE"
)

// ParseMethod validates tok against the closed set, returning ok=false
// for anything else (including lowercase spellings - the wire format is
// case-sensitive here, same as header names).
func ParseMethod(tok string) (Method, bool) {
	switch Method(tok) {
	case MethodGet, MethodPut, MethodPost, MethodHead, MethodDelete:
		return Method(tok), true
	default:
		return "", false
	}
}
