package entity

// SyntheticResponse is the response handed back instead of performing a fetch.
type SyntheticResponse struct {
	StatusCode   int
	ReasonPhrase string
	Body         []byte
}

// BlockedResponse returns the fixed denial response: 403 "Blocked", empty body.
func BlockedResponse() SyntheticResponse {
	return SyntheticResponse{
		StatusCode:   BlockedStatusCode,
		ReasonPhrase: BlockedReasonPhrase,
	}
}

// Verdict is the gatekeeper decision for a single request.
// Response is only set when Blocked is true.
type Verdict struct {
	Blocked  bool
	Rule     *BlockRule
	Response *SyntheticResponse
}

// Allow is the verdict for requests that proceed unmodified.
func Allow() Verdict {
	return Verdict{}
}

// Deny builds a blocking verdict for the matching rule.
func Deny(rule *BlockRule) Verdict {
	resp := BlockedResponse()
	return Verdict{
		Blocked:  true,
		Rule:     rule,
		Response: &resp,
	}
}
