package payments

import "gateway_bridge/internal/domain/entities"

// parsedResponse is the fixed field set every response parser extracts, whatever the
// raw reply looked like.
type parsedResponse struct {
	success         bool
	message         string
	authorizationID string
	avsCode         string
	cvvCode         string
	params          map[string]any
}

func successFrom(p parsedResponse) bool { return p.success }

func messageFrom(p parsedResponse) string { return p.message }

func avsResultFrom(p parsedResponse) *entities.AVSResult {
	return entities.NewAVSResult(p.avsCode)
}

// fraudReviewFrom is an extension point; no adapter reports fraud review yet.
func fraudReviewFrom(parsedResponse) *bool { return nil }

// newResponse builds the caller-facing Response. Absent codes stay nil and are never
// inferred.
func newResponse(p parsedResponse, test bool) entities.Response {
	r := entities.Response{
		Success:     successFrom(p),
		Message:     messageFrom(p),
		Params:      p.params,
		Test:        test,
		FraudReview: fraudReviewFrom(p),
		AVSResult:   avsResultFrom(p),
	}
	if p.authorizationID != "" {
		id := p.authorizationID
		r.Authorization = &id
	}
	if p.cvvCode != "" {
		cvv := p.cvvCode
		r.CVVResult = &cvv
	}
	return r
}
