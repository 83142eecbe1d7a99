package entities

// Response is the normalized outcome of one gateway call. A decline is a Response with
// Success=false; system failures are returned as errors instead.
type Response struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Params        map[string]any `json:"params,omitempty"`
	Authorization *string        `json:"authorization,omitempty"`
	Test          bool           `json:"test"`
	FraudReview   *bool          `json:"fraud_review,omitempty"`
	AVSResult     *AVSResult     `json:"avs_result,omitempty"`
	CVVResult     *string        `json:"cvv_result,omitempty"`
}

// AuthorizationID returns the authorization token or "" when the gateway returned none.
func (r Response) AuthorizationID() string {
	if r.Authorization == nil {
		return ""
	}
	return *r.Authorization
}

// CVVCode returns the card verification result code or "".
func (r Response) CVVCode() string {
	if r.CVVResult == nil {
		return ""
	}
	return *r.CVVResult
}

// AVSResult is the address verification code returned by the card network.
type AVSResult struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

var avsMessages = map[string]string{
	"A": "Street address matches, but 5-digit and 9-digit postal code do not match.",
	"B": "Street address matches, but postal code not verified.",
	"C": "Street address and postal code do not match.",
	"D": "Street address and postal code match.",
	"E": "AVS data is invalid or AVS is not allowed for this card type.",
	"F": "Card member's name does not match, but billing postal code matches.",
	"G": "Non-U.S. issuing bank does not support AVS.",
	"H": "Card member's name does not match. Street address and postal code match.",
	"I": "Address not verified.",
	"J": "Card member's name, billing address, and postal code match.",
	"K": "Card member's name matches but billing address and billing postal code do not match.",
	"L": "Card member's name and billing postal code match, but billing address does not match.",
	"M": "Street address and postal code match.",
	"N": "Street address and postal code do not match.",
	"O": "Card member's name and billing address match, but billing postal code does not match.",
	"P": "Postal code matches, but street address not verified.",
	"Q": "Card member's name, billing address, and postal code match.",
	"R": "System unavailable.",
	"S": "U.S.-issuing bank does not support AVS.",
	"T": "Card member's name does not match, but street address matches.",
	"U": "Address information unavailable.",
	"V": "Card member's name, billing address, and billing postal code match.",
	"W": "Street address does not match, but 9-digit postal code matches.",
	"X": "Street address and 9-digit postal code match.",
	"Y": "Street address and 5-digit postal code match.",
	"Z": "Street address does not match, but 5-digit postal code matches.",
}

// NewAVSResult builds an AVSResult for a gateway code. An empty code yields nil.
func NewAVSResult(code string) *AVSResult {
	if code == "" {
		return nil
	}
	return &AVSResult{Code: code, Message: avsMessages[code]}
}
