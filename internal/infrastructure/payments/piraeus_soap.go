package payments

import (
	"encoding/xml"
	"errors"
	"regexp"
	"strings"

	"gateway_bridge/internal/domain/entities"
)

const (
	piraeusSoapNS = "http://www.w3.org/2003/05/soap-envelope"
	piraeusPayNS  = "http://piraeusbank.gr/paycenter"
	piraeusNS     = "http://piraeusbank.gr/paycenter/1.0"
)

// Request side. Prefixed names are written verbatim; encoding/xml escapes every text
// node and attribute value.

type piraeusEnvelope struct {
	XMLName xml.Name    `xml:"soap:Envelope"`
	SoapNS  string      `xml:"xmlns:soap,attr"`
	PayNS   string      `xml:"xmlns:pay,attr"`
	NS      string      `xml:"xmlns:ns,attr"`
	Header  struct{}    `xml:"soap:Header"`
	Body    piraeusBody `xml:"soap:Body"`
}

type piraeusBody struct {
	Request piraeusTransactionRequest `xml:"pay:ProcessTransaction>ns:TransactionRequest"`
}

type piraeusTransactionRequest struct {
	Header          piraeusRequestHeader   `xml:"ns:Header"`
	TransactionInfo piraeusTransactionInfo `xml:"ns:Body>ns:TransactionInfo"`
}

type piraeusRequestHeader struct {
	RequestType   piraeusRequestType  `xml:"ns:RequestType"`
	RequestMethod string              `xml:"ns:RequestMethod"`
	MerchantInfo  piraeusMerchantInfo `xml:"ns:MerchantInfo"`
}

type piraeusMerchantInfo struct {
	AcquirerID  string `xml:"ns:AcquirerID"`
	MerchantID  string `xml:"ns:MerchantID"`
	PosID       string `xml:"ns:PosID"`
	ChannelType string `xml:"ns:ChannelType"`
	User        string `xml:"ns:User"`
	Password    string `xml:"ns:Password"`
}

type piraeusTransactionInfo struct {
	TransactionReferenceID string           `xml:"ns:TransactionReferenceID,omitempty"`
	MerchantReference      string           `xml:"ns:MerchantReference,omitempty"`
	EntryType              string           `xml:"ns:EntryType,omitempty"`
	CurrencyCode           int              `xml:"ns:CurrencyCode"`
	Amount                 string           `xml:"ns:Amount"`
	ExpirePreauth          int              `xml:"ns:ExpirePreauth,omitempty"`
	CardInfo               *piraeusCardInfo `xml:"ns:CardInfo,omitempty"`
	AuthInfo               *piraeusAuthInfo `xml:"ns:AuthInfo,omitempty"`
}

type piraeusCardInfo struct {
	CardType        string `xml:"ns:CardType"`
	CardNumber      string `xml:"ns:CardNumber"`
	CardHolderName  string `xml:"ns:CardHolderName"`
	ExpirationMonth string `xml:"ns:ExpirationMonth"`
	ExpirationYear  string `xml:"ns:ExpirationYear"`
	Cvv2            string `xml:"ns:Cvv2"`
	Aid             string `xml:"ns:Aid"`
	Emv             string `xml:"ns:Emv"`
	PinBlock        string `xml:"ns:PinBlock"`
}

type piraeusAuthInfo struct {
	Cavv                  string `xml:"ns:Cavv"`
	Eci                   string `xml:"ns:Eci"`
	Xid                   string `xml:"ns:Xid"`
	Enrolled              string `xml:"ns:Enrolled"`
	PAResStatus           string `xml:"ns:PAResStatus"`
	SignatureVerification string `xml:"ns:SignatureVerification"`
}

func marshalPiraeusEnvelope(header piraeusRequestHeader, info piraeusTransactionInfo) ([]byte, error) {
	env := piraeusEnvelope{
		SoapNS: piraeusSoapNS,
		PayNS:  piraeusPayNS,
		NS:     piraeusNS,
		Body: piraeusBody{Request: piraeusTransactionRequest{
			Header:          header,
			TransactionInfo: info,
		}},
	}
	out, err := xml.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// Reply side.

var soapPrefix = regexp.MustCompile(`(</?)soap:`)

type piraeusReply struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Process *struct {
			Response *piraeusTransactionResponse `xml:"TransactionResponse"`
		} `xml:"ProcessTransactionResponse"`
	} `xml:"Body"`
}

type piraeusTransactionResponse struct {
	Header *struct {
		ResultCode         string `xml:"ResultCode"`
		ResultDescription  string `xml:"ResultDescription"`
		SupportReferenceID string `xml:"SupportReferenceID"`
	} `xml:"Header"`
	Info *struct {
		StatusFlag          string `xml:"StatusFlag"`
		ResponseCode        string `xml:"ResponseCode"`
		ResponseDescription string `xml:"ResponseDescription"`
		TransactionID       string `xml:"TransactionID"`
		ApprovalCode        string `xml:"ApprovalCode"`
		PackageNo           string `xml:"PackageNo"`
	} `xml:"Body>TransactionInfo"`
}

var errPiraeusMissingNode = errors.New("missing TransactionResponse header or transaction info")

func parsePiraeusReply(body []byte) (map[string]any, error) {
	body = soapPrefix.ReplaceAll(body, []byte("$1"))

	var reply piraeusReply
	if err := xml.Unmarshal(body, &reply); err != nil {
		return nil, &entities.ParseError{Gateway: piraeusName, Err: err}
	}
	if reply.Body.Process == nil || reply.Body.Process.Response == nil {
		return nil, &entities.ParseError{Gateway: piraeusName, Err: errPiraeusMissingNode}
	}
	tr := reply.Body.Process.Response
	if tr.Header == nil || tr.Info == nil {
		return nil, &entities.ParseError{Gateway: piraeusName, Err: errPiraeusMissingNode}
	}

	return map[string]any{
		"status":               tr.Info.StatusFlag,
		"result_description":   tr.Header.ResultDescription,
		"support_reference_id": tr.Header.SupportReferenceID,
		"response_description": tr.Info.ResponseDescription,
		"authorization_id":     tr.Info.TransactionID,
		"result_code":          tr.Header.ResultCode,
		"response_code":        tr.Info.ResponseCode,
		"approval_code":        tr.Info.ApprovalCode,
		"package_no":           tr.Info.PackageNo,
	}, nil
}

// piraeusFault is a SOAP fault returned alongside a 500. Both SOAP 1.2 (Code/Reason)
// and 1.1 (faultcode/faultstring) shapes are read.
type piraeusFault struct {
	Code   string
	Reason string
}

type piraeusFaultReply struct {
	XMLName xml.Name `xml:"Envelope"`
	Fault   *struct {
		Code        string `xml:"Code>Value"`
		Reason      string `xml:"Reason>Text"`
		FaultCode   string `xml:"faultcode"`
		FaultString string `xml:"faultstring"`
	} `xml:"Body>Fault"`
}

func parsePiraeusFault(body []byte) (piraeusFault, bool) {
	if len(body) == 0 {
		return piraeusFault{}, false
	}
	var reply piraeusFaultReply
	if err := xml.Unmarshal(soapPrefix.ReplaceAll(body, []byte("$1")), &reply); err != nil || reply.Fault == nil {
		return piraeusFault{}, false
	}
	f := piraeusFault{
		Code:   strings.TrimSpace(reply.Fault.Code),
		Reason: strings.TrimSpace(reply.Fault.Reason),
	}
	if f.Code == "" {
		f.Code = strings.TrimSpace(reply.Fault.FaultCode)
	}
	if f.Reason == "" {
		f.Reason = strings.TrimSpace(reply.Fault.FaultString)
	}
	return f, f.Code != "" || f.Reason != ""
}
