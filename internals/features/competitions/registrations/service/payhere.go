package service

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// PayHere status codes delivered on the notify callback.
const (
	PayHereStatusSuccess     = "2"
	PayHereStatusPending     = "0"
	PayHereStatusCanceled    = "-1"
	PayHereStatusFailed      = "-2"
	PayHereStatusChargedback = "-3"
)

func md5Upper(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// FormatAmount renders a fee the way PayHere expects it on the wire (two
// decimal places).
func FormatAmount(amount int) string {
	return fmt.Sprintf("%d.00", amount)
}

// GeneratePayHereHash computes the checkout request signature:
// MD5(merchantID ++ orderID ++ amount ++ currency ++ MD5(merchantSecret)),
// both digests uppercase hex. Field order and casing are part of the wire
// contract.
func GeneratePayHereHash(merchantID, orderID, amount, currency, merchantSecret string) string {
	return md5Upper(merchantID + orderID + amount + currency + md5Upper(merchantSecret))
}

// VerifyPayHereSignature recomputes the notify signature (the request
// construction with statusCode folded in before hashing) and compares it to
// md5sig. false means reject the payment, not an error to retry.
func VerifyPayHereSignature(merchantID, orderID, amount, currency, statusCode, merchantSecret, md5sig string) bool {
	expected := md5Upper(merchantID + orderID + amount + currency + statusCode + md5Upper(merchantSecret))
	return expected == strings.ToUpper(strings.TrimSpace(md5sig))
}
