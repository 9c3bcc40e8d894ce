package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature вычисляет подпись платежа: hex(HMAC-SHA256(secret, order_id|payment_id))
func Signature(orderID, paymentID, keySecret string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подпись за постоянное время
func VerifySignature(orderID, paymentID, signature, keySecret string) bool {
	expected := Signature(orderID, paymentID, keySecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
