package wechatpay

import (
	"encoding/base64"
	"fmt"
	"net/http"
)

// 微信支付应答/回调签名头，大小写不敏感
const (
	headerSerial    = "Wechatpay-Serial"
	headerTimestamp = "Wechatpay-Timestamp"
	headerNonce     = "Wechatpay-Nonce"
	headerSignature = "Wechatpay-Signature"
)

// buildVerifyMessage 构造验签名串：
//
//	应答时间戳\n
//	应答随机串\n
//	应答报文主体\n
//
// 注意与请求签名串不同：验签不包含 method 和 URL，这是协议规定，
// 两边不能对齐成同一个格式。
func buildVerifyMessage(timestamp, nonce string, body []byte) string {
	return fmt.Sprintf("%s\n%s\n%s\n", timestamp, nonce, body)
}

// verifySignature 用平台证书验证应答或回调的签名。
// 头名大小写不敏感：先把头名统一成规范形式再取值，
// 手工构造的非规范键（如全小写）同样可取到，回调方传入原始头即可。
func (c *Config) verifySignature(header http.Header, body []byte) error {
	normalized := make(http.Header, len(header))
	for name, values := range header {
		key := http.CanonicalHeaderKey(name)
		normalized[key] = append(normalized[key], values...)
	}

	serial := normalized.Get(headerSerial)
	timestamp := normalized.Get(headerTimestamp)
	nonce := normalized.Get(headerNonce)
	signature := normalized.Get(headerSignature)

	if serial == "" || timestamp == "" || nonce == "" || signature == "" {
		return ErrMissingSignature
	}

	publicKey, ok := c.platformCert(serial)
	if !ok {
		// 证书集合里没有这个序列号：可能尚未刷新平台证书，
		// 调用方刷新后重试即可，不按致命错误处理
		return ErrCertificateNotFound
	}

	signatureBytes, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	message := buildVerifyMessage(timestamp, nonce, body)
	return VerifySHA256WithRSA(publicKey, []byte(message), signatureBytes)
}
