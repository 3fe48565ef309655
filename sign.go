package wechatpay

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

const (
	// authorizationScheme APIv3 签名认证类型
	authorizationScheme = "WECHATPAY2-SHA256-RSA2048"
	// nonceLength 随机串长度
	nonceLength = 12
)

// generateNonce 生成随机串：12 字节随机数的 URL-safe Base64，截取前 12 个字符
func generateNonce() string {
	b := make([]byte, nonceLength)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)[:nonceLength]
}

// buildCanonicalURL 拼接参与签名的 URL：path 加上按调用方给定顺序编码的查询参数。
// 查询参数不重排，顺序稳定性由调用方负责。
func buildCanonicalURL(path string, query ...[2]string) string {
	if len(query) == 0 {
		return path
	}

	var builder strings.Builder
	builder.WriteString(path)
	for i, pair := range query {
		if i == 0 {
			builder.WriteString("?")
		} else {
			builder.WriteString("&")
		}
		builder.WriteString(url.QueryEscape(pair[0]))
		builder.WriteString("=")
		builder.WriteString(url.QueryEscape(pair[1]))
	}
	return builder.String()
}

// buildSignMessage 构造请求签名串：
//
//	METHOD\n
//	URL\n
//	时间戳\n
//	随机串\n
//	请求体\n
//
// GET 请求不携带请求体，即使调用方传入也强制置空。
func buildSignMessage(method, canonicalURL string, timestamp int64, nonce string, body []byte) string {
	if method == "GET" {
		body = nil
	}
	return fmt.Sprintf("%s\n%s\n%d\n%s\n%s\n", method, canonicalURL, timestamp, nonce, body)
}

// authorizationHeader 生成 Authorization 头。
// 字段顺序固定：mchid、nonce_str、timestamp、serial_no、signature。
func (c *Config) authorizationHeader(method, canonicalURL string, timestamp int64, nonce string, body []byte) (string, error) {
	message := buildSignMessage(method, canonicalURL, timestamp, nonce, body)

	signature, err := SignSHA256WithRSA(c.PrivateKey, []byte(message))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		`%s mchid="%s",nonce_str="%s",timestamp="%d",serial_no="%s",signature="%s"`,
		authorizationScheme, c.MchID, nonce, timestamp, c.SerialNumber,
		base64.StdEncoding.EncodeToString(signature),
	), nil
}
