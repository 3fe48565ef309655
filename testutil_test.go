package wechatpay

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testAPIv3Key = "test_api_v3_key_32_bytes_long___"

// 生成测试用的 RSA 密钥对
func generateTestKeyPair(t *testing.T) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return privateKey, &privateKey.PublicKey
}

// 生成测试用的自签名证书
func generateTestCertificate(t *testing.T, privateKey *rsa.PrivateKey, serial int64) *x509.Certificate {
	t.Helper()

	template := &x509.Certificate{
		SerialNumber: big.NewInt(serial),
		Subject: pkix.Name{
			Organization: []string{"Test"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(5 * 365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		BasicConstraintsValid: true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &privateKey.PublicKey, privateKey)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(certDER)
	require.NoError(t, err)
	return cert
}

// 证书编码为 PEM
func certificatePEM(t *testing.T, cert *x509.Certificate) []byte {
	t.Helper()
	return pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: cert.Raw,
	})
}

// 私钥编码为 PKCS8 PEM
func privateKeyPEM(t *testing.T, privateKey *rsa.PrivateKey) []byte {
	t.Helper()
	keyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	})
}

// testConfig 构造一个可通过校验的配置。
// 商户私钥和证书在内存中生成，平台证书集合为空。
func testConfig(t *testing.T) (Config, *rsa.PrivateKey) {
	t.Helper()

	merchantKey, _ := generateTestKeyPair(t)
	merchantCert := generateTestCertificate(t, merchantKey, 1234567890)

	cfg := Config{
		AppID:        "wx_test_app_id",
		MchID:        "test_mch_id",
		NotifyURL:    "https://example.com/notify",
		APIv3Key:     testAPIv3Key,
		SerialNumber: "test_serial",
		PrivateKey:   merchantKey,
		Certificate:  merchantCert,
	}
	return cfg, merchantKey
}

// signBase64 用私钥签名并 Base64 编码
func signBase64(t *testing.T, privateKey *rsa.PrivateKey, message string) string {
	t.Helper()
	signature, err := SignSHA256WithRSA(privateKey, []byte(message))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(signature)
}

// sealAEAD 构造 AEAD 密封资源（密文||16字节标签，Base64 编码）
func sealAEAD(t *testing.T, key []byte, nonce, associatedData string, plaintext []byte) string {
	t.Helper()

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	aesGCM, err := cipher.NewGCMWithNonceSize(block, len(nonce))
	require.NoError(t, err)

	sealed := aesGCM.Seal(nil, []byte(nonce), plaintext, []byte(associatedData))
	return base64.StdEncoding.EncodeToString(sealed)
}

// decryptOAEP 用私钥解开 RSA-OAEP 密文
func decryptOAEP(privateKey *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	return rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, ciphertext, nil)
}
