package wechatpay

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
)

// apiV3KeyLength APIv3 密钥长度，AEAD_AES_256_GCM 要求恰好 32 字节
const apiV3KeyLength = 32

// SignSHA256WithRSA 使用商户私钥做 SHA256-RSA2048 签名（PKCS#1 v1.5）。
// 返回原始签名字节，调用方自行 Base64。
func SignSHA256WithRSA(key *rsa.PrivateKey, message []byte) ([]byte, error) {
	if key == nil {
		return nil, &ConfigError{Field: "private_key", Reason: "merchant private key not loaded"}
	}
	hashed := sha256.Sum256(message)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return signature, nil
}

// VerifySHA256WithRSA 使用平台公钥验证签名。
// 验证不通过返回 ErrInvalidSignature。
func VerifySHA256WithRSA(publicKey *rsa.PublicKey, message, signature []byte) error {
	hashed := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		return ErrInvalidSignature
	}
	return nil
}

// DecryptAESGCM 使用 AES-256-GCM 解密（APIv3 平台证书与回调资源解密）。
// ciphertext 末尾 16 字节是认证标签，cipher.Open 按此布局处理。
func DecryptAESGCM(key []byte, nonce, associatedData string, ciphertext []byte) ([]byte, error) {
	if len(key) != apiV3KeyLength {
		return nil, &ConfigError{Field: "api_v3_key", Reason: "key must be exactly 32 bytes"}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCMWithNonceSize(block, len(nonce))
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	plaintext, err := aesGCM.Open(nil, []byte(nonce), ciphertext, []byte(associatedData))
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// EncryptOAEPWithPublicKey 使用平台公钥加密敏感字段（RSA-OAEP + SHA256），
// 返回 Base64 编码的密文
func EncryptOAEPWithPublicKey(publicKey *rsa.PublicKey, plaintext string) (string, error) {
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, []byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// ParsePrivateKeyPEM 解析 PEM 编码的 RSA 私钥，兼容 PKCS8 和 PKCS1 两种封装。
// 多段 PEM 输入时取第一段。
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block")
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		pkcs1Key, pkcs1Err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		return pkcs1Key, nil
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA private key")
	}

	return rsaKey, nil
}

// ParsePublicKeyPEM 解析 PEM 编码的 RSA 公钥（PKIX 格式）
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block")
	}

	pubInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaKey, ok := pubInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}

	return rsaKey, nil
}

// ParseCertificatePEM 解析 PEM 编码的 X.509 证书
func ParseCertificatePEM(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}

	return cert, nil
}

// PublicKeyOfCertificate 提取证书携带的 RSA 公钥
func PublicKeyOfCertificate(cert *x509.Certificate) (*rsa.PublicKey, error) {
	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate does not carry an RSA public key")
	}
	return publicKey, nil
}

// LoadPrivateKey 从 PEM 文件加载 RSA 私钥
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key file: %w", err)
	}
	return ParsePrivateKeyPEM(data)
}

// LoadPublicKey 从 PEM 文件加载 RSA 公钥
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key file: %w", err)
	}
	return ParsePublicKeyPEM(data)
}

// LoadCertificate 从 PEM 文件加载证书
func LoadCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read certificate file: %w", err)
	}
	return ParseCertificatePEM(data)
}
