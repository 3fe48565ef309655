package wechatpay

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

// 回调事件类型
const (
	EventTypeTransactionSuccess = "TRANSACTION.SUCCESS" // 支付成功
	EventTypeRefundSuccess      = "REFUND.SUCCESS"      // 退款成功
	EventTypeRefundAbnormal     = "REFUND.ABNORMAL"     // 退款异常
	EventTypeRefundClosed       = "REFUND.CLOSED"       // 退款关闭
)

const (
	// resourceAlgorithm 回调资源唯一支持的加密算法
	resourceAlgorithm = "AEAD_AES_256_GCM"
	// resourceTypeEncrypted 加密资源类型标识
	resourceTypeEncrypted = "encrypt-resource"
)

// EncryptedResource AEAD 密封的回调资源。
// ciphertext 是 Base64 的 密文||16字节认证标签。
type EncryptedResource struct {
	Algorithm      string `json:"algorithm"`
	Ciphertext     string `json:"ciphertext"`
	Nonce          string `json:"nonce"`
	AssociatedData string `json:"associated_data"`
	OriginalType   string `json:"original_type"`
}

// Notification 微信支付回调通知的外层结构
type Notification struct {
	ID           string            `json:"id"`
	CreateTime   time.Time         `json:"create_time"`
	EventType    string            `json:"event_type"`
	ResourceType string            `json:"resource_type"`
	Summary      string            `json:"summary"`
	Resource     EncryptedResource `json:"resource"`
}

// Event 解密后的通知事件：Resource 已替换为解密出的 JSON 对象
type Event struct {
	ID           string                 `json:"id"`
	CreateTime   time.Time              `json:"create_time"`
	EventType    string                 `json:"event_type"`
	ResourceType string                 `json:"resource_type"`
	Summary      string                 `json:"summary"`
	Resource     map[string]interface{} `json:"resource"`
}

// RefundNotificationResource 退款通知解密后的资源
type RefundNotificationResource struct {
	MchID               string             `json:"mchid"`
	OutTradeNo          string             `json:"out_trade_no"`
	TransactionID       string             `json:"transaction_id"`
	OutRefundNo         string             `json:"out_refund_no"`
	RefundID            string             `json:"refund_id"`
	RefundStatus        string             `json:"refund_status"`
	SuccessTime         string             `json:"success_time,omitempty"`
	UserReceivedAccount string             `json:"user_received_account"`
	Amount              RefundAmountDetail `json:"amount"`
}

// decryptResource 打开一个 AEAD 密封资源。
// 算法不是 AEAD_AES_256_GCM、Base64 解码失败或认证失败都按解密失败处理。
func (c *Config) decryptResource(resource *EncryptedResource) ([]byte, error) {
	if resource == nil {
		return nil, fmt.Errorf("%w: missing resource", ErrDecryptionFailed)
	}
	if resource.Algorithm != resourceAlgorithm {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrDecryptionFailed, resource.Algorithm)
	}
	if c.APIv3Key == "" {
		return nil, &ConfigError{Field: "api_v3_key", Reason: "required for AEAD decryption"}
	}

	ciphertext, err := base64.StdEncoding.DecodeString(resource.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrDecryptionFailed, err)
	}

	return DecryptAESGCM([]byte(c.APIv3Key), resource.Nonce, resource.AssociatedData, ciphertext)
}

// DecryptResource 解密一个 AEAD 密封资源，返回明文字节
func (c *Client) DecryptResource(resource *EncryptedResource) ([]byte, error) {
	return c.store.snapshot().decryptResource(resource)
}

// parseNotification 验签并解析回调外层结构
func (c *Client) parseNotification(header http.Header, body []byte) (*Notification, *Config, error) {
	cfg := c.store.snapshot()

	if err := cfg.verifySignature(header, body); err != nil {
		return nil, cfg, err
	}

	var notification Notification
	if err := cfg.Codec.Decode(body, &notification); err != nil {
		return nil, cfg, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return &notification, cfg, nil
}

// HandleNotification 验签、解析并解密一条回调通知。
// resource_type 为 encrypt-resource 时，Resource 被替换为解密出的 JSON 对象。
func (c *Client) HandleNotification(header http.Header, body []byte) (*Event, error) {
	notification, cfg, err := c.parseNotification(header, body)
	if err != nil {
		return nil, err
	}

	event := &Event{
		ID:           notification.ID,
		CreateTime:   notification.CreateTime,
		EventType:    notification.EventType,
		ResourceType: notification.ResourceType,
		Summary:      notification.Summary,
	}

	if notification.ResourceType != resourceTypeEncrypted {
		return event, nil
	}

	plaintext, err := cfg.decryptResource(&notification.Resource)
	if err != nil {
		return nil, err
	}

	if err := cfg.Codec.Decode(plaintext, &event.Resource); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return event, nil
}

// HandlePaymentNotification 处理支付结果通知：
// 验签、解析、解密，返回通知外层和解密出的订单对象
func (c *Client) HandlePaymentNotification(header http.Header, body []byte) (*Notification, *Transaction, error) {
	notification, cfg, err := c.parseNotification(header, body)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := cfg.decryptResource(&notification.Resource)
	if err != nil {
		return nil, nil, err
	}

	var transaction Transaction
	if err := cfg.Codec.Decode(plaintext, &transaction); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return notification, &transaction, nil
}

// HandleRefundNotification 处理退款结果通知：
// 验签、解析、解密，返回通知外层和解密出的退款资源
func (c *Client) HandleRefundNotification(header http.Header, body []byte) (*Notification, *RefundNotificationResource, error) {
	notification, cfg, err := c.parseNotification(header, body)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := cfg.decryptResource(&notification.Resource)
	if err != nil {
		return nil, nil, err
	}

	var resource RefundNotificationResource
	if err := cfg.Codec.Decode(plaintext, &resource); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return notification, &resource, nil
}
