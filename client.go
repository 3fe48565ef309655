package wechatpay

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Client 微信支付 APIv3 客户端。
// 多个客户端可以共存，每个实例持有自己的配置与平台证书集合。
// 所有方法都可以并发调用。
type Client struct {
	store *configStore

	refreshing  chan struct{} // 同一时刻至多一个刷新在执行
	cronMu      sync.Mutex    // 保护 refreshCron 的启停
	refreshCron *cron.Cron    // 定时刷新任务，可能为 nil
}

// NewClient 创建客户端，配置在此处一次性校验
func NewClient(cfg Config) (*Client, error) {
	store, err := newConfigStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		store:      store,
		refreshing: make(chan struct{}, 1),
	}, nil
}

// Config 返回当前生效的配置快照，调用方不得修改
func (c *Client) Config() *Config {
	return c.store.snapshot()
}

// ReplaceConfig 校验后整体替换配置。
// 进行中的请求继续使用各自取到的旧快照。
func (c *Client) ReplaceConfig(cfg Config) error {
	return c.store.replace(cfg)
}

// UpdateConfig 在当前配置的副本上应用局部修改，重新校验后原子替换。
// 校验失败时配置保持不变并返回错误。
func (c *Client) UpdateConfig(apply func(*Config)) error {
	return c.store.update(apply)
}

// UpdateCertificates 整体替换平台证书集合
func (c *Client) UpdateCertificates(certs map[string]*rsa.PublicKey) {
	c.store.updateCertificates(certs)
}

// requestOptions 管线的按端点开关
type requestOptions struct {
	fillAppID       bool // 请求体缺 appid 时由配置补齐
	fillMchID       bool // 请求体缺 mchid 时由配置补齐
	fillNotifyURL   bool // 请求体缺 notify_url 时由配置补齐
	skipVerify      bool // 跳过应答验签（仅平台证书引导阶段使用）
	wechatpaySerial bool // 携带 Wechatpay-Serial 头（请求体含平台公钥加密字段时必须）
}

// do 执行一次出站请求：编码、签名、传输、验签。
// 返回原始应答体和本次请求使用的配置快照。
func (c *Client) do(ctx context.Context, method, canonicalURL string, body interface{}, opts requestOptions) ([]byte, *Config, error) {
	cfg := c.store.snapshot()
	respBody, err := c.doWithConfig(ctx, cfg, method, canonicalURL, body, opts)
	return respBody, cfg, err
}

// doWithConfig 在给定的配置快照上执行请求。
// 端点需要用配置拼 URL 时走这里，保证整个请求只消费一个快照。
func (c *Client) doWithConfig(ctx context.Context, cfg *Config, method, canonicalURL string, body interface{}, opts requestOptions) ([]byte, error) {
	bodyBytes, err := encodeBody(cfg, method, body, opts)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()
	nonce := generateNonce()
	authorization, err := cfg.authorizationHeader(method, canonicalURL, timestamp, nonce, bodyBytes)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	header.Set("Authorization", authorization)
	header.Set("Request-ID", uuid.NewString())
	if opts.wechatpaySerial {
		serial, ok := cfg.anyPlatformSerial()
		if !ok {
			return nil, ErrCertificateNotFound
		}
		header.Set(headerSerial, serial)
	}

	resp, err := cfg.Transport.Exchange(ctx, &Request{
		Method: method,
		URL:    "https://" + cfg.ServiceHost + canonicalURL,
		Header: header,
		Body:   bodyBytes,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TransportError{Err: err}
	}

	// 调用方已取消时不再做验签
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(cfg, resp)
	}

	if !opts.skipVerify {
		if err := cfg.verifySignature(resp.Header, resp.Body); err != nil {
			return nil, err
		}
	}

	return resp.Body, nil
}

// encodeBody 序列化请求体。GET 请求强制空体；POST 的 map 体按需补齐
// appid、mchid、notify_url 三个公共字段。
func encodeBody(cfg *Config, method string, body interface{}, opts requestOptions) ([]byte, error) {
	if method != http.MethodPost || body == nil {
		return nil, nil
	}

	if raw, ok := body.([]byte); ok {
		return raw, nil
	}

	if fields, ok := body.(map[string]interface{}); ok {
		if opts.fillAppID {
			if _, exists := fields["appid"]; !exists {
				fields["appid"] = cfg.AppID
			}
		}
		if opts.fillMchID {
			if _, exists := fields["mchid"]; !exists {
				fields["mchid"] = cfg.MchID
			}
		}
		if opts.fillNotifyURL {
			if _, exists := fields["notify_url"]; !exists {
				fields["notify_url"] = cfg.NotifyURL
			}
		}
	}

	encoded, err := cfg.Codec.Encode(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	return encoded, nil
}

// decodeAPIError 把非 2xx 应答转成 *APIError，原始报文原样保留
func decodeAPIError(cfg *Config, resp *Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
	// 尽力解析业务错误码，失败也不影响错误返回
	_ = cfg.Codec.Decode(resp.Body, apiErr)
	return apiErr
}

// decodeResponse 解析 2xx 应答体。验签通过且体为空视为空结果。
func decodeResponse(cfg *Config, data []byte, v interface{}) error {
	if len(data) == 0 || v == nil {
		return nil
	}
	if err := cfg.Codec.Decode(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return nil
}

// anyPlatformSerial 取一个平台证书序列号用于 Wechatpay-Serial 头。
// 为保证同一集合下取值稳定，选字典序最小的序列号。
func (c *Config) anyPlatformSerial() (string, bool) {
	var chosen string
	for serial := range c.PlatformCerts {
		if chosen == "" || serial < chosen {
			chosen = serial
		}
	}
	return chosen, chosen != ""
}

// EncryptSensitiveData 使用平台公钥加密敏感数据（身份证号、银行卡号、
// 真实姓名等），返回 Base64 密文。携带此类字段的请求必须同时设置
// Wechatpay-Serial 头，管线通过 requestOptions 处理。
func (c *Client) EncryptSensitiveData(plaintext string) (string, error) {
	cfg := c.store.snapshot()
	serial, ok := cfg.anyPlatformSerial()
	if !ok {
		return "", ErrCertificateNotFound
	}
	publicKey, _ := cfg.platformCert(serial)
	return EncryptOAEPWithPublicKey(publicKey, plaintext)
}

// VerifySignature 验证微信支付应答或回调的签名。
// 用于商户自建 HTTPS 服务收到回调时的安全校验。
func (c *Client) VerifySignature(header http.Header, body []byte) error {
	return c.store.snapshot().verifySignature(header, body)
}
