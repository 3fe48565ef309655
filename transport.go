package wechatpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request 一次出站 HTTPS 交换的输入
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response 一次出站 HTTPS 交换的结果
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport 抽象 HTTPS 传输能力，便于测试 mock 或替换连接池实现。
// 实现必须支持多 goroutine 并发调用。
type Transport interface {
	Exchange(ctx context.Context, req *Request) (*Response, error)
}

// JSONCodec 抽象 JSON 编解码能力
type JSONCodec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

// HTTPTransport 基于 net/http 的默认传输实现
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport 创建默认传输，timeout 为单请求超时时间
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Exchange 执行一次请求并读完响应体
func (t *HTTPTransport) Exchange(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for name, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// StdJSONCodec 基于 encoding/json 的默认编解码实现
type StdJSONCodec struct{}

// Encode 实现 JSONCodec 接口
func (StdJSONCodec) Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Decode 实现 JSONCodec 接口
func (StdJSONCodec) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

var (
	_ Transport = (*HTTPTransport)(nil)
	_ JSONCodec = StdJSONCodec{}
)
