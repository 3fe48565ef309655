package wechatpay

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubTransport 测试用传输桩
type stubTransport struct {
	exchange func(ctx context.Context, req *Request) (*Response, error)
}

func (s *stubTransport) Exchange(ctx context.Context, req *Request) (*Response, error) {
	return s.exchange(ctx, req)
}

// buildCertificatesBody 构造 /v3/certificates 的应答体：
// 平台证书 PEM 经 APIv3 密钥 AEAD 密封后放入 encrypt_certificate
func buildCertificatesBody(t *testing.T, platformKey *rsa.PrivateKey, serialNo string) ([]byte, string) {
	t.Helper()

	cert := generateTestCertificate(t, platformKey, 987654321)
	certPEM := string(certificatePEM(t, cert))

	const (
		nonce          = "AAAAAAAAAAAA"
		associatedData = "certificate"
	)
	ciphertext := sealAEAD(t, []byte(testAPIv3Key), nonce, associatedData, []byte(certPEM))

	body, err := json.Marshal(map[string]interface{}{
		"data": []map[string]interface{}{
			{
				"serial_no":      serialNo,
				"effective_time": "2024-01-01T00:00:00+08:00",
				"expire_time":    "2029-01-01T00:00:00+08:00",
				"encrypt_certificate": map[string]interface{}{
					"algorithm":       "AEAD_AES_256_GCM",
					"ciphertext":      ciphertext,
					"nonce":           nonce,
					"associated_data": associatedData,
				},
			},
		},
	})
	require.NoError(t, err)
	return body, certPEM
}

// signedHeaders 用平台私钥给应答体签名，生成 Wechatpay-* 应答头
func signedHeaders(t *testing.T, platformKey *rsa.PrivateKey, serial string, body []byte) http.Header {
	t.Helper()

	const (
		timestamp = "1700000099"
		nonce     = "RESPNONCE000"
	)
	signature := signBase64(t, platformKey, fmt.Sprintf("%s\n%s\n%s\n", timestamp, nonce, body))
	return notifyHeaders(serial, timestamp, nonce, signature)
}

func TestGetCertificates_Bootstrap(t *testing.T) {
	platformKey, _ := generateTestKeyPair(t)
	body, certPEM := buildCertificatesBody(t, platformKey, "PLAT1")

	cfg, _ := testConfig(t)
	cfg.Transport = &stubTransport{
		exchange: func(ctx context.Context, req *Request) (*Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "https://api.mch.weixin.qq.com/v3/certificates", req.URL)
			require.Empty(t, req.Body)
			// 引导阶段的应答不签名
			return &Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: body}, nil
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	// 证书集合为空时跳过验签，但仍然解密并返回完整列表
	records, err := client.GetCertificates(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "PLAT1", records[0].SerialNo)
	require.Equal(t, certPEM, records[0].Certificate)
}

func TestRefreshCertificates_BootstrapThenVerified(t *testing.T) {
	platformKey, platformPub := generateTestKeyPair(t)
	body, _ := buildCertificatesBody(t, platformKey, "PLAT1")

	var signResponses bool
	cfg, _ := testConfig(t)
	cfg.Transport = &stubTransport{
		exchange: func(ctx context.Context, req *Request) (*Response, error) {
			header := http.Header{}
			if signResponses {
				header = signedHeaders(t, platformKey, "PLAT1", body)
			}
			return &Response{StatusCode: http.StatusOK, Header: header, Body: body}, nil
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	// 第一次刷新：集合为空，走引导模式
	require.NoError(t, client.RefreshCertificates(context.Background()))

	key, ok := client.Config().platformCert("PLAT1")
	require.True(t, ok)
	require.Equal(t, platformPub.N, key.N)

	// 第二次刷新：集合非空，应答必须带合法签名
	signResponses = true
	require.NoError(t, client.RefreshCertificates(context.Background()))

	// 集合非空后未签名的应答被拒绝
	signResponses = false
	require.ErrorIs(t, client.RefreshCertificates(context.Background()), ErrMissingSignature)
}

func TestRefreshCertificates_FailureLeavesStoreUnchanged(t *testing.T) {
	_, platformPub := generateTestKeyPair(t)

	cfg, _ := testConfig(t)
	cfg.PlatformCerts = map[string]*rsa.PublicKey{"OLD1": platformPub}
	cfg.Transport = &stubTransport{
		exchange: func(ctx context.Context, req *Request) (*Response, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, client.RefreshCertificates(context.Background()), &transportErr)

	// 刷新失败不影响已有集合
	_, ok := client.Config().platformCert("OLD1")
	require.True(t, ok)
}

func TestRefreshCertificates_SingleFlight(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Transport = &stubTransport{
		exchange: func(ctx context.Context, req *Request) (*Response, error) {
			t.Fatal("transport should not be called while another refresh is in flight")
			return nil, nil
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	// 占住刷新令牌，模拟一个进行中的刷新
	client.refreshing <- struct{}{}
	defer func() { <-client.refreshing }()

	require.NoError(t, client.RefreshCertificates(context.Background()))
}

func TestStartCertificateRefresh_NoImmediateTick(t *testing.T) {
	// 启动只做排期：第一次刷新在第一个周期到期后执行
	cfg, _ := testConfig(t)
	cfg.Transport = &stubTransport{
		exchange: func(ctx context.Context, req *Request) (*Response, error) {
			t.Error("refresh must not run before the first interval elapses")
			return nil, fmt.Errorf("unexpected call")
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	require.NoError(t, client.StartCertificateRefresh(time.Hour))
	time.Sleep(50 * time.Millisecond)
	client.StopCertificateRefresh()
}

func TestStartCertificateRefresh_StopIsIdempotent(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Transport = &stubTransport{
		exchange: func(ctx context.Context, req *Request) (*Response, error) {
			return nil, fmt.Errorf("no server in test")
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	require.NoError(t, client.StartCertificateRefresh(0))
	// 重复启动会重排，不会泄漏旧排期
	require.NoError(t, client.StartCertificateRefresh(time.Hour))

	client.StopCertificateRefresh()
	client.StopCertificateRefresh()
}
