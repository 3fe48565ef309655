package wechatpay

import (
	"context"
	"net/http"
	"time"
)

// PaymentService 微信支付客户端接口，便于测试mock
type PaymentService interface {
	// CreateNativeOrder 创建 Native 订单（二维码支付）
	CreateNativeOrder(ctx context.Context, req *NativeOrderRequest) (*NativeOrderResponse, error)

	// CreateJSAPIOrder 创建 JSAPI 订单（小程序支付）
	CreateJSAPIOrder(ctx context.Context, req *JSAPIOrderRequest) (*JSAPIOrderResponse, *MiniappPayParams, error)

	// CreateH5Order 创建 H5 订单（移动端浏览器支付）
	CreateH5Order(ctx context.Context, req *H5OrderRequest) (*H5OrderResponse, error)

	// QueryOrderByOutTradeNo 根据商户订单号查询订单
	QueryOrderByOutTradeNo(ctx context.Context, outTradeNo string) (*Transaction, error)

	// QueryOrderByTransactionID 根据微信支付订单号查询订单
	QueryOrderByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)

	// CloseOrder 关闭订单
	CloseOrder(ctx context.Context, outTradeNo string) error

	// CreateRefund 申请退款
	CreateRefund(ctx context.Context, req *RefundRequest) (*Refund, error)

	// QueryRefund 查询退款
	QueryRefund(ctx context.Context, outRefundNo string) (*Refund, error)

	// GetCertificates 下载并解密平台证书列表
	GetCertificates(ctx context.Context, verify bool) ([]CertificateRecord, error)

	// RefreshCertificates 手动触发一次平台证书刷新
	RefreshCertificates(ctx context.Context) error

	// StartCertificateRefresh 启动平台证书定时刷新
	StartCertificateRefresh(interval time.Duration) error

	// StopCertificateRefresh 停止平台证书定时刷新
	StopCertificateRefresh()

	// MiniappPayParams 为已有 prepay_id 生成小程序调起支付的参数
	MiniappPayParams(prepayID string) (*MiniappPayParams, error)

	// VerifySignature 验证微信支付应答或回调的签名
	VerifySignature(header http.Header, body []byte) error

	// DecryptResource 解密一个 AEAD 密封资源
	DecryptResource(resource *EncryptedResource) ([]byte, error)

	// EncryptSensitiveData 使用平台公钥加密敏感数据
	EncryptSensitiveData(plaintext string) (string, error)

	// HandleNotification 验签、解析并解密一条回调通知
	HandleNotification(header http.Header, body []byte) (*Event, error)

	// HandlePaymentNotification 处理支付结果通知
	HandlePaymentNotification(header http.Header, body []byte) (*Notification, *Transaction, error)

	// HandleRefundNotification 处理退款结果通知
	HandleRefundNotification(header http.Header, body []byte) (*Notification, *RefundNotificationResource, error)
}

// 确保 *Client 实现了 PaymentService 接口
var _ PaymentService = (*Client)(nil)
