package wechatpay

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

// 微信支付下单/订单 API 端点
const (
	nativeOrderURL       = "/v3/pay/transactions/native"
	jsapiOrderURL        = "/v3/pay/transactions/jsapi"
	h5OrderURL           = "/v3/pay/transactions/h5"
	queryOrderByOutNoURL = "/v3/pay/transactions/out-trade-no/%s"
	queryOrderByTxIDURL  = "/v3/pay/transactions/id/%s"
	closeOrderURL        = "/v3/pay/transactions/out-trade-no/%s/close"
)

// TradeState 交易状态常量
const (
	TradeStateSuccess    = "SUCCESS"    // 支付成功
	TradeStateRefund     = "REFUND"     // 转入退款
	TradeStateNotPay     = "NOTPAY"     // 未支付
	TradeStateClosed     = "CLOSED"     // 已关闭
	TradeStateRevoked    = "REVOKED"    // 已撤销（仅付款码支付）
	TradeStateUserPaying = "USERPAYING" // 用户支付中（仅付款码支付）
	TradeStatePayError   = "PAYERROR"   // 支付失败
)

// ==================== Native 下单 ====================

// NativeOrderRequest Native 下单请求（扫码支付）
type NativeOrderRequest struct {
	OutTradeNo    string    // 商户订单号
	Description   string    // 商品描述
	TotalAmount   int64     // 订单金额（分）
	ExpireTime    time.Time // 订单失效时间（选填）
	Attach        string    // 商户数据包（选填，支付成功后会原样返回）
	PayerClientIP string    // 用户终端IP（选填，用于风控）
}

// NativeOrderResponse Native 下单响应
type NativeOrderResponse struct {
	CodeURL string `json:"code_url"`
}

// CreateNativeOrder 创建 Native 订单（二维码支付）。
// appid、mchid、notify_url 缺省由配置补齐。
func (c *Client) CreateNativeOrder(ctx context.Context, req *NativeOrderRequest) (*NativeOrderResponse, error) {
	body := map[string]interface{}{
		"description":  req.Description,
		"out_trade_no": req.OutTradeNo,
		"amount": map[string]interface{}{
			"total":    req.TotalAmount,
			"currency": "CNY",
		},
	}
	if !req.ExpireTime.IsZero() {
		body["time_expire"] = req.ExpireTime.Format(time.RFC3339)
	}
	if req.Attach != "" {
		body["attach"] = req.Attach
	}
	if req.PayerClientIP != "" {
		body["scene_info"] = map[string]interface{}{
			"payer_client_ip": req.PayerClientIP,
		}
	}

	respBody, cfg, err := c.do(ctx, http.MethodPost, nativeOrderURL, body, requestOptions{
		fillAppID:     true,
		fillMchID:     true,
		fillNotifyURL: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create native order: %w", err)
	}

	var resp NativeOrderResponse
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ==================== JSAPI 下单 ====================

// JSAPIOrderRequest JSAPI 下单请求（小程序/公众号支付）
type JSAPIOrderRequest struct {
	OutTradeNo    string    // 商户订单号
	Description   string    // 商品描述
	TotalAmount   int64     // 订单金额（分）
	OpenID        string    // 用户 OpenID
	ExpireTime    time.Time // 订单失效时间（选填）
	Attach        string    // 商户数据包（选填，建议传递 order_id，支付成功后会原样返回）
	PayerClientIP string    // 用户终端IP（选填但强烈建议，用于风控）
}

// JSAPIOrderResponse JSAPI 下单响应
type JSAPIOrderResponse struct {
	PrepayID string `json:"prepay_id"`
}

// CreateJSAPIOrder 创建 JSAPI 订单（小程序支付），
// 同时返回小程序调起支付所需的参数
func (c *Client) CreateJSAPIOrder(ctx context.Context, req *JSAPIOrderRequest) (*JSAPIOrderResponse, *MiniappPayParams, error) {
	body := map[string]interface{}{
		"description":  req.Description,
		"out_trade_no": req.OutTradeNo,
		"amount": map[string]interface{}{
			"total":    req.TotalAmount,
			"currency": "CNY",
		},
		"payer": map[string]interface{}{
			"openid": req.OpenID,
		},
	}
	if !req.ExpireTime.IsZero() {
		body["time_expire"] = req.ExpireTime.Format(time.RFC3339)
	}
	if req.Attach != "" {
		body["attach"] = req.Attach
	}
	if req.PayerClientIP != "" {
		body["scene_info"] = map[string]interface{}{
			"payer_client_ip": req.PayerClientIP,
		}
	}

	respBody, cfg, err := c.do(ctx, http.MethodPost, jsapiOrderURL, body, requestOptions{
		fillAppID:     true,
		fillMchID:     true,
		fillNotifyURL: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create jsapi order: %w", err)
	}

	var resp JSAPIOrderResponse
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, nil, err
	}

	payParams, err := miniappPayParams(cfg, resp.PrepayID, time.Now().Unix(), generateNonce())
	if err != nil {
		return nil, nil, fmt.Errorf("generate pay params: %w", err)
	}

	return &resp, payParams, nil
}

// ==================== H5 下单 ====================

// H5OrderRequest H5 下单请求（移动端网页支付）
type H5OrderRequest struct {
	OutTradeNo    string    // 商户订单号
	Description   string    // 商品描述
	TotalAmount   int64     // 订单金额（分）
	PayerClientIP string    // 用户终端IP（H5 必填）
	H5Type        string    // 场景类型，缺省 Wap
	ExpireTime    time.Time // 订单失效时间（选填）
	Attach        string    // 商户数据包（选填）
}

// H5OrderResponse H5 下单响应
type H5OrderResponse struct {
	H5URL string `json:"h5_url"`
}

// CreateH5Order 创建 H5 订单（移动端浏览器支付）
func (c *Client) CreateH5Order(ctx context.Context, req *H5OrderRequest) (*H5OrderResponse, error) {
	h5Type := req.H5Type
	if h5Type == "" {
		h5Type = "Wap"
	}

	body := map[string]interface{}{
		"description":  req.Description,
		"out_trade_no": req.OutTradeNo,
		"amount": map[string]interface{}{
			"total":    req.TotalAmount,
			"currency": "CNY",
		},
		"scene_info": map[string]interface{}{
			"payer_client_ip": req.PayerClientIP,
			"h5_info": map[string]interface{}{
				"type": h5Type,
			},
		},
	}
	if !req.ExpireTime.IsZero() {
		body["time_expire"] = req.ExpireTime.Format(time.RFC3339)
	}
	if req.Attach != "" {
		body["attach"] = req.Attach
	}

	respBody, cfg, err := c.do(ctx, http.MethodPost, h5OrderURL, body, requestOptions{
		fillAppID:     true,
		fillMchID:     true,
		fillNotifyURL: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create h5 order: %w", err)
	}

	var resp H5OrderResponse
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ==================== 查询订单 ====================

// TransactionPayer 支付者信息
type TransactionPayer struct {
	OpenID string `json:"openid"`
}

// TransactionAmount 订单金额信息
type TransactionAmount struct {
	Total         int64  `json:"total"`
	PayerTotal    int64  `json:"payer_total"`
	Currency      string `json:"currency"`
	PayerCurrency string `json:"payer_currency"`
}

// Transaction 订单对象（查询响应和支付通知共用）
type Transaction struct {
	AppID          string            `json:"appid"`
	MchID          string            `json:"mchid"`
	OutTradeNo     string            `json:"out_trade_no"`
	TransactionID  string            `json:"transaction_id"`
	TradeType      string            `json:"trade_type"`
	TradeState     string            `json:"trade_state"`
	TradeStateDesc string            `json:"trade_state_desc"`
	BankType       string            `json:"bank_type"`
	Attach         string            `json:"attach"`
	SuccessTime    string            `json:"success_time"`
	Payer          TransactionPayer  `json:"payer"`
	Amount         TransactionAmount `json:"amount"`
}

// QueryOrderByOutTradeNo 根据商户订单号查询订单。
// mchid 作为查询参数参与签名。
func (c *Client) QueryOrderByOutTradeNo(ctx context.Context, outTradeNo string) (*Transaction, error) {
	cfg := c.store.snapshot()
	url := buildCanonicalURL(fmt.Sprintf(queryOrderByOutNoURL, outTradeNo), [2]string{"mchid", cfg.MchID})

	respBody, err := c.doWithConfig(ctx, cfg, http.MethodGet, url, nil, requestOptions{})
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	var resp Transaction
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QueryOrderByTransactionID 根据微信支付订单号查询订单
func (c *Client) QueryOrderByTransactionID(ctx context.Context, transactionID string) (*Transaction, error) {
	cfg := c.store.snapshot()
	url := buildCanonicalURL(fmt.Sprintf(queryOrderByTxIDURL, transactionID), [2]string{"mchid", cfg.MchID})

	respBody, err := c.doWithConfig(ctx, cfg, http.MethodGet, url, nil, requestOptions{})
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	var resp Transaction
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ==================== 关闭订单 ====================

// CloseOrder 关闭订单。请求体只有 mchid 一个字段；
// 微信返回 204 空体即为成功。
func (c *Client) CloseOrder(ctx context.Context, outTradeNo string) error {
	url := fmt.Sprintf(closeOrderURL, outTradeNo)

	_, _, err := c.do(ctx, http.MethodPost, url, map[string]interface{}{}, requestOptions{
		fillMchID: true,
	})
	if err != nil {
		return fmt.Errorf("close order: %w", err)
	}
	return nil
}

// ==================== 小程序调起支付 ====================

// MiniappPayParams 小程序调起支付所需参数。
// 字段名与小程序 wx.requestPayment 的入参保持一致（appId 驼峰写法）。
type MiniappPayParams struct {
	AppID     string `json:"appId"`
	TimeStamp string `json:"timeStamp"`
	NonceStr  string `json:"nonceStr"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
}

// MiniappPayParams 为已有 prepay_id 生成小程序调起支付的参数。
// 配置有效时不会失败。
func (c *Client) MiniappPayParams(prepayID string) (*MiniappPayParams, error) {
	return miniappPayParams(c.store.snapshot(), prepayID, time.Now().Unix(), generateNonce())
}

// miniappPayParams 构造调起支付参数并签名。
// 签名串：appId\n时间戳\n随机串\npackage\n
func miniappPayParams(cfg *Config, prepayID string, timestamp int64, nonce string) (*MiniappPayParams, error) {
	packageStr := "prepay_id=" + prepayID
	timeStamp := fmt.Sprintf("%d", timestamp)

	signStr := fmt.Sprintf("%s\n%s\n%s\n%s\n", cfg.AppID, timeStamp, nonce, packageStr)
	signature, err := SignSHA256WithRSA(cfg.PrivateKey, []byte(signStr))
	if err != nil {
		return nil, fmt.Errorf("sign pay params: %w", err)
	}

	return &MiniappPayParams{
		AppID:     cfg.AppID,
		TimeStamp: timeStamp,
		NonceStr:  nonce,
		Package:   packageStr,
		SignType:  "RSA",
		PaySign:   base64.StdEncoding.EncodeToString(signature),
	}, nil
}
