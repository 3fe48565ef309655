package wechatpay

import (
	"context"
	"fmt"
	"net/http"
)

// 退款 API 端点
const (
	refundURL      = "/v3/refund/domestic/refunds"
	queryRefundURL = "/v3/refund/domestic/refunds/%s"
)

// RefundStatus 退款状态常量
const (
	RefundStatusSuccess    = "SUCCESS"    // 退款成功
	RefundStatusClosed     = "CLOSED"     // 退款关闭
	RefundStatusProcessing = "PROCESSING" // 退款处理中
	RefundStatusAbnormal   = "ABNORMAL"   // 退款异常
)

// RefundRequest 退款请求。
// OutTradeNo 和 TransactionID 二选一，优先使用 TransactionID。
type RefundRequest struct {
	OutTradeNo    string // 原商户订单号
	TransactionID string // 微信支付订单号
	OutRefundNo   string // 商户退款单号
	Reason        string // 退款原因（选填）
	RefundAmount  int64  // 退款金额（分）
	TotalAmount   int64  // 原订单金额（分）
}

// RefundAmountDetail 退款金额信息
type RefundAmountDetail struct {
	Total       int64 `json:"total"`
	Refund      int64 `json:"refund"`
	PayerTotal  int64 `json:"payer_total"`
	PayerRefund int64 `json:"payer_refund"`
}

// Refund 退款对象（申请/查询响应共用）
type Refund struct {
	RefundID            string             `json:"refund_id"`
	OutRefundNo         string             `json:"out_refund_no"`
	TransactionID       string             `json:"transaction_id"`
	OutTradeNo          string             `json:"out_trade_no"`
	Channel             string             `json:"channel"`
	UserReceivedAccount string             `json:"user_received_account"`
	SuccessTime         string             `json:"success_time,omitempty"`
	CreateTime          string             `json:"create_time"`
	Status              string             `json:"status"`
	Amount              RefundAmountDetail `json:"amount"`
}

// CreateRefund 申请退款。notify_url 缺省由配置补齐。
func (c *Client) CreateRefund(ctx context.Context, req *RefundRequest) (*Refund, error) {
	body := map[string]interface{}{
		"out_refund_no": req.OutRefundNo,
		"amount": map[string]interface{}{
			"refund":   req.RefundAmount,
			"total":    req.TotalAmount,
			"currency": "CNY",
		},
	}
	if req.TransactionID != "" {
		body["transaction_id"] = req.TransactionID
	} else {
		body["out_trade_no"] = req.OutTradeNo
	}
	if req.Reason != "" {
		body["reason"] = req.Reason
	}

	respBody, cfg, err := c.do(ctx, http.MethodPost, refundURL, body, requestOptions{
		fillNotifyURL: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create refund: %w", err)
	}

	var resp Refund
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QueryRefund 查询退款
func (c *Client) QueryRefund(ctx context.Context, outRefundNo string) (*Refund, error) {
	url := fmt.Sprintf(queryRefundURL, outRefundNo)

	respBody, cfg, err := c.do(ctx, http.MethodGet, url, nil, requestOptions{})
	if err != nil {
		return nil, fmt.Errorf("query refund: %w", err)
	}

	var resp Refund
	if err := decodeResponse(cfg, respBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
