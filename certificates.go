package wechatpay

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	certificatesURL = "/v3/certificates"

	// defaultRefreshInterval 平台证书默认刷新周期
	defaultRefreshInterval = 24 * time.Hour
	// refreshTimeout 单次刷新的超时上限
	refreshTimeout = time.Minute
)

// CertificateRecord 平台证书下载接口返回的单条记录。
// EncryptCertificate 是 AEAD 密封的 PEM，解密后填入 Certificate 字段。
type CertificateRecord struct {
	SerialNo           string             `json:"serial_no"`
	EffectiveTime      string             `json:"effective_time"`
	ExpireTime         string             `json:"expire_time"`
	EncryptCertificate *EncryptedResource `json:"encrypt_certificate"`
	Certificate        string             `json:"certificate,omitempty"`
}

type certificatesResponse struct {
	Data []CertificateRecord `json:"data"`
}

// GetCertificates 下载并解密平台证书列表。
//
// verify 为 false 时跳过应答验签，仅用于证书集合为空的引导阶段；
// 两种模式下都会解密证书并返回完整列表。
func (c *Client) GetCertificates(ctx context.Context, verify bool) ([]CertificateRecord, error) {
	body, cfg, err := c.do(ctx, http.MethodGet, certificatesURL, nil, requestOptions{
		skipVerify: !verify,
	})
	if err != nil {
		return nil, fmt.Errorf("get certificates: %w", err)
	}

	var resp certificatesResponse
	if err := decodeResponse(cfg, body, &resp); err != nil {
		return nil, err
	}

	for i := range resp.Data {
		plaintext, err := cfg.decryptResource(resp.Data[i].EncryptCertificate)
		if err != nil {
			return nil, fmt.Errorf("decrypt certificate %s: %w", resp.Data[i].SerialNo, err)
		}
		resp.Data[i].Certificate = string(plaintext)
	}

	return resp.Data, nil
}

// RefreshCertificates 手动触发一次平台证书刷新。
// 证书集合为空时以引导模式下载（跳过验签），否则正常验签。
// 成功后整体替换证书集合。同一时刻至多一个刷新在执行，
// 已有刷新在跑时直接返回。
func (c *Client) RefreshCertificates(ctx context.Context) error {
	select {
	case c.refreshing <- struct{}{}:
		defer func() { <-c.refreshing }()
	default:
		log.Debug().Msg("certificate refresh already in progress, skip")
		return nil
	}

	cfg := c.store.snapshot()
	verify := len(cfg.PlatformCerts) > 0

	records, err := c.GetCertificates(ctx, verify)
	if err != nil {
		return err
	}

	certs := make(map[string]*rsa.PublicKey, len(records))
	for _, record := range records {
		cert, err := ParseCertificatePEM([]byte(record.Certificate))
		if err != nil {
			return fmt.Errorf("parse certificate %s: %w", record.SerialNo, err)
		}
		publicKey, err := PublicKeyOfCertificate(cert)
		if err != nil {
			return fmt.Errorf("certificate %s: %w", record.SerialNo, err)
		}
		certs[record.SerialNo] = publicKey
	}

	if len(certs) == 0 {
		return fmt.Errorf("refresh certificates: empty certificate list")
	}

	c.store.updateCertificates(certs)
	log.Info().Int("count", len(certs)).Msg("platform certificates refreshed")
	return nil
}

// StartCertificateRefresh 启动定时刷新任务，interval 为 0 时取默认一天。
// 重复调用会取消之前的排期并按新周期重新排。第一个周期到期才执行
// 首次刷新；需要立即引导空证书集合时，调用方先执行一次
// RefreshCertificates。
func (c *Client) StartCertificateRefresh(interval time.Duration) error {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	c.cronMu.Lock()
	defer c.cronMu.Unlock()

	if c.refreshCron != nil {
		c.refreshCron.Stop()
		c.refreshCron = nil
	}

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		// 刷新失败只记录日志，排期保留，短暂故障下个周期自愈
		if err := c.RefreshCertificates(ctx); err != nil {
			log.Error().Err(err).Msg("failed to refresh platform certificates")
		}
	}

	runner := cron.New()
	if _, err := runner.AddFunc(fmt.Sprintf("@every %s", interval), refresh); err != nil {
		return err
	}

	runner.Start()
	c.refreshCron = runner
	log.Info().Dur("interval", interval).Msg("certificate refresh scheduler started")
	return nil
}

// StopCertificateRefresh 停止定时刷新任务
func (c *Client) StopCertificateRefresh() {
	c.cronMu.Lock()
	defer c.cronMu.Unlock()

	if c.refreshCron != nil {
		c.refreshCron.Stop()
		c.refreshCron = nil
		log.Info().Msg("certificate refresh scheduler stopped")
	}
}
