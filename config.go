package wechatpay

import (
	"crypto/rsa"
	"crypto/x509"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	// defaultServiceHost 微信支付 API 网关
	defaultServiceHost = "api.mch.weixin.qq.com"
	// defaultHTTPTimeout 单请求默认超时时间
	defaultHTTPTimeout = 5 * time.Second
)

// Config 微信支付客户端配置。
// The values are read by viper from a config file or environment variable,
// 或者由应用代码直接填充（密钥字段只能由代码填充或通过路径加载）。
type Config struct {
	AppID           string        `mapstructure:"WECHAT_PAY_APP_ID"`           // 小程序/公众号 AppID
	MchID           string        `mapstructure:"WECHAT_PAY_MCH_ID"`           // 商户号
	ServiceHost     string        `mapstructure:"WECHAT_PAY_SERVICE_HOST"`     // API 网关，默认 api.mch.weixin.qq.com
	NotifyURL       string        `mapstructure:"WECHAT_PAY_NOTIFY_URL"`       // 默认回调 URL
	APIv3Key        string        `mapstructure:"WECHAT_PAY_API_V3_KEY"`       // APIv3 密钥（32字节）
	SerialNumber    string        `mapstructure:"WECHAT_PAY_SERIAL_NUMBER"`    // 商户API证书序列号
	PrivateKeyPath  string        `mapstructure:"WECHAT_PAY_PRIVATE_KEY_PATH"` // 商户API私钥文件路径
	CertificatePath string        `mapstructure:"WECHAT_PAY_CERTIFICATE_PATH"` // 商户API证书文件路径
	HTTPTimeout     time.Duration `mapstructure:"WECHAT_PAY_HTTP_TIMEOUT"`     // HTTP请求超时时间

	// 以下字段只能由代码填充
	PrivateKey    *rsa.PrivateKey           `mapstructure:"-"` // 商户私钥（优先于 PrivateKeyPath）
	Certificate   *x509.Certificate         `mapstructure:"-"` // 商户证书（优先于 CertificatePath）
	PlatformCerts map[string]*rsa.PublicKey `mapstructure:"-"` // 平台证书集合：序列号 -> 公钥，可为空，由刷新任务填充
	Transport     Transport                 `mapstructure:"-"` // HTTPS 传输能力，缺省使用 net/http
	Codec         JSONCodec                 `mapstructure:"-"` // JSON 编解码能力，缺省使用 encoding/json
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// Validate 校验配置并补齐缺省值，返回可用的配置副本。
// 失败时返回 *ConfigError，原配置不被修改。
func (c Config) Validate() (Config, error) {
	if c.AppID == "" {
		return c, &ConfigError{Field: "app_id", Reason: "required"}
	}
	if c.MchID == "" {
		return c, &ConfigError{Field: "mch_id", Reason: "required"}
	}
	if c.NotifyURL == "" {
		return c, &ConfigError{Field: "notify_url", Reason: "required"}
	}
	if c.SerialNumber == "" {
		return c, &ConfigError{Field: "serial_number", Reason: "required"}
	}

	if c.PrivateKey == nil {
		if c.PrivateKeyPath == "" {
			return c, &ConfigError{Field: "private_key", Reason: "required"}
		}
		key, err := LoadPrivateKey(c.PrivateKeyPath)
		if err != nil {
			return c, &ConfigError{Field: "private_key", Reason: err.Error()}
		}
		c.PrivateKey = key
	}

	if c.Certificate == nil {
		if c.CertificatePath == "" {
			return c, &ConfigError{Field: "certificate", Reason: "required"}
		}
		cert, err := LoadCertificate(c.CertificatePath)
		if err != nil {
			return c, &ConfigError{Field: "certificate", Reason: err.Error()}
		}
		c.Certificate = cert
	}

	// 私钥必须可用：签一个探测值
	if _, err := SignSHA256WithRSA(c.PrivateKey, []byte("wechatpay probe")); err != nil {
		return c, &ConfigError{Field: "private_key", Reason: "probe signature failed: " + err.Error()}
	}

	// APIv3 密钥允许为空（此时不能使用任何 AEAD 相关操作），
	// 一旦设置则必须恰好 32 字节
	if c.APIv3Key != "" && len(c.APIv3Key) != apiV3KeyLength {
		return c, &ConfigError{Field: "api_v3_key", Reason: "key must be exactly 32 bytes"}
	}

	if c.ServiceHost == "" {
		c.ServiceHost = defaultServiceHost
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
	if c.Transport == nil {
		c.Transport = NewHTTPTransport(c.HTTPTimeout)
	}
	if c.Codec == nil {
		c.Codec = StdJSONCodec{}
	}

	// 平台证书集合复制一份，快照之间互不影响
	certs := make(map[string]*rsa.PublicKey, len(c.PlatformCerts))
	for serial, key := range c.PlatformCerts {
		certs[serial] = key
	}
	c.PlatformCerts = certs

	return c, nil
}

// configStore 持有当前生效的配置快照。
// 读路径只取一次指针，整个请求周期内复用同一快照，
// 替换对并发读者原子可见，不会出现字段撕裂。
type configStore struct {
	mu      sync.RWMutex
	current *Config
}

func newConfigStore(cfg Config) (*configStore, error) {
	validated, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &configStore{current: &validated}, nil
}

// snapshot 返回当前配置快照，调用方不得修改
func (s *configStore) snapshot() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// replace 校验后整体替换配置
func (s *configStore) replace(cfg Config) error {
	validated, err := cfg.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &validated
	return nil
}

// update 在当前快照的副本上应用局部修改，重新校验后替换。
// 校验失败时存储保持不变。
func (s *configStore) update(apply func(*Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.current
	// 证书集合先复制再交给 apply，避免 patch 改到在用快照
	certs := make(map[string]*rsa.PublicKey, len(next.PlatformCerts))
	for serial, key := range next.PlatformCerts {
		certs[serial] = key
	}
	next.PlatformCerts = certs
	apply(&next)

	validated, err := next.Validate()
	if err != nil {
		return err
	}

	s.current = &validated
	return nil
}

// updateCertificates 整体替换平台证书集合（不做增量合并）
func (s *configStore) updateCertificates(certs map[string]*rsa.PublicKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.current
	next.PlatformCerts = make(map[string]*rsa.PublicKey, len(certs))
	for serial, key := range certs {
		next.PlatformCerts[serial] = key
	}
	s.current = &next
}

// platformCert 按序列号查找平台公钥
func (c *Config) platformCert(serial string) (*rsa.PublicKey, bool) {
	key, ok := c.PlatformCerts[serial]
	return key, ok
}
