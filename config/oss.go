package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// PublicBaseURL 对象的公网访问前缀，例如 https://cdn.example.com/
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
