package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpireHours 访问令牌有效期（小时）
	ExpireHours int `json:"expire_hours" yaml:"expire_hours"`
}
