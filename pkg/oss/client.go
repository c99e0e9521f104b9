package oss

import (
	"coopmini/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

func NewOssClient(conf *config.OssConfig) *oss.Client {
	cfg := oss.LoadDefaultConfig().
		WithEndpoint(conf.Endpoint).
		WithRegion(conf.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				conf.AccessKeyID,
				conf.AccessKeySecret,
			),
		)
	return oss.NewClient(cfg)
}
