package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"coopmini/config"
	"coopmini/pkg/snowflake"
	"coopmini/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// 商品图大小上限 5MB
const maxImageSize int64 = 5 << 20

type OssService struct {
	Client     *oss.Client
	BucketName string
	BaseURL    string
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 上传商品图，返回公网 URL
	UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error)

	// DeleteByURL 按公网 URL 删除对象，非本仓库前缀的 URL 拒绝处理
	DeleteByURL(ctx context.Context, imageURL string) error

	// IsManagedURL 判断 URL 是否归属本仓库的对象前缀
	IsManagedURL(imageURL string) bool
}

func NewOssService(cfg *config.OssConfig, client *oss.Client) IOssService {
	baseURL := cfg.PublicBaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		BaseURL:    baseURL,
	}
}

func (s *OssService) UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxImageSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 要能 Seek，否则无法在读头校验后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// 1) MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 2) 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 3) 生成 objectKey
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("products/%s/%d%s",
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)

	// 4) 上传 OSS（强制限制读取）
	limited := io.LimitReader(seeker, maxImageSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	return &types.UploadImageResp{
		Url:    s.BaseURL + objectKey,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func (s *OssService) IsManagedURL(imageURL string) bool {
	return strings.HasPrefix(imageURL, s.BaseURL)
}

func (s *OssService) DeleteByURL(ctx context.Context, imageURL string) error {
	if !s.IsManagedURL(imageURL) {
		return fmt.Errorf("image url not managed by this bucket: %s", imageURL)
	}
	objectKey := strings.TrimPrefix(imageURL, s.BaseURL)
	if objectKey == "" {
		return fmt.Errorf("empty object key")
	}

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
