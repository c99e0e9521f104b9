package service

import (
	"mime/multipart"
	"testing"

	"coopmini/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOssService() *OssService {
	svc := NewOssService(&config.OssConfig{
		Bucket:        "coopmini-products",
		PublicBaseURL: "https://cdn.coopmini.example.com",
	}, nil)
	return svc.(*OssService)
}

func TestNewOssService_NormalizesBaseURL(t *testing.T) {
	svc := newTestOssService()
	assert.Equal(t, "https://cdn.coopmini.example.com/", svc.BaseURL)
}

func TestIsManagedURL(t *testing.T) {
	svc := newTestOssService()

	assert.True(t, svc.IsManagedURL("https://cdn.coopmini.example.com/products/2026/01/02/1.jpg"))
	assert.False(t, svc.IsManagedURL("https://res.cloudinary.com/foo/1.jpg"))
	assert.False(t, svc.IsManagedURL(""))
}

func TestDeleteByURL_RejectsForeignURL(t *testing.T) {
	svc := newTestOssService()

	err := svc.DeleteByURL(t.Context(), "https://elsewhere.example.com/1.jpg")
	require.Error(t, err)
}

func TestUploadImage_RejectsMissingFile(t *testing.T) {
	svc := newTestOssService()

	_, err := svc.UploadImage(t.Context(), nil)
	assert.Error(t, err)
}

func TestUploadImage_RejectsOversize(t *testing.T) {
	svc := newTestOssService()

	_, err := svc.UploadImage(t.Context(), &multipart.FileHeader{
		Filename: "big.jpg",
		Size:     6 << 20,
	})
	assert.Error(t, err)
}
