package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"minimall/config"
	"minimall/pkg/log"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // 注册 webp 解码器，内容嗅探用
)

var (
	ErrBadImage    = errors.New("不支持的图片格式")
	ErrImageTooBig = errors.New("图片大小超出限制")
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 校验并上传一张图片，返回对象 key
	UploadImage(ctx context.Context, header *multipart.FileHeader, keyPrefix string) (string, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// SignURL 生成临时访问 URL（秒）
	SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)
}

type OssService struct {
	Client     *oss.Client
	BucketName string
}

func NewOssService(conf *config.OssConfig) *OssService {
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)).
		WithRegion(conf.Region).
		WithEndpoint(conf.Endpoint)

	return &OssService{
		Client:     oss.NewClient(cfg),
		BucketName: conf.Bucket,
	}
}

func (s *OssService) UploadImage(ctx context.Context, header *multipart.FileHeader, keyPrefix string) (string, error) {
	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return "", ErrBadImage
	}
	if header.Size <= 0 || header.Size > maxSize {
		return "", ErrImageTooBig
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// 读头校验和取尺寸之后还要回到文件开头再上传
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", ErrBadImage
	}

	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	ext, allowed := allowedImageTypes[contentType]
	if !allowed {
		return "", ErrBadImage
	}

	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if _, _, err := image.DecodeConfig(seeker); err != nil {
		return "", ErrBadImage
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	key := path.Join(keyPrefix, uuid.NewString()+ext)
	_, err = s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.BucketName),
		Key:         oss.Ptr(key),
		Body:        seeker,
		ContentType: oss.Ptr(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传图片失败: %w", err)
	}
	return key, nil
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	if err != nil {
		log.L.Warn("delete oss object failed", zap.String("key", objectKey), zap.Error(err))
	}
	return err
}

func (s *OssService) SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error) {
	result, err := s.Client.Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}
	return result.URL, nil
}
