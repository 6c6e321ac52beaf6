package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// AvatarSize is the longest edge, in pixels, of a stored avatar.
const AvatarSize = 256

var (
	avatarExts   = []string{".jpg", ".jpeg", ".png"}
	documentExts = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".txt", ".png", ".jpg", ".jpeg"}
)

// Upload is a stored file and its public URL.
type Upload struct {
	Key string
	URL string
}

type FileService interface {
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (Upload, error)
	UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string) (Upload, error)
	DeleteFile(ctx context.Context, key string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
	maxSize int64
}

// NewFileService rejects uploads larger than maxSize bytes; zero means 10 MiB.
func NewFileService(storage storage.FileStorage, maxSize int64) FileService {
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &fileServiceImpl{
		storage: storage,
		maxSize: maxSize,
	}
}

func hasExt(filename string, allowed []string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return ext, true
		}
	}
	return ext, false
}

// readLimited reads at most maxSize bytes and fails when the input is longer.
func (s *fileServiceImpl) readLimited(file io.Reader) ([]byte, error) {
	if file == nil {
		return nil, document.ErrFileRequired
	}
	buf, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(buf) == 0 {
		return nil, document.ErrFileRequired
	}
	if int64(len(buf)) > s.maxSize {
		return nil, document.ErrFileTooLarge
	}
	return buf, nil
}

func (s *fileServiceImpl) store(ctx context.Context, data []byte, key, contentType string) (Upload, error) {
	stored, err := s.storage.Upload(ctx, bytes.NewReader(data), key, contentType)
	if err != nil {
		return Upload{}, err
	}
	url, err := s.storage.GetURL(ctx, stored, 0)
	if err != nil {
		return Upload{}, err
	}
	return Upload{Key: stored, URL: url}, nil
}

// UploadAvatar stores the image scaled to fit AvatarSize and re-encoded as JPEG.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (Upload, error) {
	if _, ok := hasExt(filename, avatarExts); !ok {
		return Upload{}, fmt.Errorf("%w: only jpg, jpeg, png allowed", document.ErrUnsupportedFileType)
	}

	buf, err := s.readLimited(file)
	if err != nil {
		return Upload{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", document.ErrUnsupportedFileType, err)
	}

	out := new(bytes.Buffer)
	if err := jpeg.Encode(out, fitWithin(img, AvatarSize), &jpeg.Options{Quality: 85}); err != nil {
		return Upload{}, fmt.Errorf("failed to encode avatar: %w", err)
	}

	key := path.Join("avatars", employeeID, uuid.New().String()+".jpg")
	upload, err := s.store(ctx, out.Bytes(), key, "image/jpeg")
	if err != nil {
		return Upload{}, fmt.Errorf("failed to upload avatar: %w", err)
	}
	return upload, nil
}

func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string) (Upload, error) {
	ext, ok := hasExt(filename, documentExts)
	if !ok {
		return Upload{}, fmt.Errorf("%w: %q", document.ErrUnsupportedFileType, ext)
	}

	buf, err := s.readLimited(file)
	if err != nil {
		return Upload{}, err
	}

	key := path.Join("documents", employeeID, uuid.New().String()+ext)
	upload, err := s.store(ctx, buf, key, contentTypeFor(ext))
	if err != nil {
		return Upload{}, fmt.Errorf("failed to upload document: %w", err)
	}
	return upload, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	if err := s.storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		return err
	}
	return nil
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".txt":
		return "text/plain"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// fitWithin scales src down so neither edge exceeds size. Smaller images are
// returned unchanged.
func fitWithin(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= size && h <= size {
		return src
	}
	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
