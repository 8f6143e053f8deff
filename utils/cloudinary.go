package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/Shree2124/ngostream-backend/config"
)

// Uploader wraps an explicitly constructed Cloudinary client so handlers
// receive it by injection rather than a package singleton.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	return &Uploader{cld: cld}, nil
}

// UploadImage pushes a multipart file into the given folder and returns
// the secure URL.
func (u *Uploader) UploadImage(file multipart.File, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}
	return resp.SecureURL, nil
}

// UploadFile pushes an arbitrary document (report output) as a raw asset.
// The public ID gets a random suffix so repeated uploads of the same report
// never overwrite each other.
func (u *Uploader) UploadFile(r io.Reader, folder, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	stem := strings.TrimSuffix(filename, path.Ext(filename))
	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     fmt.Sprintf("%s_%s", stem, uuid.NewString()[:8]),
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}
	return resp.SecureURL, nil
}

// Delete removes an asset by its full Cloudinary URL.
func (u *Uploader) Delete(assetURL string) error {
	publicID, err := extractPublicID(assetURL)
	if err != nil {
		return fmt.Errorf("could not extract public ID: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	return nil
}

// extractPublicID pulls the folder/filename public ID out of a delivery URL.
// Example: https://res.cloudinary.com/demo/image/upload/v1234/goals/abc.jpg
func extractPublicID(assetURL string) (string, error) {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return "", err
	}

	parts := strings.Split(parsed.Path, "/")
	for i, part := range parts {
		if part != "upload" {
			continue
		}
		rest := parts[i+1:]
		if len(rest) > 0 && strings.HasPrefix(rest[0], "v") {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
		joined := path.Join(rest...)
		return strings.TrimSuffix(joined, path.Ext(joined)), nil
	}
	return "", fmt.Errorf("invalid cloudinary URL format")
}
