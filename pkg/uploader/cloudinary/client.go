package cloudinary

import (
	"context"
	"errors"

	"github.com/adrianliechti/avatar/pkg/uploader"

	"github.com/cloudinary/cloudinary-go/v2"
	cld "github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var _ uploader.Provider = (*Client)(nil)

type Client struct {
	client *cloudinary.Cloudinary

	folder string
}

func New(cloud, key, secret string, options ...Option) (*Client, error) {
	if cloud == "" || key == "" || secret == "" {
		return nil, errors.New("invalid credentials")
	}

	client, err := cloudinary.NewFromParams(cloud, key, secret)

	if err != nil {
		return nil, err
	}

	client.Config.URL.Secure = true

	c := &Client{
		client: client,

		folder: "avatar_videos",
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

// Upload fetches the video from the source URL and stores it as an
// authenticated asset, so the returned URL requires signed access.
func (c *Client) Upload(ctx context.Context, url string) (string, error) {
	resp, err := c.client.Upload.Upload(ctx, url, cld.UploadParams{
		ResourceType: "video",

		Folder: c.folder,
		Type:   "authenticated",
	})

	if err != nil {
		return "", err
	}

	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}

	if resp.SecureURL == "" {
		return "", errors.New("upload returned no url")
	}

	return resp.SecureURL, nil
}
