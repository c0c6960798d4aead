package cloudinary

type Option func(*Client)

func WithFolder(folder string) Option {
	return func(c *Client) {
		c.folder = folder
	}
}
