// internal/bank/client.go

package bank

import "strings"

// Client 為具名的客戶身分，可被多個 Account 共同參照；建立後不可變。
type Client struct {
	name string
}

// NewClient 建立客戶；名稱去除前後空白後不得為空。
func NewClient(name string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Client{name: name}, nil
}

func (c *Client) Name() string { return c.name }

func (c *Client) String() string { return c.name }
