package client

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
)

var (
	// ErrClientIsNotConstructed is returned when a Client was not created through
	// NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")
)

// Client represents a passenger ordering taxis.
type Client struct {
	id    kernel.ID
	name  string
	isVIP bool

	isConstructed bool
}

func NewClient(name string, isVIP bool) (*Client, error) {
	c := &Client{
		isVIP:         isVIP,
		isConstructed: true,
	}

	if err := kernel.ValidateText("name", name, kernel.NameMaxLength); err != nil {
		return nil, err
	}
	c.name = name

	return c, nil
}

func RestoreClient(id kernel.ID, name string, isVIP bool) (*Client, error) {
	c, err := NewClient(name, isVIP)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	c.id = id

	return c, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.ID {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) IsVIP() bool {
	return c.isVIP
}
