// Package clientrepo maps client entities to the clients table.
package clientrepo

import (
	"taxi/internal/core/domain/model/client"
	"taxi/internal/core/domain/model/kernel"
)

// ClientDTO is the row layout of the clients table.
type ClientDTO struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"size:25;not null"`
	IsVIP bool   `gorm:"column:is_vip;not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:    c.ID().Int64(),
		Name:  c.Name(),
		IsVIP: c.IsVIP(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(kernel.ID(dto.ID), dto.Name, dto.IsVIP)
}
