package businesses

import (
	businessstore "github.com/dalemusser/coophub/internal/app/store/businesses"
	"github.com/dalemusser/coophub/internal/domain/models"
)

type createInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required,max=1000"`
	Services    []string `json:"services" validate:"omitempty,dive,max=100"`
	Location    string   `json:"location" validate:"required,max=100"`
	Address     string   `json:"address" validate:"max=200"`
	Phone       string   `json:"phone" validate:"max=30"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Website     string   `json:"website" validate:"omitempty,url"`
	OwnerName   string   `json:"ownerName" validate:"max=100"`
	Logo        string   `json:"logo"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

func (in createInput) model() models.Business {
	return models.Business{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Services:    in.Services,
		Location:    in.Location,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		OwnerName:   in.OwnerName,
		Logo:        in.Logo,
		Status:      in.Status,
	}
}

type updateInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string  `json:"category"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Services    []string `json:"services" validate:"omitempty,dive,max=100"`
	Location    *string  `json:"location" validate:"omitempty,max=100"`
	Address     *string  `json:"address" validate:"omitempty,max=200"`
	Phone       *string  `json:"phone" validate:"omitempty,max=30"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Website     *string  `json:"website" validate:"omitempty,url"`
	OwnerName   *string  `json:"ownerName" validate:"omitempty,max=100"`
	Logo        *string  `json:"logo"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

func (in updateInput) update() businessstore.Update {
	return businessstore.Update{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Services:    in.Services,
		Location:    in.Location,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		OwnerName:   in.OwnerName,
		Logo:        in.Logo,
		Status:      in.Status,
	}
}
