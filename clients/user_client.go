package clients

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// UserClient is the typed call surface of the User Service.
type UserClient struct {
	up *Upstream
}

func NewUserClient(up *Upstream) *UserClient {
	return &UserClient{up: up}
}

func (c *UserClient) GetUser(ctx context.Context, id uuid.UUID) (*models.User, *Error) {
	var user models.User
	if err := c.up.GetJSON(ctx, "/users/"+id.String(), nil, "User", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UserClient) GetPreference(ctx context.Context, userID uuid.UUID) (*models.Preference, *Error) {
	var pref models.Preference
	if err := c.up.GetJSON(ctx, "/preferences/"+userID.String(), nil, "Preference", &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (c *UserClient) ListUserAddresses(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, *Error) {
	query := url.Values{"user_id": []string{userID.String()}}
	var mappings []models.UserAddress
	if err := c.up.GetJSON(ctx, "/user_addresses", query, "UserAddress", &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

func (c *UserClient) GetAddress(ctx context.Context, id uuid.UUID) (*models.Address, *Error) {
	var addr models.Address
	if err := c.up.GetJSON(ctx, "/addresses/"+id.String(), nil, "Address", &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}
