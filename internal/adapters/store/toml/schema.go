package toml

import (
	"fmt"

	"github.com/baw-market/baw-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session,omitempty"`
	Cart    *cartSchema    `toml:"cart,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	User              *userSchema `toml:"user,omitempty"`
	AccessCredential  string      `toml:"access_credential"`
	RefreshCredential string      `toml:"refresh_credential,omitempty"`
}

type userSchema struct {
	ID          int64  `toml:"id"`
	Username    string `toml:"username"`
	Email       string `toml:"email,omitempty"`
	DisplayName string `toml:"display_name,omitempty"`
	Role        string `toml:"role"`
	Country     string `toml:"country,omitempty"`
	Phone       string `toml:"phone,omitempty"`
}

type cartSchema struct {
	Items []cartItemSchema `toml:"items"`
}

type cartItemSchema struct {
	ProductID int64   `toml:"product_id"`
	Name      string  `toml:"name"`
	UnitPrice float64 `toml:"unit_price"`
	Quantity  int     `toml:"quantity"`
}

func sessionToSchema(session domain.Session) sessionSchema {
	encoded := sessionSchema{
		AccessCredential:  session.Credential,
		RefreshCredential: session.RefreshCredential,
	}

	if session.User != nil {
		encoded.User = &userSchema{
			ID:          session.User.ID,
			Username:    session.User.Username,
			Email:       session.User.Email,
			DisplayName: session.User.DisplayName,
			Role:        string(session.User.Role),
			Country:     session.User.Country,
			Phone:       session.User.Phone,
		}
	}

	return encoded
}

func sessionFromSchema(encoded sessionSchema) domain.Session {
	session := domain.Session{
		Credential:        encoded.AccessCredential,
		RefreshCredential: encoded.RefreshCredential,
	}

	if encoded.User != nil {
		session.User = &domain.User{
			ID:          encoded.User.ID,
			Username:    encoded.User.Username,
			Email:       encoded.User.Email,
			DisplayName: encoded.User.DisplayName,
			Role:        domain.Role(encoded.User.Role),
			Country:     encoded.User.Country,
			Phone:       encoded.User.Phone,
		}
	}

	return session
}

func cartToSchema(cart domain.Cart) cartSchema {
	items := make([]cartItemSchema, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemSchema{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return cartSchema{Items: items}
}

func cartFromSchema(encoded cartSchema) domain.Cart {
	items := make([]domain.CartItem, 0, len(encoded.Items))
	for _, item := range encoded.Items {
		if item.Quantity <= 0 {
			continue
		}
		items = append(items, domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	if len(items) == 0 {
		return domain.Cart{}
	}

	return domain.Cart{Items: items}
}
