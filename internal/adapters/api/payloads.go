package api

import (
	"bytes"
	"strconv"

	"github.com/baw-market/baw-cli/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	UserType        string `json:"user_type"`
	Country         string `json:"country,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
}

type userPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserType  string `json:"user_type"`
	Country   string `json:"country"`
	Phone     string `json:"phone_number"`
}

type authResponse struct {
	User    userPayload `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

func (r authResponse) toAuthResult() domain.AuthResult {
	return domain.AuthResult{
		User:              r.User.toUser(),
		AccessCredential:  r.Access,
		RefreshCredential: r.Refresh,
	}
}

func (p userPayload) toUser() domain.User {
	displayName := p.FirstName
	if p.LastName != "" {
		if displayName != "" {
			displayName += " "
		}
		displayName += p.LastName
	}

	return domain.User{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		DisplayName: displayName,
		Role:        domain.Role(p.UserType),
		Country:     p.Country,
		Phone:       p.Phone,
	}
}

type productPayload struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Price         decimalValue `json:"price"`
	Category      string       `json:"category"`
	StockQuantity int          `json:"stock_quantity"`
	Image         string       `json:"image"`
	StoreName     string       `json:"store_name"`
}

func (p productPayload) toProduct() domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         float64(p.Price),
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.Image,
		StoreName:     p.StoreName,
	}
}

type orderItemRequest struct {
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

type orderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type orderItemPayload struct {
	Product     int64        `json:"product"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	Price       decimalValue `json:"price"`
}

type orderPayload struct {
	ID          int64              `json:"id"`
	Status      string             `json:"status"`
	TotalAmount decimalValue       `json:"total_amount"`
	Items       []orderItemPayload `json:"items"`
}

func (p orderPayload) toOrder() domain.Order {
	lines := make([]domain.OrderLine, 0, len(p.Items))
	for _, item := range p.Items {
		lines = append(lines, domain.OrderLine{
			ProductID: item.Product,
			Name:      item.ProductName,
			UnitPrice: float64(item.Price),
			Quantity:  item.Quantity,
		})
	}

	return domain.Order{
		ID:     p.ID,
		Status: p.Status,
		Total:  float64(p.TotalAmount),
		Lines:  lines,
	}
}

// decimalValue accepts both JSON numbers and the quoted decimals Django
// REST Framework emits for money fields.
type decimalValue float64

func (d *decimalValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = 0
		return nil
	}

	value, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return err
	}

	*d = decimalValue(value)
	return nil
}
