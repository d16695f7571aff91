package storefront

import (
	"fmt"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderCatalog renders the product listing view.
func RenderCatalog(products []domain.Product) (string, error) {
	return render(func(s styles) string {
		return catalogView(products, s)
	})
}

// RenderCart renders the cart lines and the recomputed total.
func RenderCart(items []domain.CartItem, total float64) (string, error) {
	return render(func(s styles) string {
		return cartView(items, total, s)
	})
}

// RenderRedirect renders a guard redirect notice.
func RenderRedirect(from, to string) (string, error) {
	return render(func(s styles) string {
		return s.redirect.Render(fmt.Sprintf("%s -> redirect %s", from, to))
	})
}

// RenderSession renders the current session state, including the last
// authentication error when one is recorded.
func RenderSession(session domain.Session, lastError string) (string, error) {
	return render(func(s styles) string {
		return sessionView(session, lastError, s)
	})
}

func catalogView(products []domain.Product, s styles) string {
	lines := []string{
		s.title.Render("BAW Marketplace"),
		s.header.Render(fmt.Sprintf("products: %d", len(products))),
	}

	if len(products) == 0 {
		lines = append(lines, s.empty.Render("No products available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, product := range products {
		lines = append(lines, s.section.Render(productLine(product, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func productLine(product domain.Product, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (#%d)", product.Name, product.ID)),
		s.price.Render(fmt.Sprintf("$%.2f", product.Price)),
	}

	if product.Category != "" {
		parts = append(parts, s.detail.Render(product.Category))
	}
	if product.StoreName != "" {
		parts = append(parts, s.detail.Render("by "+product.StoreName))
	}
	if product.InStock() {
		parts = append(parts, s.detail.Render(fmt.Sprintf("%d in stock", product.StockQuantity)))
	} else {
		parts = append(parts, s.warning.Render("out of stock"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(parts)...)
}

func cartView(items []domain.CartItem, total float64, s styles) string {
	lines := []string{
		s.title.Render("Your Cart"),
		s.header.Render(fmt.Sprintf("items: %d", len(items))),
	}

	if len(items) == 0 {
		lines = append(lines, s.empty.Render("Cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range items {
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.name.Render(fmt.Sprintf("%s (#%d)", item.Name, item.ProductID)),
			" ",
			s.detail.Render(fmt.Sprintf("x%d", item.Quantity)),
			" ",
			s.price.Render(fmt.Sprintf("$%.2f", item.Subtotal())),
		)
		lines = append(lines, line)
	}

	lines = append(lines, s.section.Render(s.total.Render(fmt.Sprintf("Total: $%.2f", total))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionView(session domain.Session, lastError string, s styles) string {
	lines := []string{s.title.Render("Session")}

	if !session.Authenticated() {
		lines = append(lines, s.empty.Render("Not logged in."))
	} else if session.User != nil {
		identity := s.name.Render(session.User.Username)
		if session.User.DisplayName != "" {
			identity += " " + s.detail.Render("("+session.User.DisplayName+")")
		}
		lines = append(lines,
			lipgloss.JoinHorizontal(lipgloss.Top, identity, " ", s.roleTag.Render("["+string(session.User.Role)+"]")),
		)
		if session.User.Email != "" {
			lines = append(lines, s.detail.Render(session.User.Email))
		}
	} else {
		lines = append(lines, s.detail.Render("Logged in."))
	}

	if lastError != "" {
		lines = append(lines, s.warning.Render("error: "+lastError))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func joinSpaced(parts []string) []string {
	spaced := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, part)
	}

	return spaced
}
