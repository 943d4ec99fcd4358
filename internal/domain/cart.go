package domain

import "github.com/shopspring/decimal"

type CartItemType string

const (
	CartItemTicket CartItemType = "ticket"
	CartItemSnack  CartItemType = "snack"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// CartItem is one line of a checkout cart. Ticket lines use the showtime fields,
// snack lines use SnackID and Quantity.
type CartItem struct {
	Type CartItemType

	ShowtimeID int
	Seats      []string
	AdultCount int
	ChildCount int

	SnackID  int
	Quantity int
}

type Cart struct {
	Items            []CartItem
	PaymentMethod    PaymentMethod
	PaymentReference string
}

func (c Cart) Partition() (tickets, snacks []CartItem) {
	for _, item := range c.Items {
		switch item.Type {
		case CartItemTicket:
			tickets = append(tickets, item)
		case CartItemSnack:
			snacks = append(snacks, item)
		}
	}

	return tickets, snacks
}

// PaymentConfirmation is what the payment provider reports for a payment reference.
type PaymentConfirmation struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
}
