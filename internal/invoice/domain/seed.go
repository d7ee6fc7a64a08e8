package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SeedOptions parameterize the template document a session starts from.
type SeedOptions struct {
	Now            time.Time
	Number         string
	CurrencySymbol string
	DueInDays      int
	TaxRate        float64
}

// DefaultDocument builds the illustrative template document every
// editing session opens with. Item IDs come from the session's node so
// they never collide with later additions.
func DefaultDocument(node *snowflake.Node, opts SeedOptions) Document {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	dueInDays := opts.DueInDays
	if dueInDays <= 0 {
		dueInDays = 14
	}
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	number := opts.Number
	if number == "" {
		number = "INV-2024-001"
	}

	return Document{
		Number:         number,
		Date:           now.Format("2006-01-02"),
		DueDate:        now.AddDate(0, 0, dueInDays).Format("2006-01-02"),
		CurrencySymbol: symbol,
		Sender: ContactInfo{
			Name:    "John Doe (Freelancer)",
			Email:   "john@example.com",
			Address: "123 Developer Lane, Code City, 90210",
			Phone:   "+1 (555) 000-0000",
		},
		Client: ContactInfo{
			Name:    "Client Company LLC",
			Email:   "accounts@client.com",
			Address: "456 Business Rd, Enterprise City, NY",
		},
		Items: []LineItem{
			{ID: node.Generate(), Description: "Frontend Development - React Components", Quantity: 20, Rate: 85.00},
			{ID: node.Generate(), Description: "API Integration & Testing", Quantity: 10, Rate: 85.00},
			{ID: node.Generate(), Description: "Server Setup & Deployment", Quantity: 5, Rate: 90.00},
		},
		PaymentInfo: PaymentInfo{
			BankName:      "Tech Bank International",
			AccountName:   "John Doe",
			AccountNumber: "1234567890",
			SwiftCode:     "TECH0001234",
			CodeType:      CodeTypeIFSC,
			UpiID:         "john.doe@upi",
			Notes:         "Please include the invoice number in the transfer description. Paypal accepted at: john@example.com",
		},
		TaxRate: opts.TaxRate,
	}
}
