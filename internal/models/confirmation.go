package models

import "time"

// OrderConfirmation is assembled at submission time from the draft plus the
// generated order ID and computed total. It is handed to the notification
// dispatcher once and then discarded; completed orders are not persisted.
type OrderConfirmation struct {
	OrderID       string
	CustomerEmail string
	CustomerName  string
	VideoType     string
	PlanName      string
	DeliveryDays  int
	AvatarName    string
	DeliveryDate  time.Time
	OrderTotal    int
}
