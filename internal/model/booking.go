package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingColumns is the allow-list of columns a client may set when creating a
// booking. Insert statements list columns in this order.
var BookingColumns = []string{
	"user_id", "maid_id", "assigned_at", "assigned_by", "assignment_notes",
	"service_id", "subscription_plan", "subscription_plan_details", "booking_reference",
	"booking_date", "booking_time", "time_slot", "address", "phone", "special_instructions",
	"duration_hours", "total_amount", "discount_amount", "final_amount", "status",
	"payment_status", "payment_method", "payment_id", "transaction_id", "gateway_response",
	"billing_name", "billing_phone", "billing_address", "payment_completed_at", "payment_failed_at",
	"customer_notes", "maid_notes", "admin_notes", "address_details", "service_requirements",
	"confirmed_at", "started_at", "completed_at", "allocated_at", "cancelled_at",
	"created_at", "updated_at",
}

// RequiredBookingColumns must be present, non-null and non-empty.
var RequiredBookingColumns = []string{"user_id", "service_id", "booking_date", "booking_time", "final_amount"}

const (
	ColumnAddressDetails = "address_details"
	ColumnCreatedAt      = "created_at"
	ColumnUpdatedAt      = "updated_at"
)

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking describes the bookings table. Requests never bind into it directly;
// inserts go through a BookingRow so only supplied columns are written.
type Booking struct {
	ID                      uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                  uint64           `json:"user_id" gorm:"not null;index"`
	MaidID                  *uint64          `json:"maid_id" gorm:"index"`
	AssignedAt              *time.Time       `json:"assigned_at"`
	AssignedBy              *uint64          `json:"assigned_by"`
	AssignmentNotes         *string          `json:"assignment_notes" gorm:"type:text"`
	ServiceID               uint64           `json:"service_id" gorm:"not null;index"`
	SubscriptionPlan        *string          `json:"subscription_plan" gorm:"size:50"`
	SubscriptionPlanDetails *string          `json:"subscription_plan_details" gorm:"type:text"`
	BookingReference        *string          `json:"booking_reference" gorm:"size:64;index"`
	BookingDate             string           `json:"booking_date" gorm:"type:date;not null"`
	BookingTime             string           `json:"booking_time" gorm:"type:time;not null"`
	TimeSlot                *string          `json:"time_slot" gorm:"size:50"`
	Address                 *string          `json:"address" gorm:"type:text"`
	Phone                   *string          `json:"phone" gorm:"size:20"`
	SpecialInstructions     *string          `json:"special_instructions" gorm:"type:text"`
	DurationHours           *decimal.Decimal `json:"duration_hours" gorm:"type:decimal(5,2)"`
	TotalAmount             *decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	DiscountAmount          *decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2)"`
	FinalAmount             decimal.Decimal  `json:"final_amount" gorm:"type:decimal(10,2);not null"`
	Status                  BookingStatus    `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentStatus           *string          `json:"payment_status" gorm:"size:20"`
	PaymentMethod           *string          `json:"payment_method" gorm:"size:30"`
	PaymentID               *string          `json:"payment_id" gorm:"size:100"`
	TransactionID           *string          `json:"transaction_id" gorm:"size:100"`
	GatewayResponse         *string          `json:"gateway_response" gorm:"type:text"`
	BillingName             *string          `json:"billing_name" gorm:"size:255"`
	BillingPhone            *string          `json:"billing_phone" gorm:"size:20"`
	BillingAddress          *string          `json:"billing_address" gorm:"type:text"`
	PaymentCompletedAt      *time.Time       `json:"payment_completed_at"`
	PaymentFailedAt         *time.Time       `json:"payment_failed_at"`
	CustomerNotes           *string          `json:"customer_notes" gorm:"type:text"`
	MaidNotes               *string          `json:"maid_notes" gorm:"type:text"`
	AdminNotes              *string          `json:"admin_notes" gorm:"type:text"`
	AddressDetails          *string          `json:"address_details" gorm:"type:json"`
	ServiceRequirements     *string          `json:"service_requirements" gorm:"type:text"`
	ConfirmedAt             *time.Time       `json:"confirmed_at"`
	StartedAt               *time.Time       `json:"started_at"`
	CompletedAt             *time.Time       `json:"completed_at"`
	AllocatedAt             *time.Time       `json:"allocated_at"`
	CancelledAt             *time.Time       `json:"cancelled_at"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// BookingField is one column/value pair of a booking insert.
type BookingField struct {
	Column string
	Value  BookingValue
}

// BookingRow is an ordered set of columns to insert.
type BookingRow []BookingField

// Columns returns the column names in insert order.
func (r BookingRow) Columns() []string {
	cols := make([]string, len(r))
	for i, f := range r {
		cols[i] = f.Column
	}
	return cols
}

// Args returns the bind arguments in insert order.
func (r BookingRow) Args() []interface{} {
	args := make([]interface{}, len(r))
	for i, f := range r {
		args[i] = f.Value.Arg()
	}
	return args
}

// Get returns the value stored for column.
func (r BookingRow) Get(column string) (BookingValue, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return BookingValue{}, false
}

// Set replaces the value of column in place, or appends it when absent.
func (r BookingRow) Set(column string, v BookingValue) BookingRow {
	for i := range r {
		if r[i].Column == column {
			r[i].Value = v
			return r
		}
	}
	return append(r, BookingField{Column: column, Value: v})
}
