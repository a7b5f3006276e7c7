package http

import (
	"strconv"
	"strings"
	"time"

	"parcels/internal/core/domain/model/parcel"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// flexNumber accepts a JSON number or a numeric string. Clients of the
// original API send amounts and weights both ways, so both are parsed;
// a non-numeric value is kept distinct from an absent one.
type flexNumber struct {
	present bool
	valid   bool
	value   float64
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" || raw == "" {
		return nil
	}
	n.present = true
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	n.valid = true
	n.value = value
	return nil
}

// rawString accepts a JSON string or number and keeps its textual form.
// Used for volume, where non-numeric text is tolerated downstream.
type rawString string

func (s *rawString) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" {
		return nil
	}
	*s = rawString(raw)
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type registerRequest struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	CustomerType      string `json:"customer_type"`
	BillingPreference string `json:"billing_preference"`
}

type createParcelRequest struct {
	SenderID         string     `json:"sender_id"`
	RecipientName    string     `json:"receiver_name"`
	RecipientAddress string     `json:"recipient_address"`
	Weight           flexNumber `json:"weight"`
	Volume           rawString  `json:"volume"`
	PackageType      string     `json:"package_type"`
	DeclaredValue    flexNumber `json:"declared_value"`
	Contents         string     `json:"contents"`
	ServiceType      string     `json:"service_type"`
}

type setStatusRequest struct {
	TrackingNumber string `json:"tracking_no"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	VehicleID      string `json:"vehicle_id"`
	WarehouseID    string `json:"warehouse_id"`
	Description    string `json:"description"`
}

type setAmountRequest struct {
	TrackingNumber string     `json:"tracking_no"`
	Amount         flexNumber `json:"amount"`
	PaymentMethod  string     `json:"payment_method"`
	ServiceType    string     `json:"service_type"`
}

type customerRequest struct {
	Account           string `json:"account"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	CustomerType      string `json:"customer_type"`
	BillingPreference string `json:"billing_preference"`
}

type parcelResponse struct {
	TrackingNumber   string   `json:"tracking_no"`
	SenderID         string   `json:"sender_id"`
	RecipientName    string   `json:"receiver_name"`
	RecipientAddress string   `json:"recipient_address"`
	Weight           float64  `json:"weight"`
	PackageType      string   `json:"package_type"`
	DeclaredValue    float64  `json:"declared_value"`
	Contents         string   `json:"contents"`
	ServiceType      string   `json:"service_type"`
	Status           string   `json:"status"`
	Amount           *float64 `json:"amount"`
	PaymentStatus    string   `json:"payment_status"`
	CreatedAt        string   `json:"created_at"`
}

func parcelToResponse(aggregate *parcel.Parcel) parcelResponse {
	return parcelResponse{
		TrackingNumber:   aggregate.TrackingNumber().String(),
		SenderID:         aggregate.SenderID(),
		RecipientName:    aggregate.RecipientName(),
		RecipientAddress: aggregate.RecipientAddress(),
		Weight:           aggregate.Weight(),
		PackageType:      aggregate.PackageType(),
		DeclaredValue:    aggregate.DeclaredValue(),
		Contents:         aggregate.Contents(),
		ServiceType:      aggregate.ServiceType(),
		Status:           aggregate.Status().String(),
		Amount:           aggregate.Amount(),
		PaymentStatus:    aggregate.PaymentStatus(),
		CreatedAt:        aggregate.CreatedAt().Format(time.RFC3339),
	}
}

type eventResponse struct {
	EventID        string `json:"event_id"`
	TrackingNumber string `json:"tracking_no"`
	EventType      string `json:"event_type"`
	Timestamp      string `json:"timestamp"`
	Location       string `json:"location"`
	VehicleID      string `json:"vehicle_id"`
	WarehouseID    string `json:"warehouse_id"`
	Operator       string `json:"operator"`
	Description    string `json:"description"`
}

type recordResponse struct {
	TrackingNumber   string   `json:"tracking_no"`
	SenderID         string   `json:"sender_id"`
	RecipientName    string   `json:"receiver_name"`
	RecipientAddress string   `json:"recipient_address"`
	Weight           float64  `json:"weight"`
	PackageType      string   `json:"package_type"`
	Date             string   `json:"date"`
	Amount           *float64 `json:"amount"`
	Status           string   `json:"status"`
}

type customerResponse struct {
	Account           string `json:"account"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	CustomerType      string `json:"customer_type"`
	BillingPreference string `json:"billing_preference"`
	CreatedAt         string `json:"created_at"`
}
