package model

import "time"

type PrescriptionStatus string

const (
	PrescriptionStatusActive          PrescriptionStatus = "active"
	PrescriptionStatusPendingApproval PrescriptionStatus = "pending_approval"
	PrescriptionStatusDenied          PrescriptionStatus = "denied"
	PrescriptionStatusOrderPlaced     PrescriptionStatus = "order_placed"
	PrescriptionStatusPreparing       PrescriptionStatus = "preparing"
	PrescriptionStatusReadyForPickup  PrescriptionStatus = "ready_for_pickup"
	PrescriptionStatusOutForDelivery  PrescriptionStatus = "out_for_delivery"
	PrescriptionStatusCompleted       PrescriptionStatus = "completed"
	PrescriptionStatusExpired         PrescriptionStatus = "expired"
)

// InFulfillment reports whether the status lies between order_placed and
// completed, exclusive of completed.
func (s PrescriptionStatus) InFulfillment() bool {
	switch s {
	case PrescriptionStatusOrderPlaced, PrescriptionStatusPreparing,
		PrescriptionStatusReadyForPickup, PrescriptionStatusOutForDelivery:
		return true
	}
	return false
}

// fulfillmentRank orders the fulfillment path. Both branch states share a rank.
var fulfillmentRank = map[PrescriptionStatus]int{
	PrescriptionStatusOrderPlaced:    1,
	PrescriptionStatusPreparing:      2,
	PrescriptionStatusReadyForPickup: 3,
	PrescriptionStatusOutForDelivery: 3,
	PrescriptionStatusCompleted:      4,
}

// Rank returns the position on the fulfillment path, or 0 when the status
// is not on it.
func (s PrescriptionStatus) Rank() int {
	return fulfillmentRank[s]
}

type Prescription struct {
	ID          string             `json:"id"`
	Medication  string             `json:"medication"`
	Dosage      string             `json:"dosage"`
	Doctor      DoctorRef          `json:"doctor"`
	Pharmacy    string             `json:"pharmacy,omitempty"`
	OrderDate   *time.Time         `json:"order_date,omitempty"`
	RefillsLeft int                `json:"refills_left"`
	Status      PrescriptionStatus `json:"status"`
}

func (p *Prescription) Clone() *Prescription {
	if p == nil {
		return nil
	}
	c := *p
	if p.OrderDate != nil {
		t := *p.OrderDate
		c.OrderDate = &t
	}
	return &c
}

type OrderPrescriptionRequest struct {
	Pharmacy string `json:"pharmacy" binding:"required,notblank"`
}

type RefillDecision string

const (
	RefillApprove RefillDecision = "approve"
	RefillDeny    RefillDecision = "deny"
)

type ReviewRefillRequest struct {
	Decision RefillDecision `json:"decision" binding:"required,oneof=approve deny"`
}

// PharmacyOptions is the pharmacy picker shown before ordering.
type PharmacyOptions struct {
	Prescription *Prescription     `json:"prescription"`
	Search       PlaceSearchResult `json:"search"`
}
