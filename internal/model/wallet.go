package model

type Insurance struct {
	ID           string `json:"id"`
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policy_number"`
	DocumentName string `json:"document_name,omitempty"`
}

// Masked returns a copy whose policy number shows only its last four characters.
func (i Insurance) Masked() Insurance {
	n := i.PolicyNumber
	if len(n) > 4 {
		n = n[len(n)-4:]
	}
	i.PolicyNumber = "**** **** **** " + n
	return i
}

type InsuranceRequest struct {
	Provider     string `json:"provider" binding:"required,notblank"`
	PolicyNumber string `json:"policy_number" binding:"required,notblank"`
	DocumentName string `json:"document_name"`
}

type PlanPeriod string

const (
	PlanPeriodWeek  PlanPeriod = "week"
	PlanPeriodMonth PlanPeriod = "month"
	PlanPeriodYear  PlanPeriod = "year"
)

type PlanType string

const (
	PlanTypeIndividual PlanType = "individual"
	PlanTypeCorporate  PlanType = "corporate"
)

type SubscriptionPlan struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Period   PlanPeriod `json:"period"`
	Type     PlanType   `json:"type"`
	Features []string   `json:"features"`
	Popular  bool       `json:"is_popular,omitempty"`
}

// PaymentPlatforms are the accepted funding sources for the wallet.
var PaymentPlatforms = []string{"Cash App", "Paystack", "Zelle"}

type Wallet struct {
	Balance      float64 `json:"balance"`
	Subscription string  `json:"subscription,omitempty"`
}

type AddFundsRequest struct {
	Amount   float64 `json:"amount"`
	Platform string  `json:"platform"`
}

type SubscribeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// WalletOverview is everything the wallet screen shows at once.
type WalletOverview struct {
	Wallet    Wallet             `json:"wallet"`
	Insurance []Insurance        `json:"insurance"`
	Plans     []SubscriptionPlan `json:"plans"`
	Platforms []string           `json:"platforms"`
}
