package entity

import (
	"time"
)

// CommissionRecord is written once per sold order item. CommissionAmount is
// the platform's 2% share of the line gross; SellerAmount is the remaining
// 98%. The two always sum to the gross line total.
type CommissionRecord struct {
	ID               string    `json:"id" firestore:"id"`
	OrderID          string    `json:"order_id" firestore:"orderId"`
	OrderItemID      string    `json:"order_item_id" firestore:"orderItemId"`
	StoreID          string    `json:"store_id" firestore:"storeId"`
	CommissionAmount float64   `json:"commission_amount" firestore:"commissionAmount"`
	SellerAmount     float64   `json:"seller_amount" firestore:"sellerAmount"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
}

// WithdrawRequest records an operator payout request against the accumulated
// commission balance. Settlement happens outside this system; the row is the
// bookkeeping entry.
type WithdrawRequest struct {
	ID          string    `json:"id" firestore:"id"`
	RequestedBy string    `json:"requested_by" firestore:"requestedBy"`
	Amount      float64   `json:"amount" firestore:"amount"`
	Status      string    `json:"status" firestore:"status"` // pending, settled
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
